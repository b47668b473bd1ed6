package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"
)

func TestRevokedTokenRepository_Revoke_Idempotent(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	r := NewRevokedTokenRepository(mock, testLogger())
	ctx := context.Background()
	jti := uuid.New().String()

	mock.ExpectExec(`INSERT INTO revoked_tokens`).
		WithArgs(jti).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, r.Revoke(ctx, jti))

	// Revoking the same jti again inserts nothing but still succeeds
	mock.ExpectExec(`INSERT INTO revoked_tokens`).
		WithArgs(jti).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))
	require.NoError(t, r.Revoke(ctx, jti))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRevokedTokenRepository_IsRevoked(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	r := NewRevokedTokenRepository(mock, testLogger())
	ctx := context.Background()
	jti := uuid.New().String()

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(jti).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	revoked, err := r.IsRevoked(ctx, jti)
	require.NoError(t, err)
	require.True(t, revoked)

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(jti).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	revoked, err = r.IsRevoked(ctx, jti)
	require.NoError(t, err)
	require.False(t, revoked)

	require.NoError(t, mock.ExpectationsWereMet())
}
