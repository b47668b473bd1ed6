package repository

import (
	"context"
	"testing"
	"time"

	"album-shop/internal/data/entity"
	"album-shop/internal/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"
)

func testUser() *entity.User {
	now := time.Now()
	return &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$hash",
		Role:         entity.RoleUser,
	}
}

func TestUserRepository_Create_OK_and_UniqueViolation(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	r := NewUserRepository(mock, testLogger())
	ctx := context.Background()
	u := testUser()

	// OK
	mock.ExpectExec(`INSERT INTO users`).
		WithArgs(u.ID, u.Username, u.Email, u.PasswordHash, u.Role, u.CreatedAt, u.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, r.Create(ctx, u))

	// Unique violation maps to a conflict
	mock.ExpectExec(`INSERT INTO users`).
		WithArgs(u.ID, u.Username, u.Email, u.PasswordHash, u.Role, u.CreatedAt, u.UpdatedAt).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	err := r.Create(ctx, u)
	require.ErrorIs(t, err, errs.ErrConflict)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByUsername(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	r := NewUserRepository(mock, testLogger())
	ctx := context.Background()
	u := testUser()

	cols := []string{"id", "username", "email", "password", "role", "created_at", "updated_at"}

	mock.ExpectQuery(`SELECT id, username, email, password, role, created_at, updated_at`).
		WithArgs(u.Username).
		WillReturnRows(pgxmock.NewRows(cols).
			AddRow(u.ID, u.Username, u.Email, u.PasswordHash, u.Role, u.CreatedAt, u.UpdatedAt))
	found, err := r.FindByUsername(ctx, u.Username)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, u.ID, found.ID)
	require.Equal(t, u.Username, found.Username)

	// Absence is not an error
	mock.ExpectQuery(`SELECT id, username, email, password, role, created_at, updated_at`).
		WithArgs("nobody").
		WillReturnError(pgx.ErrNoRows)
	found, err = r.FindByUsername(ctx, "nobody")
	require.NoError(t, err)
	require.Nil(t, found)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Delete(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	r := NewUserRepository(mock, testLogger())
	ctx := context.Background()
	id := uuid.New()

	mock.ExpectExec(`DELETE FROM users WHERE id`).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	require.NoError(t, r.Delete(ctx, id))

	mock.ExpectExec(`DELETE FROM users WHERE id`).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	err := r.Delete(ctx, id)
	require.ErrorIs(t, err, errs.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}
