package repository

import (
	"context"
	"fmt"

	"album-shop/pkg/database"

	"go.uber.org/zap"
)

// RevokedTokenRepository is the durable revocation ledger. Revoke is an
// idempotent insert; IsRevoked is consulted on every authenticated request
// after the cheap signature/expiry check.
type RevokedTokenRepository interface {
	Revoke(ctx context.Context, jti string) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

type revokedTokenRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRevokedTokenRepository(db database.PgxIface, log *zap.Logger) RevokedTokenRepository {
	return &revokedTokenRepository{
		db:  db,
		log: log.With(zap.String("repository", "revoked_token")),
	}
}

func (r *revokedTokenRepository) Revoke(ctx context.Context, jti string) error {
	query := `
		INSERT INTO revoked_tokens (jti, created_at)
		VALUES ($1, NOW())
		ON CONFLICT (jti) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query, jti)
	if err != nil {
		r.log.Error("Failed to revoke token",
			zap.Error(err),
			zap.String("jti", jti),
		)
		return fmt.Errorf("revoke token %s: %w", jti, dbError(err))
	}

	return nil
}

func (r *revokedTokenRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM revoked_tokens WHERE jti = $1)`

	var revoked bool
	err := r.db.QueryRow(ctx, query, jti).Scan(&revoked)
	if err != nil {
		r.log.Error("Failed to check token revocation",
			zap.Error(err),
			zap.String("jti", jti),
		)
		return false, fmt.Errorf("check revocation %s: %w", jti, dbError(err))
	}

	return revoked, nil
}
