package repository

import (
	"context"
	"errors"

	"album-shop/internal/errs"
	"album-shop/pkg/database"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type Repository struct {
	User         UserRepository
	RevokedToken RevokedTokenRepository
	Album        AlbumRepository
	Order        OrderRepository
	Review       ReviewRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:         NewUserRepository(db, log),
		RevokedToken: NewRevokedTokenRepository(db, log),
		Album:        NewAlbumRepository(db, log),
		Order:        NewOrderRepository(db, log),
		Review:       NewReviewRepository(db, log),
	}
}

// isUniqueViolation reports whether the error is a unique constraint violation.
func isUniqueViolation(err error) bool {
	var pg *pgconn.PgError
	return errors.As(err, &pg) && pg.Code == "23505"
}

// dbError translates driver-level failures into the shared taxonomy:
// unique violations become ErrConflict, timeouts become ErrTransient so
// callers know the request is safe to retry. Anything else passes through.
func dbError(err error) error {
	switch {
	case isUniqueViolation(err):
		return errs.ErrConflict
	case errors.Is(err, context.DeadlineExceeded):
		return errs.ErrTransient
	default:
		return err
	}
}
