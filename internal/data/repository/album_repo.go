package repository

import (
	"context"
	"fmt"

	"album-shop/internal/data/entity"
	"album-shop/internal/errs"
	"album-shop/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AlbumRepository interface {
	Create(ctx context.Context, album *entity.Album) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Album, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Album, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, album *entity.Album) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type albumRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAlbumRepository(db database.PgxIface, log *zap.Logger) AlbumRepository {
	return &albumRepository{
		db:  db,
		log: log.With(zap.String("repository", "album")),
	}
}

func (r *albumRepository) Create(ctx context.Context, album *entity.Album) error {
	query := `
		INSERT INTO albums (id, title, artist, release_date, genre, price,
		                    quantity, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		album.ID,
		album.Title,
		album.Artist,
		album.ReleaseDate,
		album.Genre,
		album.Price,
		album.Quantity,
		album.ImageURL,
		album.CreatedAt,
		album.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create album",
			zap.Error(err),
			zap.String("title", album.Title),
		)
		return fmt.Errorf("create album %s: %w", album.Title, dbError(err))
	}

	return nil
}

func (r *albumRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Album, error) {
	query := `
		SELECT id, title, artist, release_date, genre, price,
		       quantity, image_url, created_at, updated_at
		FROM albums
		WHERE id = $1
	`

	var album entity.Album
	err := r.db.QueryRow(ctx, query, id).Scan(
		&album.ID,
		&album.Title,
		&album.Artist,
		&album.ReleaseDate,
		&album.Genre,
		&album.Price,
		&album.Quantity,
		&album.ImageURL,
		&album.CreatedAt,
		&album.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find album by ID",
			zap.Error(err),
			zap.String("album_id", id.String()),
		)
		return nil, fmt.Errorf("find album by ID %s: %w", id.String(), dbError(err))
	}

	return &album, nil
}

func (r *albumRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Album, error) {
	query := `
		SELECT id, title, artist, release_date, genre, price,
		       quantity, image_url, created_at, updated_at
		FROM albums
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to get albums",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all albums limit %d offset %d: %w", limit, offset, dbError(err))
	}
	defer rows.Close()

	var albums []*entity.Album
	for rows.Next() {
		var album entity.Album
		err := rows.Scan(
			&album.ID,
			&album.Title,
			&album.Artist,
			&album.ReleaseDate,
			&album.Genre,
			&album.Price,
			&album.Quantity,
			&album.ImageURL,
			&album.CreatedAt,
			&album.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan album row", zap.Error(err))
			return nil, fmt.Errorf("scan album row: %w", err)
		}
		albums = append(albums, &album)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate albums rows: %w", err)
	}

	return albums, nil
}

func (r *albumRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM albums`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Database error counting albums", zap.Error(err))
		return 0, fmt.Errorf("count all albums: %w", dbError(err))
	}

	return count, nil
}

// Update rewrites the catalog fields. Price changes here never touch
// existing orders; their total_price was frozen at order time.
func (r *albumRepository) Update(ctx context.Context, album *entity.Album) error {
	query := `
		UPDATE albums
		SET title = $2, artist = $3, release_date = $4, genre = $5,
		    price = $6, quantity = $7, image_url = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		album.ID,
		album.Title,
		album.Artist,
		album.ReleaseDate,
		album.Genre,
		album.Price,
		album.Quantity,
		album.ImageURL,
		album.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update album",
			zap.Error(err),
			zap.String("album_id", album.ID.String()),
		)
		return fmt.Errorf("update album %s: %w", album.ID.String(), dbError(err))
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update album %s: %w", album.ID.String(), errs.ErrNotFound)
	}

	return nil
}

func (r *albumRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM albums WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete album",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete album %s: %w", id.String(), dbError(err))
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete album %s: %w", id.String(), errs.ErrNotFound)
	}

	r.log.Info("Album deleted", zap.String("id", id.String()))
	return nil
}
