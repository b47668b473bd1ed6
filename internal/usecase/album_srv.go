package usecase

import (
	"context"
	"fmt"
	"time"

	"album-shop/internal/data/entity"
	"album-shop/internal/data/repository"
	"album-shop/internal/dto/request"
	"album-shop/internal/dto/response"
	"album-shop/internal/errs"
	"album-shop/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AlbumService interface {
	GetAlbums(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.AlbumResponse], error)
	GetAlbumByID(ctx context.Context, albumID string) (*response.AlbumResponse, error)
	CreateAlbum(ctx context.Context, req *request.AlbumRequest) (*response.AlbumResponse, error)
	UpdateAlbum(ctx context.Context, albumID string, req *request.AlbumUpdateRequest) (*response.AlbumResponse, error)
	DeleteAlbum(ctx context.Context, albumID string) error
}

type albumService struct {
	albumRepo repository.AlbumRepository
	log       *zap.Logger
}

func NewAlbumService(albumRepo repository.AlbumRepository, log *zap.Logger) AlbumService {
	return &albumService{
		albumRepo: albumRepo,
		log:       log.With(zap.String("service", "album")),
	}
}

func (s *albumService) GetAlbums(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.AlbumResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	albums, err := s.albumRepo.FindAll(ctx, limit, offset)
	if err != nil {
		s.log.Error("Failed to get albums", zap.Error(err))
		return nil, fmt.Errorf("get albums: %w", err)
	}

	total, err := s.albumRepo.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count albums", zap.Error(err))
		return nil, fmt.Errorf("count albums: %w", err)
	}

	albumResponses := make([]response.AlbumResponse, len(albums))
	for i, album := range albums {
		albumResponses[i] = response.AlbumToResponse(album)
	}

	return response.NewPaginatedResponse(albumResponses, req.Page, req.PerPage, total), nil
}

func (s *albumService) GetAlbumByID(ctx context.Context, albumID string) (*response.AlbumResponse, error) {
	id, err := uuid.Parse(albumID)
	if err != nil {
		return nil, fmt.Errorf("invalid album id: %w", errs.ErrInvalidInput)
	}

	album, err := s.albumRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if album == nil {
		return nil, fmt.Errorf("album %s: %w", albumID, errs.ErrNotFound)
	}

	resp := response.AlbumToResponse(album)
	return &resp, nil
}

func (s *albumService) CreateAlbum(ctx context.Context, req *request.AlbumRequest) (*response.AlbumResponse, error) {
	if fieldErrs := utils.ValidateStruct(req); len(fieldErrs) > 0 {
		s.log.Warn("Create album validation failed", zap.Any("errors", fieldErrs))
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidInput, utils.FormatValidationErrors(fieldErrs))
	}

	releaseDate, err := time.Parse("2006-01-02", req.ReleaseDate)
	if err != nil {
		return nil, fmt.Errorf("invalid release date: %w", errs.ErrInvalidInput)
	}

	now := time.Now()
	album := &entity.Album{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       req.Title,
		Artist:      req.Artist,
		ReleaseDate: releaseDate,
		Genre:       req.Genre,
		Price:       req.Price,
		Quantity:    req.Quantity,
		ImageURL:    req.ImageURL,
	}

	if err := s.albumRepo.Create(ctx, album); err != nil {
		return nil, err
	}

	s.log.Info("Album created",
		zap.String("album_id", album.ID.String()),
		zap.String("title", album.Title),
		zap.Int("quantity", album.Quantity),
	)

	resp := response.AlbumToResponse(album)
	return &resp, nil
}

func (s *albumService) UpdateAlbum(ctx context.Context, albumID string, req *request.AlbumUpdateRequest) (*response.AlbumResponse, error) {
	if fieldErrs := utils.ValidateStruct(req); len(fieldErrs) > 0 {
		s.log.Warn("Update album validation failed", zap.Any("errors", fieldErrs))
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidInput, utils.FormatValidationErrors(fieldErrs))
	}

	id, err := uuid.Parse(albumID)
	if err != nil {
		return nil, fmt.Errorf("invalid album id: %w", errs.ErrInvalidInput)
	}

	album, err := s.albumRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if album == nil {
		return nil, fmt.Errorf("album %s: %w", albumID, errs.ErrNotFound)
	}

	if req.Title != nil {
		album.Title = *req.Title
	}
	if req.Artist != nil {
		album.Artist = *req.Artist
	}
	if req.ReleaseDate != nil {
		releaseDate, err := time.Parse("2006-01-02", *req.ReleaseDate)
		if err != nil {
			return nil, fmt.Errorf("invalid release date: %w", errs.ErrInvalidInput)
		}
		album.ReleaseDate = releaseDate
	}
	if req.Genre != nil {
		album.Genre = *req.Genre
	}
	if req.Price != nil {
		album.Price = *req.Price
	}
	if req.Quantity != nil {
		album.Quantity = *req.Quantity
	}
	if req.ImageURL != nil {
		album.ImageURL = req.ImageURL
	}
	album.UpdatedAt = time.Now()

	if err := s.albumRepo.Update(ctx, album); err != nil {
		return nil, err
	}

	s.log.Info("Album updated", zap.String("album_id", album.ID.String()))

	resp := response.AlbumToResponse(album)
	return &resp, nil
}

func (s *albumService) DeleteAlbum(ctx context.Context, albumID string) error {
	id, err := uuid.Parse(albumID)
	if err != nil {
		return fmt.Errorf("invalid album id: %w", errs.ErrInvalidInput)
	}

	return s.albumRepo.Delete(ctx, id)
}
