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

type ReviewService interface {
	CreateReview(ctx context.Context, username string, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	GetAllReviews(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error)
	GetAlbumReviews(ctx context.Context, albumID string) ([]response.ReviewResponse, error)
	GetUserReviews(ctx context.Context, userID string) ([]response.ReviewResponse, error)
	UpdateReview(ctx context.Context, username string, reviewID string, req *request.UpdateReviewRequest) (*response.ReviewResponse, error)
	DeleteReview(ctx context.Context, username string, reviewID string) error
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, username string, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if fieldErrs := utils.ValidateStruct(req); len(fieldErrs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", fieldErrs))
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidInput, utils.FormatValidationErrors(fieldErrs))
	}

	albumID, err := uuid.Parse(req.AlbumID)
	if err != nil {
		return nil, fmt.Errorf("invalid album id: %w", errs.ErrInvalidInput)
	}

	user, err := s.repo.User.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", username, errs.ErrNotFound)
	}

	album, err := s.repo.Album.FindByID(ctx, albumID)
	if err != nil {
		return nil, err
	}
	if album == nil {
		return nil, fmt.Errorf("album %s: %w", req.AlbumID, errs.ErrNotFound)
	}

	now := time.Now()
	review := &entity.Review{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:  user.ID,
		AlbumID: album.ID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		return nil, err
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("album_id", album.ID.String()),
		zap.Int("rating", review.Rating),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) GetAllReviews(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	reviews, err := s.repo.Review.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get reviews", zap.Error(err))
		return nil, fmt.Errorf("get reviews: %w", err)
	}

	total, err := s.repo.Review.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count reviews", zap.Error(err))
		return nil, fmt.Errorf("count reviews: %w", err)
	}

	reviewResponses := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		reviewResponses[i] = response.ReviewToResponse(review)
	}

	return response.NewPaginatedResponse(reviewResponses, req.Page, req.PerPage, total), nil
}

func (s *reviewService) GetAlbumReviews(ctx context.Context, albumID string) ([]response.ReviewResponse, error) {
	id, err := uuid.Parse(albumID)
	if err != nil {
		return nil, fmt.Errorf("invalid album id: %w", errs.ErrInvalidInput)
	}

	reviews, err := s.repo.Review.FindByAlbumID(ctx, id)
	if err != nil {
		return nil, err
	}

	reviewResponses := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		reviewResponses[i] = response.ReviewToResponse(review)
	}

	return reviewResponses, nil
}

func (s *reviewService) GetUserReviews(ctx context.Context, userID string) ([]response.ReviewResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", errs.ErrInvalidInput)
	}

	reviews, err := s.repo.Review.FindByUserID(ctx, id)
	if err != nil {
		return nil, err
	}

	reviewResponses := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		reviewResponses[i] = response.ReviewToResponse(review)
	}

	return reviewResponses, nil
}

// UpdateReview is author-only
func (s *reviewService) UpdateReview(ctx context.Context, username string, reviewID string, req *request.UpdateReviewRequest) (*response.ReviewResponse, error) {
	if fieldErrs := utils.ValidateStruct(req); len(fieldErrs) > 0 {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidInput, utils.FormatValidationErrors(fieldErrs))
	}

	review, user, err := s.resolveReviewAndActor(ctx, username, reviewID)
	if err != nil {
		return nil, err
	}

	if review.UserID != user.ID {
		return nil, fmt.Errorf("not the review author: %w", errs.ErrForbidden)
	}

	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Comment != nil {
		review.Comment = req.Comment
	}
	review.UpdatedAt = time.Now()

	if err := s.repo.Review.Update(ctx, review); err != nil {
		return nil, err
	}

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

// DeleteReview is permitted to the author or an admin
func (s *reviewService) DeleteReview(ctx context.Context, username string, reviewID string) error {
	review, user, err := s.resolveReviewAndActor(ctx, username, reviewID)
	if err != nil {
		return err
	}

	if review.UserID != user.ID && user.Role != entity.RoleAdmin {
		return fmt.Errorf("not the review author: %w", errs.ErrForbidden)
	}

	return s.repo.Review.Delete(ctx, review.ID)
}

func (s *reviewService) resolveReviewAndActor(ctx context.Context, username, reviewID string) (*entity.Review, *entity.User, error) {
	id, err := uuid.Parse(reviewID)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid review id: %w", errs.ErrInvalidInput)
	}

	user, err := s.repo.User.FindByUsername(ctx, username)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, fmt.Errorf("user %s: %w", username, errs.ErrNotFound)
	}

	review, err := s.repo.Review.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if review == nil {
		return nil, nil, fmt.Errorf("review %s: %w", reviewID, errs.ErrNotFound)
	}

	return review, user, nil
}
