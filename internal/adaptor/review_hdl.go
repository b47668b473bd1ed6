package adaptor

import (
	"encoding/json"
	"net/http"

	"album-shop/internal/dto/request"
	"album-shop/internal/usecase"
	"album-shop/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log,
	}
}

// CreateReview handles POST /api/reviews
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	subject, ok := utils.GetSubjectFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	response, err := h.service.CreateReview(r.Context(), subject, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create review")
		return
	}

	utils.ResponseCreated(w, "Review added successfully", response)
}

// GetAllReviews handles GET /api/reviews (admin)
func (h *ReviewHandler) GetAllReviews(w http.ResponseWriter, r *http.Request) {
	req := paginatedRequest(r)

	response, err := h.service.GetAllReviews(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get reviews")
		return
	}

	utils.ResponseSuccess(w, "Reviews retrieved", response)
}

// GetAlbumReviews handles GET /api/reviews/album/{id} (public)
func (h *ReviewHandler) GetAlbumReviews(w http.ResponseWriter, r *http.Request) {
	albumID := chi.URLParam(r, "id")

	response, err := h.service.GetAlbumReviews(r.Context(), albumID)
	if err != nil {
		handleServiceError(w, h.log, err, "get album reviews")
		return
	}

	utils.ResponseSuccess(w, "Reviews retrieved", response)
}

// GetUserReviews handles GET /api/reviews/user/{id} (public)
func (h *ReviewHandler) GetUserReviews(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	response, err := h.service.GetUserReviews(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get user reviews")
		return
	}

	utils.ResponseSuccess(w, "Reviews retrieved", response)
}

// UpdateReview handles PUT /api/reviews/{id} (author only)
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	subject, ok := utils.GetSubjectFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	reviewID := chi.URLParam(r, "id")

	var req request.UpdateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	response, err := h.service.UpdateReview(r.Context(), subject, reviewID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update review")
		return
	}

	utils.ResponseSuccess(w, "Review updated successfully", response)
}

// DeleteReview handles DELETE /api/reviews/{id} (author or admin)
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	subject, ok := utils.GetSubjectFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	reviewID := chi.URLParam(r, "id")

	if err := h.service.DeleteReview(r.Context(), subject, reviewID); err != nil {
		handleServiceError(w, h.log, err, "delete review")
		return
	}

	utils.ResponseSuccess(w, "Review deleted successfully", nil)
}
