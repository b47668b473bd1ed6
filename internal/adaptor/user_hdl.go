package adaptor

import (
	"net/http"

	"album-shop/internal/dto/request"
	"album-shop/internal/usecase"
	"album-shop/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log,
	}
}

// GetUsers handles GET /api/users (admin)
func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	req := paginatedRequest(r)

	response, err := h.service.GetUsers(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get users")
		return
	}

	utils.ResponseSuccess(w, "Users retrieved", response)
}

// GetMe handles GET /api/users/me
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	subject, ok := utils.GetSubjectFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	response, err := h.service.GetMe(r.Context(), subject)
	if err != nil {
		handleServiceError(w, h.log, err, "get current user")
		return
	}

	utils.ResponseSuccess(w, "User retrieved", response)
}

// GetUserByID handles GET /api/users/{id} (public, limited fields)
func (h *UserHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	response, err := h.service.GetUserByID(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get user")
		return
	}

	utils.ResponseSuccess(w, "User retrieved", response)
}

// DeleteUser handles DELETE /api/users/{id} (admin)
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	if err := h.service.DeleteUser(r.Context(), userID); err != nil {
		handleServiceError(w, h.log, err, "delete user")
		return
	}

	utils.ResponseSuccess(w, "User deleted", nil)
}

// DeleteAllUsers handles DELETE /api/users (admin)
func (h *UserHandler) DeleteAllUsers(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteAllUsers(r.Context()); err != nil {
		handleServiceError(w, h.log, err, "delete all users")
		return
	}

	utils.ResponseSuccess(w, "All users deleted", nil)
}

// paginatedRequest reads page/per_page query params with defaults
func paginatedRequest(r *http.Request) *request.PaginatedRequest {
	return &request.PaginatedRequest{
		Page:    utils.ParseInt(r.URL.Query().Get("page"), 1),
		PerPage: utils.ParseInt(r.URL.Query().Get("per_page"), 10),
	}
}
