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

type AlbumHandler struct {
	service usecase.AlbumService
	log     *zap.Logger
}

func NewAlbumHandler(service usecase.AlbumService, log *zap.Logger) *AlbumHandler {
	return &AlbumHandler{
		service: service,
		log:     log,
	}
}

// GetAlbums handles GET /api/albums (public)
func (h *AlbumHandler) GetAlbums(w http.ResponseWriter, r *http.Request) {
	req := paginatedRequest(r)

	response, err := h.service.GetAlbums(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get albums")
		return
	}

	utils.ResponseSuccess(w, "Albums retrieved", response)
}

// GetAlbumByID handles GET /api/albums/{id} (public)
func (h *AlbumHandler) GetAlbumByID(w http.ResponseWriter, r *http.Request) {
	albumID := chi.URLParam(r, "id")

	response, err := h.service.GetAlbumByID(r.Context(), albumID)
	if err != nil {
		handleServiceError(w, h.log, err, "get album")
		return
	}

	utils.ResponseSuccess(w, "Album retrieved", response)
}

// CreateAlbum handles POST /api/albums (admin)
func (h *AlbumHandler) CreateAlbum(w http.ResponseWriter, r *http.Request) {
	var req request.AlbumRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	response, err := h.service.CreateAlbum(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create album")
		return
	}

	utils.ResponseCreated(w, "Album created successfully", response)
}

// UpdateAlbum handles PUT /api/albums/{id} (admin)
func (h *AlbumHandler) UpdateAlbum(w http.ResponseWriter, r *http.Request) {
	albumID := chi.URLParam(r, "id")

	var req request.AlbumUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	response, err := h.service.UpdateAlbum(r.Context(), albumID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update album")
		return
	}

	utils.ResponseSuccess(w, "Album updated", response)
}

// DeleteAlbum handles DELETE /api/albums/{id} (admin)
func (h *AlbumHandler) DeleteAlbum(w http.ResponseWriter, r *http.Request) {
	albumID := chi.URLParam(r, "id")

	if err := h.service.DeleteAlbum(r.Context(), albumID); err != nil {
		handleServiceError(w, h.log, err, "delete album")
		return
	}

	utils.ResponseSuccess(w, "Album deleted successfully", nil)
}
