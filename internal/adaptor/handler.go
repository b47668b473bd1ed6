package adaptor

import (
	"context"
	"errors"
	"net/http"

	"album-shop/internal/errs"
	"album-shop/internal/usecase"
	"album-shop/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth   *AuthHandler
	User   *UserHandler
	Album  *AlbumHandler
	Order  *OrderHandler
	Review *ReviewHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:   NewAuthHandler(service.Auth, log),
		User:   NewUserHandler(service.User, log),
		Album:  NewAlbumHandler(service.Album, log),
		Order:  NewOrderHandler(service.Order, log),
		Review: NewReviewHandler(service.Review, log),
	}
}

// handleServiceError maps the service error taxonomy onto HTTP statuses.
// Storage-layer detail never reaches the client; unknown errors collapse
// to a generic 500.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var stockErr *errs.InsufficientStockError

	switch {
	case errors.As(err, &stockErr):
		log.Warn(operation+" rejected - insufficient stock",
			zap.Int("available", stockErr.Available))
		utils.ResponseBadRequest(w, "Not enough stock", map[string]int{"available": stockErr.Available})

	case errors.Is(err, errs.ErrInvalidInput):
		log.Warn(operation+" failed - invalid input", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, errs.ErrConflict):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, "User already exists")

	case errors.Is(err, errs.ErrUnauthorized):
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, "Invalid credentials or token")

	case errors.Is(err, errs.ErrForbidden):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	case errors.Is(err, errs.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, errs.ErrTransient), errors.Is(err, context.DeadlineExceeded):
		log.Error(operation+" failed - store unavailable", zap.Error(err))
		utils.ResponseServiceUnavailable(w, "Temporarily unavailable, please retry")

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
