package wire

import (
	"album-shop/internal/adaptor"
	"album-shop/internal/usecase"
	"album-shop/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireAuth configures the identity routes
func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	auth usecase.AuthService,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/register", authHandler.Register)
	r.Post("/api/login", authHandler.Login)

	// ==================== PROTECTED ROUTES ====================
	// Logout revokes the presented token, so it must carry a valid one
	r.With(middleware.Authenticate(auth, log)).Post("/api/logout", authHandler.Logout)
}
