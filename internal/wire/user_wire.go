package wire

import (
	"album-shop/internal/adaptor"
	"album-shop/internal/usecase"
	"album-shop/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireUser configures user management routes with role-based access control
func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	auth usecase.AuthService,
	log *zap.Logger,
) {
	// ==================== PUBLIC USER ROUTES ====================
	// Public profile lookup exposes only id and username
	r.Get("/api/users/{id}", userHandler.GetUserByID)

	// ==================== PROTECTED USER ROUTES ====================
	// Own profile - requires authentication
	r.With(middleware.Authenticate(auth, log)).Get("/api/user/me", userHandler.GetMe)

	// ==================== ADMIN ROUTES ====================
	// Admin user management - requires both authentication AND admin role
	r.Route("/api/admin/users", func(r chi.Router) {
		r.Use(middleware.Authenticate(auth, log)) // Check valid token
		r.Use(middleware.Admin(auth, log))        // Check admin role

		r.Get("/", userHandler.GetUsers)          // GET /api/admin/users?page=1&per_page=10
		r.Delete("/{id}", userHandler.DeleteUser) // DELETE /api/admin/users/{user-id}
		r.Delete("/", userHandler.DeleteAllUsers) // DELETE /api/admin/users
	})
}
