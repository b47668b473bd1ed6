package wire

import (
	"album-shop/internal/adaptor"
	"album-shop/internal/usecase"
	"album-shop/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAlbum(
	r chi.Router,
	albumHandler *adaptor.AlbumHandler,
	auth usecase.AuthService,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/albums - Browse the catalog (public, anyone can view)
	r.Get("/api/albums", albumHandler.GetAlbums)

	// GET /api/albums/{id} - Album details (public)
	r.Get("/api/albums/{id}", albumHandler.GetAlbumByID)

	// ==================== ADMIN ROUTES ====================
	// Group admin routes with middleware chain
	r.Route("/api/admin/albums", func(r chi.Router) {
		// Apply middleware to all routes in this group
		r.Use(middleware.Authenticate(auth, log)) // Must carry a valid token
		r.Use(middleware.Admin(auth, log))        // Must be admin

		// Admin catalog management endpoints
		r.Post("/", albumHandler.CreateAlbum)       // POST /api/admin/albums
		r.Put("/{id}", albumHandler.UpdateAlbum)    // PUT /api/admin/albums/{id}
		r.Delete("/{id}", albumHandler.DeleteAlbum) // DELETE /api/admin/albums/{id}
	})
}
