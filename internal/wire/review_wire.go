package wire

import (
	"album-shop/internal/adaptor"
	"album-shop/internal/usecase"
	"album-shop/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	auth usecase.AuthService,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/reviews/album/{id} - View album reviews (public)
	r.Get("/api/reviews/album/{id}", reviewHandler.GetAlbumReviews)

	// GET /api/reviews/user/{id} - View a user's reviews (public)
	r.Get("/api/reviews/user/{id}", reviewHandler.GetUserReviews)

	// ==================== PROTECTED ROUTES (require auth) ====================
	// Group routes that require authentication
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(auth, log))

		// POST /api/reviews - Create new review (authenticated users only)
		r.Post("/api/reviews", reviewHandler.CreateReview)

		// PUT /api/reviews/{id} - Update review (author only)
		r.Put("/api/reviews/{id}", reviewHandler.UpdateReview)

		// DELETE /api/reviews/{id} - Delete review (author or admin)
		r.Delete("/api/reviews/{id}", reviewHandler.DeleteReview)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/reviews", func(r chi.Router) {
		r.Use(middleware.Authenticate(auth, log))
		r.Use(middleware.Admin(auth, log))

		// GET /api/admin/reviews - View all reviews (admin)
		r.Get("/", reviewHandler.GetAllReviews)
	})
}
