package wire

import (
	"album-shop/internal/adaptor"
	"album-shop/internal/usecase"
	"album-shop/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	auth usecase.AuthService,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	// Group routes that require authentication
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(auth, log))

		// POST /api/orders - Place an order (authenticated users only)
		r.Post("/api/orders", orderHandler.CreateOrder)

		// GET /api/user/orders - View order history (user's own orders)
		r.Get("/api/user/orders", orderHandler.GetMyOrders)

		// DELETE /api/orders/{id} - Delete order (owner or admin; stock is
		// not restored)
		r.Delete("/api/orders/{id}", orderHandler.DeleteOrder)
	})

	// ==================== ADMIN ROUTES ====================
	// Admin order management routes
	r.Route("/api/admin/orders", func(r chi.Router) {
		// Require both authentication AND admin role
		r.Use(middleware.Authenticate(auth, log))
		r.Use(middleware.Admin(auth, log))

		// GET /api/admin/orders - View all orders (admin)
		r.Get("/", orderHandler.GetAllOrders)
	})
}
