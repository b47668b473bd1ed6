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

type OrderHandler struct {
	service usecase.OrderService
	log     *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log,
	}
}

// CreateOrder handles POST /api/orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	subject, ok := utils.GetSubjectFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	response, err := h.service.PlaceOrder(r.Context(), subject, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create order")
		return
	}

	utils.ResponseCreated(w, "Order created successfully", response)
}

// GetAllOrders handles GET /api/orders (admin)
func (h *OrderHandler) GetAllOrders(w http.ResponseWriter, r *http.Request) {
	req := paginatedRequest(r)

	response, err := h.service.GetAllOrders(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get orders")
		return
	}

	utils.ResponseSuccess(w, "Orders retrieved", response)
}

// GetMyOrders handles GET /api/orders/my
func (h *OrderHandler) GetMyOrders(w http.ResponseWriter, r *http.Request) {
	subject, ok := utils.GetSubjectFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	req := paginatedRequest(r)

	response, err := h.service.GetUserOrders(r.Context(), subject, req)
	if err != nil {
		handleServiceError(w, h.log, err, "get my orders")
		return
	}

	utils.ResponseSuccess(w, "Orders retrieved", response)
}

// DeleteOrder handles DELETE /api/orders/{id} (owner or admin)
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	subject, ok := utils.GetSubjectFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	orderID := chi.URLParam(r, "id")

	if err := h.service.DeleteOrder(r.Context(), subject, orderID); err != nil {
		handleServiceError(w, h.log, err, "delete order")
		return
	}

	utils.ResponseSuccess(w, "Order deleted", nil)
}
