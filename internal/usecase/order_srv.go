package usecase

import (
	"context"
	"fmt"
	"time"

	"album-shop/internal/data/entity"
	"album-shop/internal/data/repository"
	"album-shop/internal/dto/request"
	"album-shop/internal/dto/response"
	"album-shop/internal/errs"
	"album-shop/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderService interface {
	// PlaceOrder validates the request, resolves the acting user and runs
	// the atomic reserve-stock-and-record-order transaction.
	PlaceOrder(ctx context.Context, username string, req *request.CreateOrderRequest) (*response.OrderResponse, error)

	GetAllOrders(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error)
	GetUserOrders(ctx context.Context, username string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error)

	// DeleteOrder is permitted to the order's owner or an admin. Stock is
	// not restored on deletion; the order is treated as a completed sale.
	// Policy decision carried over from the product, not a bug.
	DeleteOrder(ctx context.Context, username string, orderID string) error
}

type orderService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewOrderService(repo *repository.Repository, log *zap.Logger) OrderService {
	return &orderService{
		repo: repo,
		log:  log.With(zap.String("service", "order")),
	}
}

func (s *orderService) PlaceOrder(ctx context.Context, username string, req *request.CreateOrderRequest) (*response.OrderResponse, error) {
	// 1. Validate input (quantity must be a positive integer)
	if fieldErrs := utils.ValidateStruct(req); len(fieldErrs) > 0 {
		s.log.Warn("Place order validation failed", zap.Any("errors", fieldErrs))
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidInput, utils.FormatValidationErrors(fieldErrs))
	}

	albumID, err := uuid.Parse(req.AlbumID)
	if err != nil {
		return nil, fmt.Errorf("invalid album id: %w", errs.ErrInvalidInput)
	}

	// 2. Resolve the acting user
	user, err := s.repo.User.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", username, errs.ErrNotFound)
	}

	// 3-6. Stock check, price snapshot, decrement and insert all happen
	// inside one transaction; the repository fills in TotalPrice from the
	// price observed under the row lock.
	order := &entity.Order{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:   user.ID,
		AlbumID:  albumID,
		Quantity: req.Quantity,
	}

	if err := s.repo.Order.PlaceOrder(ctx, order); err != nil {
		return nil, err
	}

	s.log.Info("Order created",
		zap.String("order_id", order.ID.String()),
		zap.String("user_id", user.ID.String()),
		zap.String("album_id", albumID.String()),
		zap.Int("quantity", order.Quantity),
		zap.Float64("total_price", order.TotalPrice),
	)

	resp := response.OrderToResponse(order)
	return &resp, nil
}

func (s *orderService) GetAllOrders(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	orders, err := s.repo.Order.FindAll(ctx, limit, offset)
	if err != nil {
		s.log.Error("Failed to get orders", zap.Error(err))
		return nil, fmt.Errorf("get orders: %w", err)
	}

	total, err := s.repo.Order.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count orders", zap.Error(err))
		return nil, fmt.Errorf("count orders: %w", err)
	}

	return paginateOrders(orders, req, total), nil
}

func (s *orderService) GetUserOrders(ctx context.Context, username string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error) {
	user, err := s.repo.User.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", username, errs.ErrNotFound)
	}

	orders, err := s.repo.Order.FindByUserID(ctx, user.ID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get user orders",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
		return nil, fmt.Errorf("get user orders: %w", err)
	}

	total, err := s.repo.Order.CountByUserID(ctx, user.ID)
	if err != nil {
		s.log.Error("Failed to count user orders", zap.Error(err))
		return nil, fmt.Errorf("count user orders: %w", err)
	}

	return paginateOrders(orders, req, total), nil
}

func (s *orderService) DeleteOrder(ctx context.Context, username string, orderID string) error {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return fmt.Errorf("invalid order id: %w", errs.ErrInvalidInput)
	}

	user, err := s.repo.User.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("user %s: %w", username, errs.ErrNotFound)
	}

	order, err := s.repo.Order.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return fmt.Errorf("order %s: %w", orderID, errs.ErrNotFound)
	}

	// Owner or admin only
	if order.UserID != user.ID && user.Role != entity.RoleAdmin {
		s.log.Warn("Unauthorized order deletion attempt",
			zap.String("order_id", orderID),
			zap.String("user_id", user.ID.String()),
		)
		return fmt.Errorf("not the order owner: %w", errs.ErrForbidden)
	}

	return s.repo.Order.Delete(ctx, id)
}

func paginateOrders(orders []*entity.Order, req *request.PaginatedRequest, total int64) *response.PaginatedResponse[response.OrderResponse] {
	orderResponses := make([]response.OrderResponse, len(orders))
	for i, order := range orders {
		orderResponses[i] = response.OrderToResponse(order)
	}
	return response.NewPaginatedResponse(orderResponses, req.Page, req.PerPage, total)
}
