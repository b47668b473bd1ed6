package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"album-shop/internal/data/entity"
	"album-shop/internal/data/repository"
	"album-shop/internal/dto/request"
	"album-shop/internal/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedUser(t *testing.T, repo *repository.Repository, username string, role entity.UserRole) *entity.User {
	t.Helper()
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "irrelevant",
		Role:         role,
	}
	require.NoError(t, repo.User.Create(context.Background(), user))
	return user
}

func TestPlaceOrder(t *testing.T) {
	repo := newFakeRepository()
	svc := NewOrderService(repo, zap.NewNop())
	ctx := context.Background()

	seedUser(t, repo, "alice", entity.RoleUser)
	albumID := uuid.New()
	repo.Order.(*fakeOrderRepo).addStock(albumID, 10.0, 5)

	resp, err := svc.PlaceOrder(ctx, "alice", &request.CreateOrderRequest{
		AlbumID:  albumID.String(),
		Quantity: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Quantity)
	assert.Equal(t, 30.0, resp.TotalPrice)

	// Only 2 left; the next order for 3 must fail with the available amount
	_, err = svc.PlaceOrder(ctx, "alice", &request.CreateOrderRequest{
		AlbumID:  albumID.String(),
		Quantity: 3,
	})
	var stockErr *errs.InsufficientStockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, 2, stockErr.Available)
}

func TestPlaceOrder_UnknownAlbum(t *testing.T) {
	repo := newFakeRepository()
	svc := NewOrderService(repo, zap.NewNop())
	ctx := context.Background()

	seedUser(t, repo, "alice", entity.RoleUser)

	_, err := svc.PlaceOrder(ctx, "alice", &request.CreateOrderRequest{
		AlbumID:  uuid.New().String(),
		Quantity: 1,
	})
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestPlaceOrder_Invalid(t *testing.T) {
	repo := newFakeRepository()
	svc := NewOrderService(repo, zap.NewNop())
	ctx := context.Background()

	seedUser(t, repo, "alice", entity.RoleUser)

	_, err := svc.PlaceOrder(ctx, "alice", &request.CreateOrderRequest{
		AlbumID:  "not-a-uuid",
		Quantity: 1,
	})
	assert.ErrorIs(t, err, errs.ErrInvalidInput)

	_, err = svc.PlaceOrder(ctx, "alice", &request.CreateOrderRequest{
		AlbumID:  uuid.New().String(),
		Quantity: 0,
	})
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestGetUserOrders(t *testing.T) {
	repo := newFakeRepository()
	svc := NewOrderService(repo, zap.NewNop())
	ctx := context.Background()

	seedUser(t, repo, "alice", entity.RoleUser)
	seedUser(t, repo, "bob", entity.RoleUser)
	albumID := uuid.New()
	repo.Order.(*fakeOrderRepo).addStock(albumID, 10.0, 10)

	_, err := svc.PlaceOrder(ctx, "alice", &request.CreateOrderRequest{AlbumID: albumID.String(), Quantity: 1})
	require.NoError(t, err)
	_, err = svc.PlaceOrder(ctx, "alice", &request.CreateOrderRequest{AlbumID: albumID.String(), Quantity: 2})
	require.NoError(t, err)
	_, err = svc.PlaceOrder(ctx, "bob", &request.CreateOrderRequest{AlbumID: albumID.String(), Quantity: 1})
	require.NoError(t, err)

	page := &request.PaginatedRequest{Page: 1, PerPage: 10}
	resp, err := svc.GetUserOrders(ctx, "alice", page)
	require.NoError(t, err)
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, int64(2), resp.Pagination.Total)
}

func TestDeleteOrder_Permissions(t *testing.T) {
	repo := newFakeRepository()
	svc := NewOrderService(repo, zap.NewNop())
	ctx := context.Background()

	seedUser(t, repo, "alice", entity.RoleUser)
	seedUser(t, repo, "bob", entity.RoleUser)
	seedUser(t, repo, "root", entity.RoleAdmin)
	albumID := uuid.New()
	repo.Order.(*fakeOrderRepo).addStock(albumID, 10.0, 10)

	placed, err := svc.PlaceOrder(ctx, "alice", &request.CreateOrderRequest{AlbumID: albumID.String(), Quantity: 1})
	require.NoError(t, err)

	// A stranger cannot delete it
	err = svc.DeleteOrder(ctx, "bob", placed.ID)
	assert.ErrorIs(t, err, errs.ErrForbidden)

	// The owner can
	require.NoError(t, svc.DeleteOrder(ctx, "alice", placed.ID))

	// An admin can delete anyone's order
	placed, err = svc.PlaceOrder(ctx, "bob", &request.CreateOrderRequest{AlbumID: albumID.String(), Quantity: 1})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteOrder(ctx, "root", placed.ID))

	// Deleting a missing order reports not found
	err = svc.DeleteOrder(ctx, "alice", uuid.New().String())
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestDeleteOrder_DoesNotRestock(t *testing.T) {
	repo := newFakeRepository()
	svc := NewOrderService(repo, zap.NewNop())
	ctx := context.Background()

	seedUser(t, repo, "alice", entity.RoleUser)
	albumID := uuid.New()
	orders := repo.Order.(*fakeOrderRepo)
	orders.addStock(albumID, 10.0, 3)

	placed, err := svc.PlaceOrder(ctx, "alice", &request.CreateOrderRequest{AlbumID: albumID.String(), Quantity: 2})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteOrder(ctx, "alice", placed.ID))

	// Stock stays at 1; an order for 2 still fails
	_, err = svc.PlaceOrder(ctx, "alice", &request.CreateOrderRequest{AlbumID: albumID.String(), Quantity: 2})
	var stockErr *errs.InsufficientStockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, 1, stockErr.Available)
}
