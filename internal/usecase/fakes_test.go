package usecase

import (
	"context"
	"fmt"
	"sync"

	"album-shop/internal/data/entity"
	"album-shop/internal/data/repository"
	"album-shop/internal/errs"

	"github.com/google/uuid"
)

// In-memory fakes so services can be tested without a database.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == user.Username || u.Email == user.Email {
			return fmt.Errorf("create user %s: %w", user.Username, errs.ErrConflict)
		}
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var users []*entity.User
	for _, u := range f.users {
		users = append(users, u)
	}
	return users, nil
}

func (f *fakeUserRepo) CountAll(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[id]; !ok {
		return fmt.Errorf("delete user %s: %w", id.String(), errs.ErrNotFound)
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) DeleteAll(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users = make(map[uuid.UUID]*entity.User)
	return nil
}

type fakeRevokedTokenRepo struct {
	mu      sync.Mutex
	revoked map[string]bool
}

func newFakeRevokedTokenRepo() *fakeRevokedTokenRepo {
	return &fakeRevokedTokenRepo{revoked: make(map[string]bool)}
}

func (f *fakeRevokedTokenRepo) Revoke(_ context.Context, jti string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.revoked[jti] = true
	return nil
}

func (f *fakeRevokedTokenRepo) IsRevoked(_ context.Context, jti string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.revoked[jti], nil
}

type fakeAlbum struct {
	price    float64
	quantity int
}

type fakeOrderRepo struct {
	mu     sync.Mutex
	albums map[uuid.UUID]*fakeAlbum
	orders map[uuid.UUID]*entity.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		albums: make(map[uuid.UUID]*fakeAlbum),
		orders: make(map[uuid.UUID]*entity.Order),
	}
}

func (f *fakeOrderRepo) addStock(albumID uuid.UUID, price float64, quantity int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.albums[albumID] = &fakeAlbum{price: price, quantity: quantity}
}

func (f *fakeOrderRepo) PlaceOrder(_ context.Context, order *entity.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	album, ok := f.albums[order.AlbumID]
	if !ok {
		return fmt.Errorf("album %s: %w", order.AlbumID.String(), errs.ErrNotFound)
	}
	if album.quantity < order.Quantity {
		return &errs.InsufficientStockError{Available: album.quantity}
	}
	album.quantity -= order.Quantity
	order.TotalPrice = album.price * float64(order.Quantity)
	f.orders[order.ID] = order
	return nil
}

func (f *fakeOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.orders[id], nil
}

func (f *fakeOrderRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var orders []*entity.Order
	for _, o := range f.orders {
		orders = append(orders, o)
	}
	return orders, nil
}

func (f *fakeOrderRepo) FindByUserID(_ context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var orders []*entity.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (f *fakeOrderRepo) CountAll(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.orders)), nil
}

func (f *fakeOrderRepo) CountByUserID(_ context.Context, userID uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, o := range f.orders {
		if o.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeOrderRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.orders[id]; !ok {
		return fmt.Errorf("delete order %s: %w", id.String(), errs.ErrNotFound)
	}
	delete(f.orders, id)
	return nil
}

func newFakeRepository() *repository.Repository {
	return &repository.Repository{
		User:         newFakeUserRepo(),
		RevokedToken: newFakeRevokedTokenRepo(),
		Order:        newFakeOrderRepo(),
	}
}
