package repository

import (
	"context"
	"errors"
	"fmt"

	"album-shop/internal/data/entity"
	"album-shop/internal/errs"
	"album-shop/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OrderRepository interface {
	// PlaceOrder reserves stock and records the order in one transaction.
	PlaceOrder(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Order, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error)
	CountAll(ctx context.Context) (int64, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

// PlaceOrder executes the reservation: lock the album row, check stock,
// decrement quantity-on-hand, insert the order. The row lock serializes
// concurrent attempts on the same album so the check-then-decrement is not
// a lost-update race and quantity never goes negative.
//
// On success order.TotalPrice is filled in from the price observed under
// the lock. Failure modes: ErrNotFound (no such album) and
// InsufficientStockError carrying the available amount.
func (r *orderRepository) PlaceOrder(ctx context.Context, order *entity.Order) (err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin order tx: %w", dbError(err))
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if e := tx.Commit(ctx); e != nil {
			err = fmt.Errorf("commit order tx: %w", dbError(e))
		}
	}()

	const sel = `SELECT price, quantity FROM albums WHERE id = $1 FOR UPDATE`
	const upd = `UPDATE albums SET quantity = quantity - $2, updated_at = NOW() WHERE id = $1`
	const ins = `
		INSERT INTO orders (id, user_id, album_id, quantity, total_price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	var price float64
	var available int
	scanErr := tx.QueryRow(ctx, sel, order.AlbumID).Scan(&price, &available)
	switch {
	case errors.Is(scanErr, pgx.ErrNoRows):
		err = fmt.Errorf("album %s: %w", order.AlbumID.String(), errs.ErrNotFound)
		return err
	case scanErr != nil:
		err = fmt.Errorf("lock album %s: %w", order.AlbumID.String(), dbError(scanErr))
		return err
	}

	if available < order.Quantity {
		err = &errs.InsufficientStockError{Available: available}
		return err
	}

	// Price observed under the lock is the one frozen into the order.
	order.TotalPrice = price * float64(order.Quantity)

	if _, err = tx.Exec(ctx, upd, order.AlbumID, order.Quantity); err != nil {
		err = fmt.Errorf("decrement stock for album %s: %w", order.AlbumID.String(), dbError(err))
		return err
	}

	if _, err = tx.Exec(ctx, ins,
		order.ID,
		order.UserID,
		order.AlbumID,
		order.Quantity,
		order.TotalPrice,
		order.CreatedAt,
	); err != nil {
		err = fmt.Errorf("insert order %s: %w", order.ID.String(), dbError(err))
		return err
	}

	r.log.Info("Order placed",
		zap.String("order_id", order.ID.String()),
		zap.String("album_id", order.AlbumID.String()),
		zap.Int("quantity", order.Quantity),
		zap.Float64("total_price", order.TotalPrice),
	)

	return nil
}

func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	query := `
		SELECT id, user_id, album_id, quantity, total_price, created_at
		FROM orders
		WHERE id = $1
	`

	var order entity.Order
	err := r.db.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.UserID,
		&order.AlbumID,
		&order.Quantity,
		&order.TotalPrice,
		&order.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find order by ID",
			zap.Error(err),
			zap.String("order_id", id.String()),
		)
		return nil, fmt.Errorf("find order by ID %s: %w", id.String(), dbError(err))
	}

	return &order, nil
}

func (r *orderRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT id, user_id, album_id, quantity, total_price, created_at
		FROM orders
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	return r.scanMany(ctx, query, limit, offset)
}

func (r *orderRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT id, user_id, album_id, quantity, total_price, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	return r.scanMany(ctx, query, userID, limit, offset)
}

func (r *orderRepository) scanMany(ctx context.Context, query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to get orders", zap.Error(err))
		return nil, fmt.Errorf("find orders: %w", dbError(err))
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		var order entity.Order
		err := rows.Scan(
			&order.ID,
			&order.UserID,
			&order.AlbumID,
			&order.Quantity,
			&order.TotalPrice,
			&order.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, &order)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate orders rows: %w", err)
	}

	return orders, nil
}

func (r *orderRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM orders`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Database error counting orders", zap.Error(err))
		return 0, fmt.Errorf("count all orders: %w", dbError(err))
	}

	return count, nil
}

func (r *orderRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM orders WHERE user_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		r.log.Error("Database error counting user orders",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count orders for user %s: %w", userID.String(), dbError(err))
	}

	return count, nil
}

// Delete removes the order row. Stock is deliberately not restored; a
// deleted order represents a completed sale, not a cancellation.
func (r *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM orders WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete order",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete order %s: %w", id.String(), dbError(err))
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete order %s: %w", id.String(), errs.ErrNotFound)
	}

	r.log.Info("Order deleted", zap.String("id", id.String()))
	return nil
}
