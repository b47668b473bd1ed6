package entity

import (
	"github.com/google/uuid"
)

// Order records a completed reservation. TotalPrice is computed from the
// album price observed at order time and frozen; later price changes never
// touch existing orders.
type Order struct {
	BaseSimple
	UserID     uuid.UUID `db:"user_id"`
	AlbumID    uuid.UUID `db:"album_id"`
	Quantity   int       `db:"quantity"`
	TotalPrice float64   `db:"total_price"`
}
