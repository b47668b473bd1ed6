package response

import (
	"time"

	"album-shop/internal/data/entity"
)

type OrderResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	AlbumID    string    `json:"album_id"`
	Quantity   int       `json:"quantity"`
	TotalPrice float64   `json:"total_price"`
	OrderDate  time.Time `json:"order_date"`
}

func OrderToResponse(order *entity.Order) OrderResponse {
	return OrderResponse{
		ID:         order.ID.String(),
		UserID:     order.UserID.String(),
		AlbumID:    order.AlbumID.String(),
		Quantity:   order.Quantity,
		TotalPrice: order.TotalPrice,
		OrderDate:  order.CreatedAt,
	}
}
