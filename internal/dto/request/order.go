package request

type CreateOrderRequest struct {
	AlbumID  string `json:"album_id" validate:"required,uuid4"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}
