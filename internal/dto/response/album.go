package response

import (
	"time"

	"album-shop/internal/data/entity"
)

type AlbumResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Artist      string    `json:"artist"`
	ReleaseDate string    `json:"release_date"`
	Genre       string    `json:"genre"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	ImageURL    *string   `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func AlbumToResponse(album *entity.Album) AlbumResponse {
	return AlbumResponse{
		ID:          album.ID.String(),
		Title:       album.Title,
		Artist:      album.Artist,
		ReleaseDate: album.ReleaseDate.Format("2006-01-02"),
		Genre:       album.Genre,
		Price:       album.Price,
		Quantity:    album.Quantity,
		ImageURL:    album.ImageURL,
		CreatedAt:   album.CreatedAt,
	}
}
