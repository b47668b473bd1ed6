package entity

import (
	"time"
)

// Album is a sellable catalog item. Quantity is the quantity-on-hand
// counter; it is decremented only through the order reservation and must
// never go negative.
type Album struct {
	Base
	Title       string    `db:"title"`
	Artist      string    `db:"artist"`
	ReleaseDate time.Time `db:"release_date"`
	Genre       string    `db:"genre"`
	Price       float64   `db:"price"`
	Quantity    int       `db:"quantity"`
	ImageURL    *string   `db:"image_url"`
}
