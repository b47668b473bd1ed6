package entity

import (
	"github.com/google/uuid"
)

type Review struct {
	Base
	UserID  uuid.UUID `db:"user_id"`
	AlbumID uuid.UUID `db:"album_id"`
	Rating  int       `db:"rating"` // 1-5
	Comment *string   `db:"comment"`
}
