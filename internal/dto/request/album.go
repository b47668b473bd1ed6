package request

type AlbumRequest struct {
	Title       string  `json:"title" validate:"required,min=1,max=200"`
	Artist      string  `json:"artist" validate:"required,min=1,max=200"`
	ReleaseDate string  `json:"release_date" validate:"required,datetime=2006-01-02"`
	Genre       string  `json:"genre" validate:"required,min=1,max=50"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Quantity    int     `json:"quantity" validate:"min=0"`
	ImageURL    *string `json:"image_url,omitempty" validate:"omitempty,url"`
}

type AlbumUpdateRequest struct {
	Title       *string  `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Artist      *string  `json:"artist,omitempty" validate:"omitempty,min=1,max=200"`
	ReleaseDate *string  `json:"release_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Genre       *string  `json:"genre,omitempty" validate:"omitempty,min=1,max=50"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Quantity    *int     `json:"quantity,omitempty" validate:"omitempty,min=0"`
	ImageURL    *string  `json:"image_url,omitempty" validate:"omitempty,url"`
}
