package dto

import "time"

// CreateSliderRequest entrada para crear un slider (JSON o multipart con campo "image").
type CreateSliderRequest struct {
	ImageURL *string `json:"imageUrl"`
	Link     string  `json:"link" validate:"required"`
	IsActive *bool   `json:"isActive"`
}

// UpdateSliderRequest actualización parcial de un slider.
type UpdateSliderRequest struct {
	ImageURL *string `json:"imageUrl"`
	Link     *string `json:"link"`
	IsActive *bool   `json:"isActive"`
}

// SliderResponse salida de un slider.
type SliderResponse struct {
	ID        int64     `json:"id"`
	ImageURL  *string   `json:"imageUrl"`
	Link      string    `json:"link"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"created_at"`
}
