package entity

import "time"

// Slider banner promocional de la portada.
type Slider struct {
	ID        int64
	ImageURL  *string
	Link      string
	IsActive  bool
	CreatedAt time.Time
}

// SliderChanges actualización parcial de un slider.
type SliderChanges struct {
	ImageURL *string
	Link     *string
	IsActive *bool
}
