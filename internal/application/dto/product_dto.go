package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto (JSON o multipart con campo "image").
type CreateProductRequest struct {
	Name        string           `json:"name" validate:"required"`
	Description string           `json:"description" validate:"required"`
	Price       decimal.Decimal  `json:"price" validate:"required"`
	Stock       int64            `json:"stock" validate:"required"`
	IsAvailable *bool            `json:"isAvailable" validate:"required,eq=true"`
	OfferPrice  *decimal.Decimal `json:"offerPrice"`
	ImageURL    *string          `json:"imageUrl"`
}

// UpdateProductRequest actualización parcial de un producto.
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int64           `json:"stock"`
	IsAvailable *bool            `json:"isAvailable"`
	OfferPrice  *decimal.Decimal `json:"offerPrice"`
	ImageURL    *string          `json:"imageUrl"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       decimal.Decimal  `json:"price"`
	Stock       int64            `json:"stock"`
	IsAvailable bool             `json:"isAvailable"`
	OfferPrice  *decimal.Decimal `json:"offerPrice"`
	ImageURL    *string          `json:"imageUrl"`
	CreatedAt   time.Time        `json:"created_at"`
}
