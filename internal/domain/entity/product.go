package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto terminado a la venta. OfferPrice e ImageURL son opcionales.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int64
	IsAvailable bool
	OfferPrice  *decimal.Decimal
	ImageURL    *string
	CreatedAt   time.Time
}

// ProductChanges actualización parcial de un producto.
type ProductChanges struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Stock       *int64
	IsAvailable *bool
	OfferPrice  *decimal.Decimal
	ImageURL    *string
}
