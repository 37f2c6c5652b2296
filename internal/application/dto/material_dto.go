package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMaterialRequest entrada para crear un material. Todos los campos son obligatorios.
type CreateMaterialRequest struct {
	Name           string          `json:"name" validate:"required"`
	Description    string          `json:"description" validate:"required"`
	IsAvailable    *bool           `json:"isAvailable" validate:"required,eq=true"`
	Cost           decimal.Decimal `json:"cost" validate:"required"`
	Date           string          `json:"date" validate:"required"`
	SupplierID     int64           `json:"supplier_id" validate:"required"`
	Quantity       int64           `json:"quantity" validate:"required"`
	QuantityByUnit int64           `json:"quantityByUnit" validate:"required"`
	CostByUnit     decimal.Decimal `json:"costByUnit" validate:"required"`
}

// UpdateMaterialRequest actualización parcial de un material.
type UpdateMaterialRequest struct {
	Name           *string          `json:"name"`
	Description    *string          `json:"description"`
	IsAvailable    *bool            `json:"isAvailable"`
	Cost           *decimal.Decimal `json:"cost"`
	Date           *string          `json:"date"`
	SupplierID     *int64           `json:"supplier_id"`
	Quantity       *int64           `json:"quantity"`
	QuantityByUnit *int64           `json:"quantityByUnit"`
	CostByUnit     *decimal.Decimal `json:"costByUnit"`
}

// MaterialResponse salida de un material.
type MaterialResponse struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	IsAvailable    bool            `json:"isAvailable"`
	Cost           decimal.Decimal `json:"cost"`
	Date           string          `json:"date"`
	SupplierID     int64           `json:"supplier_id"`
	Quantity       int64           `json:"quantity"`
	QuantityByUnit int64           `json:"quantityByUnit"`
	CostByUnit     decimal.Decimal `json:"costByUnit"`
	CreatedAt      time.Time       `json:"created_at"`
}
