package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Material insumo comprado a un proveedor.
// Cost es el costo total del lote; CostByUnit el costo por unidad de uso.
type Material struct {
	ID             int64
	Name           string
	Description    string
	IsAvailable    bool
	Cost           decimal.Decimal
	Date           string // fecha de compra tal como la envía el cliente (YYYY-MM-DD)
	SupplierID     int64
	Quantity       int64
	QuantityByUnit int64
	CostByUnit     decimal.Decimal
	CreatedAt      time.Time
}

// MaterialChanges actualización parcial de un material.
type MaterialChanges struct {
	Name           *string
	Description    *string
	IsAvailable    *bool
	Cost           *decimal.Decimal
	Date           *string
	SupplierID     *int64
	Quantity       *int64
	QuantityByUnit *int64
	CostByUnit     *decimal.Decimal
}
