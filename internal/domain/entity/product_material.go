package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductMaterial cantidad de un material que consume un producto.
type ProductMaterial struct {
	ID           int64
	ProductID    int64
	MaterialID   int64
	QuantityUsed int64
	CreatedAt    time.Time
}

// ProductMaterialChanges actualización parcial de la relación.
type ProductMaterialChanges struct {
	ProductID    *int64
	MaterialID   *int64
	QuantityUsed *int64
}

// ProductMaterialRelation vista con nombres de producto y material (JOIN).
type ProductMaterialRelation struct {
	ID           int64
	MaterialID   int64
	MaterialName string
	ProductID    int64
	ProductName  string
	QuantityUsed int64
}

// BillOfMaterialsLine línea de la lista de materiales de un producto, con su costo.
type BillOfMaterialsLine struct {
	MaterialID   int64
	MaterialName string
	QuantityUsed int64
	CostByUnit   decimal.Decimal
}

// Subtotal costo de la línea: cantidad usada por costo unitario.
func (l BillOfMaterialsLine) Subtotal() decimal.Decimal {
	return l.CostByUnit.Mul(decimal.NewFromInt(l.QuantityUsed))
}
