package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductMaterialRequest entrada para relacionar un material con un producto.
type CreateProductMaterialRequest struct {
	ProductID    int64 `json:"product_id" validate:"required"`
	MaterialID   int64 `json:"material_id" validate:"required"`
	QuantityUsed int64 `json:"quantityUsed" validate:"required"`
}

// UpdateProductMaterialRequest actualización parcial de la relación.
type UpdateProductMaterialRequest struct {
	ProductID    *int64 `json:"product_id"`
	MaterialID   *int64 `json:"material_id"`
	QuantityUsed *int64 `json:"quantityUsed"`
}

// ProductMaterialResponse salida de la relación.
type ProductMaterialResponse struct {
	ID           int64     `json:"id"`
	ProductID    int64     `json:"product_id"`
	MaterialID   int64     `json:"material_id"`
	QuantityUsed int64     `json:"quantityUsed"`
	CreatedAt    time.Time `json:"created_at"`
}

// ProductMaterialRelationResponse relación con los nombres de producto y material.
type ProductMaterialRelationResponse struct {
	ID           int64  `json:"id"`
	MaterialName string `json:"materialName"`
	MaterialID   int64  `json:"materialId"`
	ProductName  string `json:"productName"`
	ProductID    int64  `json:"productId"`
	QuantityUsed int64  `json:"quantityUsed"`
}

// BillOfMaterials lista de materiales de un producto con su costo total.
type BillOfMaterials struct {
	ProductID   int64
	ProductName string
	Lines       []BillOfMaterialsLine
	Total       decimal.Decimal
}

// BillOfMaterialsLine línea del reporte.
type BillOfMaterialsLine struct {
	MaterialName string
	QuantityUsed int64
	CostByUnit   decimal.Decimal
	Subtotal     decimal.Decimal
}
