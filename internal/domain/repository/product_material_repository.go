package repository

import (
	"context"

	"github.com/neryad/piki-backend/internal/domain/entity"
)

// ProductMaterialRepository define el puerto de persistencia para la relación producto-material.
type ProductMaterialRepository interface {
	Create(ctx context.Context, pm *entity.ProductMaterial) error
	GetByID(ctx context.Context, id int64) (*entity.ProductMaterial, error)
	List(ctx context.Context) ([]*entity.ProductMaterial, error)
	ListRelations(ctx context.Context) ([]*entity.ProductMaterialRelation, error)
	BillOfMaterials(ctx context.Context, productID int64) ([]entity.BillOfMaterialsLine, error)
	Update(ctx context.Context, id int64, changes entity.ProductMaterialChanges) error
	Delete(ctx context.Context, id int64) error
}
