package repository

import (
	"context"

	"github.com/neryad/piki-backend/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// GetImageURL devuelve found=false si el producto no existe; url puede ser nil.
	GetImageURL(ctx context.Context, id int64) (url *string, found bool, err error)
	List(ctx context.Context) ([]*entity.Product, error)
	Update(ctx context.Context, id int64, changes entity.ProductChanges) error
	Delete(ctx context.Context, id int64) error
}
