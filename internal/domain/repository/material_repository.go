package repository

import (
	"context"

	"github.com/neryad/piki-backend/internal/domain/entity"
)

// MaterialRepository define el puerto de persistencia para Material.
type MaterialRepository interface {
	Create(ctx context.Context, material *entity.Material) error
	GetByID(ctx context.Context, id int64) (*entity.Material, error)
	List(ctx context.Context) ([]*entity.Material, error)
	Update(ctx context.Context, id int64, changes entity.MaterialChanges) error
	Delete(ctx context.Context, id int64) error
}
