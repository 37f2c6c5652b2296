package repository

import (
	"context"

	"github.com/neryad/piki-backend/internal/domain/entity"
)

// RoleRepository define el puerto de persistencia para Role.
type RoleRepository interface {
	Create(ctx context.Context, role *entity.Role) error
	GetByID(ctx context.Context, id int64) (*entity.Role, error)
	List(ctx context.Context) ([]*entity.Role, error)
	Update(ctx context.Context, id int64, name string) error
	Delete(ctx context.Context, id int64) error
}
