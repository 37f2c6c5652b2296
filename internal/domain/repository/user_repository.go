package repository

import (
	"context"

	"github.com/neryad/piki-backend/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los Get* devuelven (nil, nil) cuando no hay fila.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	// Update devuelve false si no existe el usuario.
	Update(ctx context.Context, id int64, changes entity.UserChanges) (bool, error)
	Delete(ctx context.Context, id int64) error
}
