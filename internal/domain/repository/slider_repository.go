package repository

import (
	"context"

	"github.com/neryad/piki-backend/internal/domain/entity"
)

// SliderRepository define el puerto de persistencia para Slider.
type SliderRepository interface {
	Create(ctx context.Context, slider *entity.Slider) error
	GetByID(ctx context.Context, id int64) (*entity.Slider, error)
	GetImageURL(ctx context.Context, id int64) (url *string, found bool, err error)
	ListActive(ctx context.Context) ([]*entity.Slider, error)
	Update(ctx context.Context, id int64, changes entity.SliderChanges) error
	Delete(ctx context.Context, id int64) error
}
