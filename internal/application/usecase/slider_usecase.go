package usecase

import (
	"context"
	"fmt"

	"github.com/neryad/piki-backend/internal/application/dto"
	"github.com/neryad/piki-backend/internal/application/ports"
	"github.com/neryad/piki-backend/internal/domain"
	"github.com/neryad/piki-backend/internal/domain/entity"
	"github.com/neryad/piki-backend/internal/domain/repository"
)

// SliderUseCase CRUD de sliders de portada. Sigue las mismas reglas de imagen que los productos.
type SliderUseCase struct {
	repo    repository.SliderRepository
	storage ports.ImageStorage
}

// NewSliderUseCase construye el caso de uso.
func NewSliderUseCase(repo repository.SliderRepository, storage ports.ImageStorage) *SliderUseCase {
	return &SliderUseCase{repo: repo, storage: storage}
}

// Create persiste un slider activo. El link es obligatorio; isActive se ignora en el alta.
func (uc *SliderUseCase) Create(ctx context.Context, in dto.CreateSliderRequest, img *ports.Image) (*dto.SliderResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	s := &entity.Slider{
		ImageURL:  nonBlank(in.ImageURL),
		Link:      in.Link,
		IsActive:  true,
		CreatedAt: now(),
	}
	if img != nil {
		url, err := uc.storage.Upload(ctx, *img)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
		}
		s.ImageURL = &url
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return toSliderResponse(s), nil
}

// ListActive devuelve solo los sliders activos.
func (uc *SliderUseCase) ListActive(ctx context.Context) ([]*dto.SliderResponse, error) {
	list, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SliderResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSliderResponse(s))
	}
	return out, nil
}

func (uc *SliderUseCase) GetByID(ctx context.Context, id int64) (*dto.SliderResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil || s == nil {
		return nil, err
	}
	return toSliderResponse(s), nil
}

// Update con imagen nueva: sube, borra la anterior y guarda. ErrNotFound si no existe.
func (uc *SliderUseCase) Update(ctx context.Context, id int64, in dto.UpdateSliderRequest, img *ports.Image) error {
	oldURL, found, err := uc.repo.GetImageURL(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrNotFound
	}
	changes := entity.SliderChanges{ImageURL: nonBlank(in.ImageURL), Link: in.Link, IsActive: in.IsActive}
	if img != nil {
		url, err := replaceImage(ctx, uc.storage, *img, oldURL)
		if err != nil {
			return err
		}
		changes.ImageURL = &url
	}
	return uc.repo.Update(ctx, id, changes)
}

// Delete borra la imagen (si tiene) y el slider. ErrNotFound si no existe.
func (uc *SliderUseCase) Delete(ctx context.Context, id int64) error {
	url, found, err := uc.repo.GetImageURL(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrNotFound
	}
	if hasImage(url) {
		if err := uc.storage.Delete(ctx, *url); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrStorage, err)
		}
	}
	return uc.repo.Delete(ctx, id)
}

func toSliderResponse(s *entity.Slider) *dto.SliderResponse {
	return &dto.SliderResponse{
		ID:        s.ID,
		ImageURL:  s.ImageURL,
		Link:      s.Link,
		IsActive:  s.IsActive,
		CreatedAt: s.CreatedAt,
	}
}
