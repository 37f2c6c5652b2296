package usecase

import (
	"context"

	"github.com/neryad/piki-backend/internal/application/dto"
	"github.com/neryad/piki-backend/internal/domain/entity"
	"github.com/neryad/piki-backend/internal/domain/repository"
)

// MaterialUseCase CRUD de materiales.
type MaterialUseCase struct {
	repo repository.MaterialRepository
}

// NewMaterialUseCase construye el caso de uso.
func NewMaterialUseCase(repo repository.MaterialRepository) *MaterialUseCase {
	return &MaterialUseCase{repo: repo}
}

// Create exige todos los campos (ceros y cadenas vacías cuentan como ausentes).
func (uc *MaterialUseCase) Create(ctx context.Context, in dto.CreateMaterialRequest) (*dto.MaterialResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	m := &entity.Material{
		Name:           in.Name,
		Description:    in.Description,
		IsAvailable:    *in.IsAvailable,
		Cost:           in.Cost,
		Date:           in.Date,
		SupplierID:     in.SupplierID,
		Quantity:       in.Quantity,
		QuantityByUnit: in.QuantityByUnit,
		CostByUnit:     in.CostByUnit,
		CreatedAt:      now(),
	}
	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return toMaterialResponse(m), nil
}

func (uc *MaterialUseCase) List(ctx context.Context) ([]*dto.MaterialResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MaterialResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toMaterialResponse(m))
	}
	return out, nil
}

func (uc *MaterialUseCase) GetByID(ctx context.Context, id int64) (*dto.MaterialResponse, error) {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil || m == nil {
		return nil, err
	}
	return toMaterialResponse(m), nil
}

func (uc *MaterialUseCase) Update(ctx context.Context, id int64, in dto.UpdateMaterialRequest) error {
	return uc.repo.Update(ctx, id, entity.MaterialChanges{
		Name:           in.Name,
		Description:    in.Description,
		IsAvailable:    in.IsAvailable,
		Cost:           in.Cost,
		Date:           in.Date,
		SupplierID:     in.SupplierID,
		Quantity:       in.Quantity,
		QuantityByUnit: in.QuantityByUnit,
		CostByUnit:     in.CostByUnit,
	})
}

func (uc *MaterialUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func toMaterialResponse(m *entity.Material) *dto.MaterialResponse {
	return &dto.MaterialResponse{
		ID:             m.ID,
		Name:           m.Name,
		Description:    m.Description,
		IsAvailable:    m.IsAvailable,
		Cost:           m.Cost,
		Date:           m.Date,
		SupplierID:     m.SupplierID,
		Quantity:       m.Quantity,
		QuantityByUnit: m.QuantityByUnit,
		CostByUnit:     m.CostByUnit,
		CreatedAt:      m.CreatedAt,
	}
}
