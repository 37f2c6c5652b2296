package usecase

import (
	"context"

	"github.com/neryad/piki-backend/internal/application/dto"
	"github.com/neryad/piki-backend/internal/domain/entity"
	"github.com/neryad/piki-backend/internal/domain/repository"
)

// ProductMaterialUseCase CRUD de la relación producto-material.
type ProductMaterialUseCase struct {
	repo repository.ProductMaterialRepository
}

// NewProductMaterialUseCase construye el caso de uso.
func NewProductMaterialUseCase(repo repository.ProductMaterialRepository) *ProductMaterialUseCase {
	return &ProductMaterialUseCase{repo: repo}
}

func (uc *ProductMaterialUseCase) Create(ctx context.Context, in dto.CreateProductMaterialRequest) (*dto.ProductMaterialResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	pm := &entity.ProductMaterial{
		ProductID:    in.ProductID,
		MaterialID:   in.MaterialID,
		QuantityUsed: in.QuantityUsed,
		CreatedAt:    now(),
	}
	if err := uc.repo.Create(ctx, pm); err != nil {
		return nil, err
	}
	return toProductMaterialResponse(pm), nil
}

func (uc *ProductMaterialUseCase) List(ctx context.Context) ([]*dto.ProductMaterialResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductMaterialResponse, 0, len(list))
	for _, pm := range list {
		out = append(out, toProductMaterialResponse(pm))
	}
	return out, nil
}

// ListRelations devuelve las relaciones con nombres de producto y material.
func (uc *ProductMaterialUseCase) ListRelations(ctx context.Context) ([]*dto.ProductMaterialRelationResponse, error) {
	list, err := uc.repo.ListRelations(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductMaterialRelationResponse, 0, len(list))
	for _, r := range list {
		out = append(out, &dto.ProductMaterialRelationResponse{
			ID:           r.ID,
			MaterialName: r.MaterialName,
			MaterialID:   r.MaterialID,
			ProductName:  r.ProductName,
			ProductID:    r.ProductID,
			QuantityUsed: r.QuantityUsed,
		})
	}
	return out, nil
}

func (uc *ProductMaterialUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductMaterialResponse, error) {
	pm, err := uc.repo.GetByID(ctx, id)
	if err != nil || pm == nil {
		return nil, err
	}
	return toProductMaterialResponse(pm), nil
}

func (uc *ProductMaterialUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductMaterialRequest) error {
	return uc.repo.Update(ctx, id, entity.ProductMaterialChanges{
		ProductID:    in.ProductID,
		MaterialID:   in.MaterialID,
		QuantityUsed: in.QuantityUsed,
	})
}

func (uc *ProductMaterialUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func toProductMaterialResponse(pm *entity.ProductMaterial) *dto.ProductMaterialResponse {
	return &dto.ProductMaterialResponse{
		ID:           pm.ID,
		ProductID:    pm.ProductID,
		MaterialID:   pm.MaterialID,
		QuantityUsed: pm.QuantityUsed,
		CreatedAt:    pm.CreatedAt,
	}
}
