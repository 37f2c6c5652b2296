package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/neryad/piki-backend/internal/domain/entity"
)

// MockProductMaterialRepository es un mock de repository.ProductMaterialRepository.
type MockProductMaterialRepository struct {
	mock.Mock
}

func (m *MockProductMaterialRepository) Create(ctx context.Context, pm *entity.ProductMaterial) error {
	args := m.Called(ctx, pm)
	return args.Error(0)
}

func (m *MockProductMaterialRepository) GetByID(ctx context.Context, id int64) (*entity.ProductMaterial, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ProductMaterial), args.Error(1)
}

func (m *MockProductMaterialRepository) List(ctx context.Context) ([]*entity.ProductMaterial, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ProductMaterial), args.Error(1)
}

func (m *MockProductMaterialRepository) ListRelations(ctx context.Context) ([]*entity.ProductMaterialRelation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ProductMaterialRelation), args.Error(1)
}

func (m *MockProductMaterialRepository) BillOfMaterials(ctx context.Context, productID int64) ([]entity.BillOfMaterialsLine, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.BillOfMaterialsLine), args.Error(1)
}

func (m *MockProductMaterialRepository) Update(ctx context.Context, id int64, changes entity.ProductMaterialChanges) error {
	args := m.Called(ctx, id, changes)
	return args.Error(0)
}

func (m *MockProductMaterialRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
