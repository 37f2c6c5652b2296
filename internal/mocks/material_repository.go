package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/neryad/piki-backend/internal/domain/entity"
)

// MockMaterialRepository es un mock de repository.MaterialRepository.
type MockMaterialRepository struct {
	mock.Mock
}

func (m *MockMaterialRepository) Create(ctx context.Context, material *entity.Material) error {
	args := m.Called(ctx, material)
	return args.Error(0)
}

func (m *MockMaterialRepository) GetByID(ctx context.Context, id int64) (*entity.Material, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Material), args.Error(1)
}

func (m *MockMaterialRepository) List(ctx context.Context) ([]*entity.Material, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Material), args.Error(1)
}

func (m *MockMaterialRepository) Update(ctx context.Context, id int64, changes entity.MaterialChanges) error {
	args := m.Called(ctx, id, changes)
	return args.Error(0)
}

func (m *MockMaterialRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
