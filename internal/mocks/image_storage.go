package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/neryad/piki-backend/internal/application/dto"
	"github.com/neryad/piki-backend/internal/application/ports"
)

// MockImageStorage es un mock de ports.ImageStorage.
type MockImageStorage struct {
	mock.Mock
}

func (m *MockImageStorage) Upload(ctx context.Context, img ports.Image) (string, error) {
	args := m.Called(ctx, img)
	return args.String(0), args.Error(1)
}

func (m *MockImageStorage) Delete(ctx context.Context, url string) error {
	args := m.Called(ctx, url)
	return args.Error(0)
}

// MockBillOfMaterialsRenderer es un mock de ports.BillOfMaterialsRenderer.
type MockBillOfMaterialsRenderer struct {
	mock.Mock
}

func (m *MockBillOfMaterialsRenderer) RenderBillOfMaterials(ctx context.Context, bom *dto.BillOfMaterials) ([]byte, error) {
	args := m.Called(ctx, bom)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
