package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/neryad/piki-backend/internal/domain/entity"
)

// MockSliderRepository es un mock de repository.SliderRepository.
type MockSliderRepository struct {
	mock.Mock
}

func (m *MockSliderRepository) Create(ctx context.Context, s *entity.Slider) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSliderRepository) GetByID(ctx context.Context, id int64) (*entity.Slider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Slider), args.Error(1)
}

func (m *MockSliderRepository) GetImageURL(ctx context.Context, id int64) (*string, bool, error) {
	args := m.Called(ctx, id)
	var url *string
	if v := args.Get(0); v != nil {
		url = v.(*string)
	}
	return url, args.Bool(1), args.Error(2)
}

func (m *MockSliderRepository) ListActive(ctx context.Context) ([]*entity.Slider, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Slider), args.Error(1)
}

func (m *MockSliderRepository) Update(ctx context.Context, id int64, changes entity.SliderChanges) error {
	args := m.Called(ctx, id, changes)
	return args.Error(0)
}

func (m *MockSliderRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
