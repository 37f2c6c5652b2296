package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/neryad/piki-backend/internal/application/dto"
	"github.com/neryad/piki-backend/internal/application/usecase"
	"github.com/neryad/piki-backend/internal/domain"
	"github.com/neryad/piki-backend/internal/domain/entity"
	"github.com/neryad/piki-backend/internal/mocks"
)

func TestSliderCreate_SiempreActivo(t *testing.T) {
	repo := new(mocks.MockSliderRepository)
	var saved *entity.Slider
	repo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*entity.Slider) }).
		Return(nil)
	uc := usecase.NewSliderUseCase(repo, new(mocks.MockImageStorage))

	_, err := uc.Create(context.Background(), dto.CreateSliderRequest{Link: "/ofertas", IsActive: boolPtr(false)}, nil)
	require.NoError(t, err)
	assert.True(t, saved.IsActive)
}

func TestSliderCreate_SinLink(t *testing.T) {
	uc := usecase.NewSliderUseCase(new(mocks.MockSliderRepository), new(mocks.MockImageStorage))
	_, err := uc.Create(context.Background(), dto.CreateSliderRequest{}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSliderDelete_BorraImagenSoloSiExiste(t *testing.T) {
	repo := new(mocks.MockSliderRepository)
	storage := new(mocks.MockImageStorage)
	url := "https://res.cloudinary.com/demo/image/upload/v1/piki-photos/banner.png"
	repo.On("GetImageURL", mock.Anything, int64(1)).Return(&url, true, nil)
	repo.On("GetImageURL", mock.Anything, int64(2)).Return(nil, true, nil)
	repo.On("Delete", mock.Anything, mock.Anything).Return(nil)
	storage.On("Delete", mock.Anything, url).Return(nil).Once()
	uc := usecase.NewSliderUseCase(repo, storage)

	require.NoError(t, uc.Delete(context.Background(), 1))
	require.NoError(t, uc.Delete(context.Background(), 2))
	storage.AssertNumberOfCalls(t, "Delete", 1)
	repo.AssertNumberOfCalls(t, "Delete", 2)
}

func TestSliderListActive(t *testing.T) {
	repo := new(mocks.MockSliderRepository)
	repo.On("ListActive", mock.Anything).Return([]*entity.Slider{{ID: 1, Link: "/a", IsActive: true}}, nil)
	uc := usecase.NewSliderUseCase(repo, new(mocks.MockImageStorage))

	list, err := uc.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].IsActive)
}
