package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/neryad/piki-backend/internal/application/dto"
	"github.com/neryad/piki-backend/internal/application/ports"
	"github.com/neryad/piki-backend/internal/application/usecase"
	"github.com/neryad/piki-backend/internal/domain/entity"
	infracloudinary "github.com/neryad/piki-backend/internal/infrastructure/cloudinary"
	"github.com/neryad/piki-backend/internal/mocks"
	"github.com/neryad/piki-backend/pkg/config"
)

// Credenciales ficticias: las URLs de estos tests nunca llegan a la API de Cloudinary.
func newCloudinaryStorage(t *testing.T) *infracloudinary.Storage {
	t.Helper()
	s, err := infracloudinary.New(config.CloudinaryConfig{
		CloudName: "demo",
		APIKey:    "123",
		APISecret: "abc",
		Folder:    "piki-photos",
	})
	require.NoError(t, err)
	return s
}

func TestProductDelete_ImagenNoBorrableNoBloqueaElBorrado(t *testing.T) {
	for name, stored := range map[string]string{
		"vacia":   "",
		"blancos": "   ",
		"externa": "https://cdn.example.com/vela.jpg",
	} {
		t.Run(name, func(t *testing.T) {
			repo := new(mocks.MockProductRepository)
			url := stored
			repo.On("GetImageURL", mock.Anything, int64(5)).Return(&url, true, nil)
			repo.On("Delete", mock.Anything, int64(5)).Return(nil).Once()
			uc := usecase.NewProductUseCase(repo, new(mocks.MockProductMaterialRepository),
				newCloudinaryStorage(t), new(mocks.MockBillOfMaterialsRenderer))

			require.NoError(t, uc.Delete(context.Background(), 5))
			repo.AssertExpectations(t)
		})
	}
}

func TestSliderDelete_ImagenNoBorrableNoBloqueaElBorrado(t *testing.T) {
	for name, stored := range map[string]string{
		"vacia":   "",
		"externa": "https://cdn.example.com/banner.png",
	} {
		t.Run(name, func(t *testing.T) {
			repo := new(mocks.MockSliderRepository)
			url := stored
			repo.On("GetImageURL", mock.Anything, int64(3)).Return(&url, true, nil)
			repo.On("Delete", mock.Anything, int64(3)).Return(nil).Once()
			uc := usecase.NewSliderUseCase(repo, newCloudinaryStorage(t))

			require.NoError(t, uc.Delete(context.Background(), 3))
			repo.AssertExpectations(t)
		})
	}
}

func TestProductDelete_ImagenVaciaNoLlamaAlStorage(t *testing.T) {
	d := newProductDeps()
	empty := ""
	d.repo.On("GetImageURL", mock.Anything, int64(6)).Return(&empty, true, nil)
	d.repo.On("Delete", mock.Anything, int64(6)).Return(nil).Once()

	require.NoError(t, d.uc.Delete(context.Background(), 6))
	d.storage.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	d.repo.AssertExpectations(t)
}

func TestProductUpdate_ImagenAnteriorVaciaSoloSube(t *testing.T) {
	d := newProductDeps()
	empty := ""
	newURL := "https://res.cloudinary.com/demo/image/upload/v2/piki-photos/nueva.jpg"
	img := ports.Image{Filename: "nueva.jpg", Content: strings.NewReader("jpeg")}
	d.repo.On("GetImageURL", mock.Anything, int64(4)).Return(&empty, true, nil)
	d.storage.On("Upload", mock.Anything, img).Return(newURL, nil).Once()
	var changes entity.ProductChanges
	d.repo.On("Update", mock.Anything, int64(4), mock.Anything).
		Run(func(args mock.Arguments) { changes = args.Get(2).(entity.ProductChanges) }).
		Return(nil)

	require.NoError(t, d.uc.Update(context.Background(), 4, dto.UpdateProductRequest{}, &img))
	d.storage.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	require.NotNil(t, changes.ImageURL)
	assert.Equal(t, newURL, *changes.ImageURL)
}

func TestProductCreate_ImageURLVacioSeGuardaComoNil(t *testing.T) {
	d := newProductDeps()
	var saved *entity.Product
	d.repo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*entity.Product) }).
		Return(nil)
	in := validProduct()
	in.ImageURL = strPtr("")

	_, err := d.uc.Create(context.Background(), in, nil)
	require.NoError(t, err)
	assert.Nil(t, saved.ImageURL)
}

func TestSliderCreate_ImageURLVacioSeGuardaComoNil(t *testing.T) {
	repo := new(mocks.MockSliderRepository)
	var saved *entity.Slider
	repo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*entity.Slider) }).
		Return(nil)
	uc := usecase.NewSliderUseCase(repo, new(mocks.MockImageStorage))

	_, err := uc.Create(context.Background(), dto.CreateSliderRequest{Link: "/ofertas", ImageURL: strPtr("")}, nil)
	require.NoError(t, err)
	assert.Nil(t, saved.ImageURL)
}
