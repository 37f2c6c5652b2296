package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/neryad/piki-backend/internal/application/dto"
	"github.com/neryad/piki-backend/internal/application/ports"
	"github.com/neryad/piki-backend/internal/application/usecase"
	"github.com/neryad/piki-backend/internal/domain"
	"github.com/neryad/piki-backend/internal/domain/entity"
	"github.com/neryad/piki-backend/internal/mocks"
)

type productDeps struct {
	repo     *mocks.MockProductRepository
	pmRepo   *mocks.MockProductMaterialRepository
	storage  *mocks.MockImageStorage
	renderer *mocks.MockBillOfMaterialsRenderer
	uc       *usecase.ProductUseCase
}

func newProductDeps() productDeps {
	d := productDeps{
		repo:     new(mocks.MockProductRepository),
		pmRepo:   new(mocks.MockProductMaterialRepository),
		storage:  new(mocks.MockImageStorage),
		renderer: new(mocks.MockBillOfMaterialsRenderer),
	}
	d.uc = usecase.NewProductUseCase(d.repo, d.pmRepo, d.storage, d.renderer)
	return d
}

func boolPtr(b bool) *bool { return &b }

func validProduct() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:        "Vela aromática",
		Description: "Vela de soya",
		Price:       decimal.RequireFromString("450.00"),
		Stock:       12,
		IsAvailable: boolPtr(true),
	}
}

func TestProductCreate_ForzarDisponible(t *testing.T) {
	d := newProductDeps()
	var saved *entity.Product
	d.repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Product")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*entity.Product) }).
		Return(nil)

	_, err := d.uc.Create(context.Background(), validProduct(), nil)
	require.NoError(t, err)
	assert.True(t, saved.IsAvailable, "isAvailable siempre se guarda como true")
	assert.Nil(t, saved.ImageURL)
	d.storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestProductCreate_ConImagen(t *testing.T) {
	d := newProductDeps()
	img := &ports.Image{Filename: "vela.jpg", Content: strings.NewReader("jpeg")}
	d.storage.On("Upload", mock.Anything, *img).Return("https://res.cloudinary.com/demo/image/upload/v1/piki-photos/vela.jpg", nil).Once()
	var saved *entity.Product
	d.repo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*entity.Product) }).
		Return(nil)

	resp, err := d.uc.Create(context.Background(), validProduct(), img)
	require.NoError(t, err)
	require.NotNil(t, saved.ImageURL)
	assert.Equal(t, "https://res.cloudinary.com/demo/image/upload/v1/piki-photos/vela.jpg", *resp.ImageURL)
	d.storage.AssertExpectations(t)
}

func TestProductCreate_PrecioCeroEsFaltante(t *testing.T) {
	d := newProductDeps()
	in := validProduct()
	in.Price = decimal.Zero
	_, err := d.uc.Create(context.Background(), in, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = validProduct()
	in.IsAvailable = nil
	_, err = d.uc.Create(context.Background(), in, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = validProduct()
	in.IsAvailable = boolPtr(false)
	_, err = d.uc.Create(context.Background(), in, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	d.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductCreate_FalloAlSubirImagen(t *testing.T) {
	d := newProductDeps()
	img := &ports.Image{Filename: "x.jpg", Content: strings.NewReader("x")}
	d.storage.On("Upload", mock.Anything, mock.Anything).Return("", errors.New("timeout"))

	_, err := d.uc.Create(context.Background(), validProduct(), img)
	assert.ErrorIs(t, err, domain.ErrStorage)
	d.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductDelete_BorraImagenUnaVezSiExiste(t *testing.T) {
	d := newProductDeps()
	url := "https://res.cloudinary.com/demo/image/upload/v1/piki-photos/vela.jpg"
	d.repo.On("GetImageURL", mock.Anything, int64(7)).Return(&url, true, nil)
	d.storage.On("Delete", mock.Anything, url).Return(nil).Once()
	d.repo.On("Delete", mock.Anything, int64(7)).Return(nil).Once()

	require.NoError(t, d.uc.Delete(context.Background(), 7))
	d.storage.AssertNumberOfCalls(t, "Delete", 1)
	d.repo.AssertExpectations(t)
}

func TestProductDelete_SinImagenNoLlamaAlStorage(t *testing.T) {
	d := newProductDeps()
	d.repo.On("GetImageURL", mock.Anything, int64(8)).Return(nil, true, nil)
	d.repo.On("Delete", mock.Anything, int64(8)).Return(nil)

	require.NoError(t, d.uc.Delete(context.Background(), 8))
	d.storage.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestProductDelete_NoExiste(t *testing.T) {
	d := newProductDeps()
	d.repo.On("GetImageURL", mock.Anything, int64(9)).Return(nil, false, nil)

	err := d.uc.Delete(context.Background(), 9)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	d.repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestProductUpdate_ReemplazaImagen(t *testing.T) {
	d := newProductDeps()
	oldURL := "https://res.cloudinary.com/demo/image/upload/v1/piki-photos/old.jpg"
	newURL := "https://res.cloudinary.com/demo/image/upload/v2/piki-photos/new.jpg"
	img := &ports.Image{Filename: "new.jpg", Content: strings.NewReader("jpeg")}

	var order []string
	d.repo.On("GetImageURL", mock.Anything, int64(3)).Return(&oldURL, true, nil)
	d.storage.On("Upload", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { order = append(order, "upload") }).
		Return(newURL, nil).Once()
	d.storage.On("Delete", mock.Anything, oldURL).
		Run(func(mock.Arguments) { order = append(order, "delete") }).
		Return(nil).Once()
	var changes entity.ProductChanges
	d.repo.On("Update", mock.Anything, int64(3), mock.Anything).
		Run(func(args mock.Arguments) {
			order = append(order, "update")
			changes = args.Get(2).(entity.ProductChanges)
		}).
		Return(nil)

	err := d.uc.Update(context.Background(), 3, dto.UpdateProductRequest{Name: strPtr("Nuevo")}, img)
	require.NoError(t, err)
	assert.Equal(t, []string{"upload", "delete", "update"}, order)
	require.NotNil(t, changes.ImageURL)
	assert.Equal(t, newURL, *changes.ImageURL)
	assert.Equal(t, "Nuevo", *changes.Name)
	assert.Nil(t, changes.Price, "los campos omitidos no se modifican")
}

func TestProductUpdate_SinImagenNuevaConservaLaAnterior(t *testing.T) {
	d := newProductDeps()
	oldURL := "https://res.cloudinary.com/demo/image/upload/v1/piki-photos/old.jpg"
	d.repo.On("GetImageURL", mock.Anything, int64(3)).Return(&oldURL, true, nil)
	var changes entity.ProductChanges
	d.repo.On("Update", mock.Anything, int64(3), mock.Anything).
		Run(func(args mock.Arguments) { changes = args.Get(2).(entity.ProductChanges) }).
		Return(nil)

	require.NoError(t, d.uc.Update(context.Background(), 3, dto.UpdateProductRequest{}, nil))
	assert.Nil(t, changes.ImageURL)
	d.storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
	d.storage.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestProductUpdate_NoExiste(t *testing.T) {
	d := newProductDeps()
	d.repo.On("GetImageURL", mock.Anything, int64(3)).Return(nil, false, nil)

	err := d.uc.Update(context.Background(), 3, dto.UpdateProductRequest{}, nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductBillOfMaterials_CalculaTotales(t *testing.T) {
	d := newProductDeps()
	d.repo.On("GetByID", mock.Anything, int64(2)).Return(&entity.Product{ID: 2, Name: "Vela"}, nil)
	d.pmRepo.On("BillOfMaterials", mock.Anything, int64(2)).Return([]entity.BillOfMaterialsLine{
		{MaterialID: 1, MaterialName: "Cera", QuantityUsed: 3, CostByUnit: decimal.RequireFromString("12.50")},
		{MaterialID: 2, MaterialName: "Mecha", QuantityUsed: 1, CostByUnit: decimal.RequireFromString("4")},
	}, nil)

	bom, err := d.uc.BillOfMaterials(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, bom.Lines, 2)
	assert.True(t, decimal.RequireFromString("37.5").Equal(bom.Lines[0].Subtotal))
	assert.True(t, decimal.RequireFromString("41.5").Equal(bom.Total))
	assert.Equal(t, "Vela", bom.ProductName)
}

func TestProductBillOfMaterialsPDF_ProductoInexistente(t *testing.T) {
	d := newProductDeps()
	d.repo.On("GetByID", mock.Anything, int64(2)).Return(nil, nil)

	_, err := d.uc.BillOfMaterialsPDF(context.Background(), 2)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	d.renderer.AssertNotCalled(t, "RenderBillOfMaterials", mock.Anything, mock.Anything)
}
