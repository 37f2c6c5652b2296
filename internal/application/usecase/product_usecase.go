package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/neryad/piki-backend/internal/application/dto"
	"github.com/neryad/piki-backend/internal/application/ports"
	"github.com/neryad/piki-backend/internal/domain"
	"github.com/neryad/piki-backend/internal/domain/entity"
	"github.com/neryad/piki-backend/internal/domain/repository"
)

// ProductUseCase CRUD de productos con su imagen en el almacenamiento externo.
type ProductUseCase struct {
	repo     repository.ProductRepository
	pmRepo   repository.ProductMaterialRepository
	storage  ports.ImageStorage
	renderer ports.BillOfMaterialsRenderer
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	pmRepo repository.ProductMaterialRepository,
	storage ports.ImageStorage,
	renderer ports.BillOfMaterialsRenderer,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, pmRepo: pmRepo, storage: storage, renderer: renderer}
}

// Create persiste un producto. isAvailable es obligatorio pero siempre se guarda como true.
// Si llega imagen se sube antes de insertar y su URL reemplaza a imageUrl.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest, img *ports.Image) (*dto.ProductResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	p := &entity.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		IsAvailable: true,
		OfferPrice:  in.OfferPrice,
		ImageURL:    nonBlank(in.ImageURL),
		CreatedAt:   now(),
	}
	if img != nil {
		url, err := uc.storage.Upload(ctx, *img)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
		}
		p.ImageURL = &url
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

func (uc *ProductUseCase) List(ctx context.Context) ([]*dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// GetByID obtiene un producto por ID. (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil || p == nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// Update aplica cambios parciales. Con imagen nueva: sube la nueva, luego borra la anterior
// (si había) y finalmente guarda la URL nueva. ErrNotFound si el producto no existe.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest, img *ports.Image) error {
	oldURL, found, err := uc.repo.GetImageURL(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrNotFound
	}
	changes := entity.ProductChanges{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		IsAvailable: in.IsAvailable,
		OfferPrice:  in.OfferPrice,
		ImageURL:    nonBlank(in.ImageURL),
	}
	if img != nil {
		url, err := replaceImage(ctx, uc.storage, *img, oldURL)
		if err != nil {
			return err
		}
		changes.ImageURL = &url
	}
	return uc.repo.Update(ctx, id, changes)
}

// Delete borra la imagen (solo si tiene) y después el producto. ErrNotFound si no existe.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
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

// BillOfMaterials calcula la lista de materiales del producto con el costo de cada línea.
func (uc *ProductUseCase) BillOfMaterials(ctx context.Context, id int64) (*dto.BillOfMaterials, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.pmRepo.BillOfMaterials(ctx, id)
	if err != nil {
		return nil, err
	}
	bom := &dto.BillOfMaterials{
		ProductID:   p.ID,
		ProductName: p.Name,
		Lines:       make([]dto.BillOfMaterialsLine, 0, len(lines)),
		Total:       decimal.Zero,
	}
	for _, l := range lines {
		sub := l.Subtotal()
		bom.Lines = append(bom.Lines, dto.BillOfMaterialsLine{
			MaterialName: l.MaterialName,
			QuantityUsed: l.QuantityUsed,
			CostByUnit:   l.CostByUnit,
			Subtotal:     sub,
		})
		bom.Total = bom.Total.Add(sub)
	}
	return bom, nil
}

// BillOfMaterialsPDF genera el PDF de la lista de materiales.
func (uc *ProductUseCase) BillOfMaterialsPDF(ctx context.Context, id int64) ([]byte, error) {
	bom, err := uc.BillOfMaterials(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.renderer.RenderBillOfMaterials(ctx, bom)
}

// replaceImage sube img y después borra oldURL si existía.
func replaceImage(ctx context.Context, storage ports.ImageStorage, img ports.Image, oldURL *string) (string, error) {
	url, err := storage.Upload(ctx, img)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	if hasImage(oldURL) {
		if err := storage.Delete(ctx, *oldURL); err != nil {
			return "", fmt.Errorf("%w: %v", domain.ErrStorage, err)
		}
	}
	return url, nil
}

// hasImage: una URL guardada vacía equivale a no tener imagen.
func hasImage(url *string) bool {
	return url != nil && strings.TrimSpace(*url) != ""
}

// nonBlank normaliza imageUrl vacío a nil para no persistir URLs en blanco.
func nonBlank(url *string) *string {
	if !hasImage(url) {
		return nil
	}
	return url
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		IsAvailable: p.IsAvailable,
		OfferPrice:  p.OfferPrice,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
	}
}
