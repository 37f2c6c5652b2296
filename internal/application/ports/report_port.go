package ports

import (
	"context"

	"github.com/neryad/piki-backend/internal/application/dto"
)

// BillOfMaterialsRenderer genera el documento imprimible de la lista de materiales de un producto.
type BillOfMaterialsRenderer interface {
	RenderBillOfMaterials(ctx context.Context, bom *dto.BillOfMaterials) ([]byte, error)
}
