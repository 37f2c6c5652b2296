package mocks_test

import (
	"github.com/neryad/piki-backend/internal/application/ports"
	"github.com/neryad/piki-backend/internal/domain/repository"
	"github.com/neryad/piki-backend/internal/mocks"
)

// Los mocks deben seguir implementando los puertos.
var (
	_ repository.UserRepository            = (*mocks.MockUserRepository)(nil)
	_ repository.RoleRepository            = (*mocks.MockRoleRepository)(nil)
	_ repository.SupplierRepository        = (*mocks.MockSupplierRepository)(nil)
	_ repository.MaterialRepository        = (*mocks.MockMaterialRepository)(nil)
	_ repository.ProductRepository         = (*mocks.MockProductRepository)(nil)
	_ repository.ProductMaterialRepository = (*mocks.MockProductMaterialRepository)(nil)
	_ repository.SliderRepository          = (*mocks.MockSliderRepository)(nil)
	_ ports.ImageStorage                   = (*mocks.MockImageStorage)(nil)
	_ ports.BillOfMaterialsRenderer        = (*mocks.MockBillOfMaterialsRenderer)(nil)
)
