package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/neryad/piki-backend/internal/application/auth"
	"github.com/neryad/piki-backend/internal/application/usecase"
	"github.com/neryad/piki-backend/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC            *auth.AuthUseCase
	UserUC            *usecase.UserUseCase
	RoleUC            *usecase.RoleUseCase
	SupplierUC        *usecase.SupplierUseCase
	MaterialUC        *usecase.MaterialUseCase
	ProductUC         *usecase.ProductUseCase
	ProductMaterialUC *usecase.ProductMaterialUseCase
	SliderUC          *usecase.SliderUseCase
	Codec             *jwt.Codec
	LoginLimiter      *LoginLimiter
	Metrics           *Metrics // opcional
}

// Router registra las rutas de la API. Las rutas estáticas van antes que las de :id.
func Router(app *fiber.App, deps RouterDeps) {
	requireAuth := AuthMiddleware(deps.Codec)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	if deps.Metrics != nil {
		app.Get("/metrics", deps.Metrics.Handler())
	}

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := app.Group("/auth")
	if deps.LoginLimiter != nil {
		authGroup.Post("/login", deps.LoginLimiter.Middleware(), authHandler.Login)
	} else {
		authGroup.Post("/login", authHandler.Login)
	}
	authGroup.Post("/refresh", requireAuth, authHandler.Refresh)

	// Users (protegido)
	userHandler := NewUserHandler(deps.UserUC)
	users := app.Group("/users", requireAuth)
	users.Post("/", userHandler.Create)
	users.Get("/allUsers", userHandler.List)
	users.Post("/userByEmail", userHandler.GetByEmail)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Roles (protegido)
	roleHandler := NewRoleHandler(deps.RoleUC)
	roles := app.Group("/roles", requireAuth)
	roles.Post("/", roleHandler.Create)
	roles.Get("/", roleHandler.List)
	roles.Get("/:id", roleHandler.GetByID)
	roles.Put("/:id", roleHandler.Update)
	roles.Delete("/:id", roleHandler.Delete)

	// Suppliers (protegido)
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers := app.Group("/suppliers", requireAuth)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/allUsers", supplierHandler.List)
	suppliers.Post("/userByEmail", supplierHandler.GetByEmail)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Materials (protegido)
	materialHandler := NewMaterialHandler(deps.MaterialUC)
	materials := app.Group("/materials", requireAuth)
	materials.Post("/", materialHandler.Create)
	materials.Get("/", materialHandler.List)
	materials.Get("/:id", materialHandler.GetByID)
	materials.Put("/:id", materialHandler.Update)
	materials.Delete("/:id", materialHandler.Delete)

	// Products (lectura pública)
	productHandler := NewProductHandler(deps.ProductUC)
	products := app.Group("/products")
	products.Get("/", productHandler.List)
	products.Get("/:id/materials/pdf", requireAuth, productHandler.BillOfMaterialsPDF)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", requireAuth, productHandler.Create)
	products.Put("/:id", requireAuth, productHandler.Update)
	products.Delete("/:id", requireAuth, productHandler.Delete)

	// ProductsMaterials (protegido)
	pmHandler := NewProductMaterialHandler(deps.ProductMaterialUC)
	productsMaterials := app.Group("/productsMaterials", requireAuth)
	productsMaterials.Post("/", pmHandler.Create)
	productsMaterials.Get("/", pmHandler.List)
	productsMaterials.Get("/relation", pmHandler.ListRelations)
	productsMaterials.Get("/:id", pmHandler.GetByID)
	productsMaterials.Put("/:id", pmHandler.Update)
	productsMaterials.Delete("/:id", pmHandler.Delete)

	// Sliders (lectura pública)
	sliderHandler := NewSliderHandler(deps.SliderUC)
	sliders := app.Group("/sliders")
	sliders.Get("/", sliderHandler.List)
	sliders.Get("/:id", sliderHandler.GetByID)
	sliders.Post("/", requireAuth, sliderHandler.Create)
	sliders.Put("/:id", requireAuth, sliderHandler.Update)
	sliders.Delete("/:id", requireAuth, sliderHandler.Delete)
}
