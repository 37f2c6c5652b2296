package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/neryad/piki-backend/internal/application/dto"
	"github.com/neryad/piki-backend/internal/application/usecase"
)

// ProductMaterialHandler relaciones producto-material (protegido).
type ProductMaterialHandler struct {
	uc *usecase.ProductMaterialUseCase
}

func NewProductMaterialHandler(uc *usecase.ProductMaterialUseCase) *ProductMaterialHandler {
	return &ProductMaterialHandler{uc: uc}
}

// Create godoc
// @Summary      Asignar material a producto
// @Tags         productsMaterials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductMaterialRequest  true  "product_id, material_id, quantityUsed"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /productsMaterials [post]
func (h *ProductMaterialHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "INVALID_BODY", productMaterialMessages.missing)
	}
	if _, err := h.uc.Create(c.UserContext(), in); err != nil {
		return fail(c, err, productMaterialMessages, "Error al crear el material de producto")
	}
	return messageJSON(c, fiber.StatusCreated, "Material de producto creado exitosamente")
}

// List godoc
// @Summary      Listar relaciones producto-material
// @Tags         productsMaterials
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductMaterialResponse
// @Router       /productsMaterials [get]
func (h *ProductMaterialHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return fail(c, err, productMaterialMessages, "Error al obtener los materiales de productos")
	}
	return c.JSON(out)
}

// ListRelations godoc
// @Summary      Listar relaciones con nombres de producto y material
// @Tags         productsMaterials
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductMaterialRelationResponse
// @Router       /productsMaterials/relation [get]
func (h *ProductMaterialHandler) ListRelations(c *fiber.Ctx) error {
	out, err := h.uc.ListRelations(c.UserContext())
	if err != nil {
		return fail(c, err, productMaterialMessages, "Error al obtener los materiales de productos")
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener relación por ID
// @Description  Responde un arreglo de un elemento.
// @Tags         productsMaterials
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la relación"
// @Success      200  {array}  dto.ProductMaterialResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /productsMaterials/{id} [get]
func (h *ProductMaterialHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return fail(c, err, productMaterialMessages, "Error al obtener el material de producto")
	}
	if out == nil {
		return errorJSON(c, fiber.StatusNotFound, "NOT_FOUND", productMaterialMessages.notFound)
	}
	return c.JSON([]*dto.ProductMaterialResponse{out})
}

// Update godoc
// @Summary      Actualizar relación
// @Tags         productsMaterials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la relación"
// @Param        body  body  dto.UpdateProductMaterialRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.MessageResponse
// @Router       /productsMaterials/{id} [put]
func (h *ProductMaterialHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	var in dto.UpdateProductMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "INVALID_BODY", "Cuerpo inválido")
	}
	if err := h.uc.Update(c.UserContext(), id, in); err != nil {
		return fail(c, err, productMaterialMessages, "Error al actualizar el material de producto")
	}
	return messageJSON(c, fiber.StatusOK, "Material de producto actualizado exitosamente")
}

// Delete godoc
// @Summary      Eliminar relación
// @Tags         productsMaterials
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la relación"
// @Success      200  {object}  dto.MessageResponse
// @Router       /productsMaterials/{id} [delete]
func (h *ProductMaterialHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return fail(c, err, productMaterialMessages, "Error al eliminar el material de producto")
	}
	return messageJSON(c, fiber.StatusOK, "Material de producto eliminado exitosamente")
}
