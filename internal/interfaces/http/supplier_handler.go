package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/neryad/piki-backend/internal/application/dto"
	"github.com/neryad/piki-backend/internal/application/usecase"
)

// SupplierHandler CRUD de suplidores (protegido).
type SupplierHandler struct {
	uc *usecase.SupplierUseCase
}

func NewSupplierHandler(uc *usecase.SupplierUseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

// Create godoc
// @Summary      Crear suplidor
// @Tags         suppliers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSupplierRequest  true  "Datos del suplidor"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /suppliers [post]
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "INVALID_BODY", supplierMessages.missing)
	}
	if _, err := h.uc.Create(c.UserContext(), in); err != nil {
		return fail(c, err, supplierMessages, "Error al crear el suplidor")
	}
	return messageJSON(c, fiber.StatusCreated, "Suplidor creado exitosamente")
}

// List godoc
// @Summary      Listar suplidores
// @Tags         suppliers
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SupplierResponse
// @Router       /suppliers/allUsers [get]
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return fail(c, err, supplierMessages, "Error al obtener los suplidores")
	}
	return c.JSON(out)
}

// GetByEmail godoc
// @Summary      Buscar suplidor por email
// @Tags         suppliers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EmailRequest  true  "email"
// @Success      200   {object}  dto.SupplierResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /suppliers/userByEmail [post]
func (h *SupplierHandler) GetByEmail(c *fiber.Ctx) error {
	var in dto.EmailRequest
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "INVALID_BODY", supplierMessages.missing)
	}
	out, err := h.uc.GetByEmail(c.UserContext(), in)
	if err != nil {
		return fail(c, err, supplierMessages, "Error al obtener el suplidor")
	}
	if out == nil {
		return errorJSON(c, fiber.StatusNotFound, "NOT_FOUND", supplierMessages.notFound)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener suplidor por ID
// @Description  Responde un arreglo de un elemento, como los clientes existentes esperan.
// @Tags         suppliers
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del suplidor"
// @Success      200  {array}  dto.SupplierResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /suppliers/{id} [get]
func (h *SupplierHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return fail(c, err, supplierMessages, "Error al obtener el suplidor")
	}
	if out == nil {
		return errorJSON(c, fiber.StatusNotFound, "NOT_FOUND", supplierMessages.notFound)
	}
	return c.JSON([]*dto.SupplierResponse{out})
}

// Update godoc
// @Summary      Actualizar suplidor
// @Tags         suppliers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del suplidor"
// @Param        body  body  dto.UpdateSupplierRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.MessageResponse
// @Router       /suppliers/{id} [put]
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	var in dto.UpdateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "INVALID_BODY", "Cuerpo inválido")
	}
	if err := h.uc.Update(c.UserContext(), id, in); err != nil {
		return fail(c, err, supplierMessages, "Error al actualizar el suplidor")
	}
	return messageJSON(c, fiber.StatusOK, "Suplidor actualizado exitosamente")
}

// Delete godoc
// @Summary      Eliminar suplidor
// @Tags         suppliers
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del suplidor"
// @Success      200  {object}  dto.MessageResponse
// @Router       /suppliers/{id} [delete]
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return fail(c, err, supplierMessages, "Error al eliminar el suplidor")
	}
	return messageJSON(c, fiber.StatusOK, "Suplidor eliminado exitosamente")
}
