package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/neryad/piki-backend/internal/application/dto"
	"github.com/neryad/piki-backend/internal/application/usecase"
)

// MaterialHandler CRUD de materias primas (protegido).
type MaterialHandler struct {
	uc *usecase.MaterialUseCase
}

func NewMaterialHandler(uc *usecase.MaterialUseCase) *MaterialHandler {
	return &MaterialHandler{uc: uc}
}

// Create godoc
// @Summary      Crear material
// @Tags         materials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMaterialRequest  true  "Datos del material"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /materials [post]
func (h *MaterialHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "INVALID_BODY", materialMessages.missing)
	}
	if _, err := h.uc.Create(c.UserContext(), in); err != nil {
		return fail(c, err, materialMessages, "Error al crear el material")
	}
	return messageJSON(c, fiber.StatusCreated, "Material creado exitosamente")
}

// List godoc
// @Summary      Listar materiales
// @Tags         materials
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MaterialResponse
// @Router       /materials [get]
func (h *MaterialHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return fail(c, err, materialMessages, "Error al obtener los materiales")
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener material por ID
// @Description  Responde un arreglo de un elemento.
// @Tags         materials
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del material"
// @Success      200  {array}  dto.MaterialResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /materials/{id} [get]
func (h *MaterialHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return fail(c, err, materialMessages, "Error al obtener el material")
	}
	if out == nil {
		return errorJSON(c, fiber.StatusNotFound, "NOT_FOUND", materialMessages.notFound)
	}
	return c.JSON([]*dto.MaterialResponse{out})
}

// Update godoc
// @Summary      Actualizar material
// @Tags         materials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del material"
// @Param        body  body  dto.UpdateMaterialRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.MessageResponse
// @Router       /materials/{id} [put]
func (h *MaterialHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	var in dto.UpdateMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "INVALID_BODY", "Cuerpo inválido")
	}
	if err := h.uc.Update(c.UserContext(), id, in); err != nil {
		return fail(c, err, materialMessages, "Error al actualizar el material")
	}
	return messageJSON(c, fiber.StatusOK, "Material actualizado exitosamente")
}

// Delete godoc
// @Summary      Eliminar material
// @Tags         materials
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del material"
// @Success      200  {object}  dto.MessageResponse
// @Router       /materials/{id} [delete]
func (h *MaterialHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return fail(c, err, materialMessages, "Error al eliminar el material")
	}
	return messageJSON(c, fiber.StatusOK, "Material eliminado exitosamente")
}
