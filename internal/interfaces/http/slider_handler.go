package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/neryad/piki-backend/internal/application/dto"
	"github.com/neryad/piki-backend/internal/application/usecase"
)

// SliderHandler banners de portada. Lectura pública; escritura protegida.
type SliderHandler struct {
	uc *usecase.SliderUseCase
}

func NewSliderHandler(uc *usecase.SliderUseCase) *SliderHandler {
	return &SliderHandler{uc: uc}
}

// Create godoc
// @Summary      Crear slider
// @Tags         sliders
// @Security     Bearer
// @Accept       json,mpfd
// @Produce      json
// @Param        body   body      dto.CreateSliderRequest  true   "link"
// @Param        image  formData  file                     false  "Imagen del banner"
// @Success      201    {object}  dto.MessageResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /sliders [post]
func (h *SliderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSliderRequest
	if isMultipart(c) {
		in.Link = c.FormValue("link")
		in.ImageURL = formString(c, "imageUrl")
		active, err := formBool(c, "isActive")
		if err != nil {
			return errorJSON(c, fiber.StatusBadRequest, "INVALID_BODY", sliderMessages.missing)
		}
		in.IsActive = active
	} else if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "INVALID_BODY", sliderMessages.missing)
	}
	img, release, err := formImage(c)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "INVALID_IMAGE", "No se pudo leer la imagen")
	}
	defer release()
	if _, err := h.uc.Create(c.UserContext(), in, img); err != nil {
		return fail(c, err, sliderMessages, "Error al crear el slider")
	}
	return messageJSON(c, fiber.StatusCreated, "Slider creado exitosamente")
}

// List godoc
// @Summary      Listar sliders activos
// @Tags         sliders
// @Produce      json
// @Success      200  {array}  dto.SliderResponse
// @Router       /sliders [get]
func (h *SliderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListActive(c.UserContext())
	if err != nil {
		return fail(c, err, sliderMessages, "Error al obtener los sliders")
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener slider por ID
// @Tags         sliders
// @Produce      json
// @Param        id   path  int  true  "ID del slider"
// @Success      200  {object}  dto.SliderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /sliders/{id} [get]
func (h *SliderHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return fail(c, err, sliderMessages, "Error al obtener el slider")
	}
	if out == nil {
		return errorJSON(c, fiber.StatusNotFound, "NOT_FOUND", sliderMessages.notFound)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar slider
// @Tags         sliders
// @Security     Bearer
// @Accept       json,mpfd
// @Produce      json
// @Param        id     path      int                      true   "ID del slider"
// @Param        body   body      dto.UpdateSliderRequest  true   "Campos a actualizar"
// @Param        image  formData  file                     false  "Imagen nueva"
// @Success      200    {object}  dto.MessageResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /sliders/{id} [put]
func (h *SliderHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	var in dto.UpdateSliderRequest
	if isMultipart(c) {
		in.Link = formString(c, "link")
		in.ImageURL = formString(c, "imageUrl")
		active, err := formBool(c, "isActive")
		if err != nil {
			return errorJSON(c, fiber.StatusBadRequest, "INVALID_BODY", "Cuerpo inválido")
		}
		in.IsActive = active
	} else if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "INVALID_BODY", "Cuerpo inválido")
	}
	img, release, err := formImage(c)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "INVALID_IMAGE", "No se pudo leer la imagen")
	}
	defer release()
	if err := h.uc.Update(c.UserContext(), id, in, img); err != nil {
		return fail(c, err, sliderMessages, "Error al actualizar el slider")
	}
	return messageJSON(c, fiber.StatusOK, "Slider actualizado exitosamente")
}

// Delete godoc
// @Summary      Eliminar slider
// @Tags         sliders
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del slider"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /sliders/{id} [delete]
func (h *SliderHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return fail(c, err, sliderMessages, "Error al eliminar el slider")
	}
	return messageJSON(c, fiber.StatusOK, "Slider eliminado exitosamente")
}
