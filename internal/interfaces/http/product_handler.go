package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/neryad/piki-backend/internal/application/dto"
	"github.com/neryad/piki-backend/internal/application/usecase"
	"github.com/neryad/piki-backend/internal/domain"
)

// ProductHandler CRUD de productos. Lectura pública; escritura protegida.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Crear producto
// @Description  Acepta JSON o multipart/form-data con el archivo en el campo "image".
// @Tags         products
// @Security     Bearer
// @Accept       json,mpfd
// @Produce      json
// @Param        body   body      dto.CreateProductRequest  true   "Datos del producto"
// @Param        image  formData  file                      false  "Imagen del producto"
// @Success      201    {object}  dto.MessageResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	in, err := parseCreateProduct(c)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "INVALID_BODY", productMessages.missing)
	}
	img, release, err := formImage(c)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "INVALID_IMAGE", "No se pudo leer la imagen")
	}
	defer release()
	if _, err := h.uc.Create(c.UserContext(), in, img); err != nil {
		return fail(c, err, productMessages, "Error al crear el producto")
	}
	return messageJSON(c, fiber.StatusCreated, "Producto creado exitosamente")
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return fail(c, err, productMessages, "Error al obtener los productos")
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return fail(c, err, productMessages, "Error al obtener el producto")
	}
	if out == nil {
		return errorJSON(c, fiber.StatusNotFound, "NOT_FOUND", productMessages.notFound)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar producto
// @Description  Con una imagen nueva se sube primero, luego se borra la anterior.
// @Tags         products
// @Security     Bearer
// @Accept       json,mpfd
// @Produce      json
// @Param        id     path      int                       true   "ID del producto"
// @Param        body   body      dto.UpdateProductRequest  true   "Campos a actualizar"
// @Param        image  formData  file                      false  "Imagen nueva"
// @Success      200    {object}  dto.MessageResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	in, err := parseUpdateProduct(c)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "INVALID_BODY", "Cuerpo inválido")
	}
	img, release, err := formImage(c)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "INVALID_IMAGE", "No se pudo leer la imagen")
	}
	defer release()
	if err := h.uc.Update(c.UserContext(), id, in, img); err != nil {
		return fail(c, err, productMessages, "Error al actualizar el producto")
	}
	return messageJSON(c, fiber.StatusOK, "Producto actualizado exitosamente")
}

// Delete godoc
// @Summary      Eliminar producto
// @Description  Borra también su imagen del almacenamiento, si tiene.
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return fail(c, err, productMessages, "Error al eliminar el producto")
	}
	return messageJSON(c, fiber.StatusOK, "Producto eliminado exitosamente")
}

// BillOfMaterialsPDF godoc
// @Summary      Ficha de costos en PDF
// @Description  Lista de materiales del producto con costo unitario, subtotal y total.
// @Tags         products
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/{id}/materials/pdf [get]
func (h *ProductHandler) BillOfMaterialsPDF(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	pdf, err := h.uc.BillOfMaterialsPDF(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errorJSON(c, fiber.StatusNotFound, "NOT_FOUND", productMessages.notFound)
		}
		return fail(c, err, productMessages, "Error al generar la ficha de costos")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="producto-%d-materiales.pdf"`, id))
	return c.Send(pdf)
}

func parseCreateProduct(c *fiber.Ctx) (dto.CreateProductRequest, error) {
	var in dto.CreateProductRequest
	if !isMultipart(c) {
		err := c.BodyParser(&in)
		return in, err
	}
	in.Name = c.FormValue("name")
	in.Description = c.FormValue("description")
	price, err := formDecimal(c, "price")
	if err != nil {
		return in, err
	}
	if price != nil {
		in.Price = *price
	}
	stock, err := formInt(c, "stock")
	if err != nil {
		return in, err
	}
	if stock != nil {
		in.Stock = *stock
	}
	if in.IsAvailable, err = formBool(c, "isAvailable"); err != nil {
		return in, err
	}
	if in.OfferPrice, err = formDecimal(c, "offerPrice"); err != nil {
		return in, err
	}
	in.ImageURL = formString(c, "imageUrl")
	return in, nil
}

func parseUpdateProduct(c *fiber.Ctx) (dto.UpdateProductRequest, error) {
	var in dto.UpdateProductRequest
	if !isMultipart(c) {
		err := c.BodyParser(&in)
		return in, err
	}
	var err error
	in.Name = formString(c, "name")
	in.Description = formString(c, "description")
	if in.Price, err = formDecimal(c, "price"); err != nil {
		return in, err
	}
	if in.Stock, err = formInt(c, "stock"); err != nil {
		return in, err
	}
	if in.IsAvailable, err = formBool(c, "isAvailable"); err != nil {
		return in, err
	}
	if in.OfferPrice, err = formDecimal(c, "offerPrice"); err != nil {
		return in, err
	}
	in.ImageURL = formString(c, "imageUrl")
	return in, nil
}
