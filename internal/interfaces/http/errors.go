package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/neryad/piki-backend/internal/application/dto"
	"github.com/neryad/piki-backend/internal/domain"
)

// entityMessages textos fijos de error de una entidad, en el formato que esperan los clientes.
type entityMessages struct {
	missing  string // 400 por campos obligatorios
	notFound string // 404
}

var (
	userMessages            = entityMessages{missing: "Todos los campos son obligatorios", notFound: "Usuario no encontrado"}
	roleMessages            = entityMessages{missing: "Todos los campos son obligatorios", notFound: "Rol no encontrado"}
	supplierMessages        = entityMessages{missing: "Todos los campos son obligatorios", notFound: "Suplidor no encontrado"}
	materialMessages        = entityMessages{missing: "Todos los campos son obligatorios", notFound: "Material no encontrado"}
	productMessages         = entityMessages{missing: "Todos los campos son obligatorios", notFound: "Producto no encontrado"}
	productMaterialMessages = entityMessages{missing: "Faltan datos obligatorios.", notFound: "Material de producto no encontrado"}
	sliderMessages          = entityMessages{missing: "Faltan datos obligatorios.", notFound: "Slider no encontrado"}
)

func errorJSON(c *fiber.Ctx, status int, code, msg string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Error: msg, Code: code})
}

func messageJSON(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(dto.MessageResponse{Message: msg})
}

// fail traduce un error de caso de uso a la respuesta HTTP. Lo que no es un error de dominio
// se registra con el id de la petición y se responde 500 con el mensaje genérico internal.
func fail(c *fiber.Ctx, err error, m entityMessages, internal string) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return errorJSON(c, fiber.StatusBadRequest, "VALIDATION", m.missing)
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return errorJSON(c, fiber.StatusNotFound, "NOT_FOUND", m.notFound)
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return errorJSON(c, fiber.StatusBadRequest, "EMAIL_EXISTS", "El email ya está registrado")
	case errors.Is(err, domain.ErrDuplicate):
		return errorJSON(c, fiber.StatusBadRequest, "DUPLICATE", "El registro ya existe")
	case errors.Is(err, domain.ErrForeignKey):
		return errorJSON(c, fiber.StatusBadRequest, "FOREIGN_KEY", "El registro hace referencia a datos inexistentes o está en uso")
	}
	RequestLogger(c).Error().Err(err).Str("path", c.Path()).Msg(internal)
	return errorJSON(c, fiber.StatusInternalServerError, "INTERNAL", internal)
}

// ErrorHandler es el manejador de errores de Fiber: rutas inexistentes responden
// {"error":"Not found"} y cualquier otro error escapado de un handler, 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		if fe.Code == fiber.StatusNotFound {
			return errorJSON(c, fiber.StatusNotFound, "", "Not found")
		}
		return errorJSON(c, fe.Code, "", fe.Message)
	}
	RequestLogger(c).Error().Err(err).Str("path", c.Path()).Msg("error no controlado")
	return errorJSON(c, fiber.StatusInternalServerError, "INTERNAL", "Error interno del servidor")
}
