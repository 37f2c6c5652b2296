package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/neryad/piki-backend/internal/application/ports"
)

// paramID lee el parámetro :id como entero positivo.
func paramID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func invalidID(c *fiber.Ctx) error {
	return errorJSON(c, fiber.StatusBadRequest, "INVALID_ID", "id inválido")
}

func isMultipart(c *fiber.Ctx) bool {
	return strings.HasPrefix(string(c.Request().Header.ContentType()), fiber.MIMEMultipartForm)
}

// ── campos de formularios multipart ──────────────────────────────────────────
// Un campo ausente o vacío devuelve nil; un valor que no se puede convertir es un error.

func formString(c *fiber.Ctx, key string) *string {
	v := c.FormValue(key)
	if v == "" {
		return nil
	}
	return &v
}

func formDecimal(c *fiber.Ctx, key string) (*decimal.Decimal, error) {
	v := c.FormValue(key)
	if v == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func formInt(c *fiber.Ctx, key string) (*int64, error) {
	v := c.FormValue(key)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func formBool(c *fiber.Ctx, key string) (*bool, error) {
	v := c.FormValue(key)
	if v == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// formImage abre el archivo "image" si viene en la petición. El llamador debe invocar
// release cuando el caso de uso termine de leerlo.
func formImage(c *fiber.Ctx) (img *ports.Image, release func(), err error) {
	release = func() {}
	if !isMultipart(c) {
		return nil, release, nil
	}
	fh, err := c.FormFile("image")
	if err != nil {
		// sin archivo no es un error: la imagen es opcional
		return nil, release, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, release, err
	}
	return &ports.Image{Filename: fh.Filename, Content: f}, func() { _ = f.Close() }, nil
}
