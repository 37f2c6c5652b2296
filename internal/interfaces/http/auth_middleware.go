package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/neryad/piki-backend/pkg/jwt"
)

// LocalClaims key de Fiber locals donde queda el token decodificado.
const LocalClaims = "claims"

// AuthMiddleware valida el Bearer Token y deja los claims en c.Locals.
// Sin cabecera o sin token responde 403; un token que no verifica, 401.
func AuthMiddleware(codec *jwt.Codec) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c.Get(fiber.HeaderAuthorization))
		if token == "" {
			return errorJSON(c, fiber.StatusForbidden, "MISSING_TOKEN", "Token no proporcionado")
		}
		claims, err := codec.Verify(token)
		if err != nil {
			code := "INVALID_TOKEN"
			if errors.Is(err, jwt.ErrExpired) {
				code = "TOKEN_EXPIRED"
			}
			return errorJSON(c, fiber.StatusUnauthorized, code, "Token inválido")
		}
		c.Locals(LocalClaims, claims)
		return c.Next()
	}
}

// bearerToken acepta "Bearer <token>"; cualquier otra forma cuenta como token ausente.
func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// GetClaims devuelve los claims del token (después del middleware de auth).
func GetClaims(c *fiber.Ctx) *jwt.Claims {
	claims, _ := c.Locals(LocalClaims).(*jwt.Claims)
	return claims
}
