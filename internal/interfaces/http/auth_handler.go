package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/neryad/piki-backend/internal/application/auth"
	"github.com/neryad/piki-backend/internal/application/dto"
	"github.com/neryad/piki-backend/internal/domain"
)

// AuthHandler maneja login y renovación de token.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "INVALID_BODY", "Email y contraseña son obligatorios")
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return errorJSON(c, fiber.StatusBadRequest, "VALIDATION", "Email y contraseña son obligatorios")
		case errors.Is(err, domain.ErrUserNotFound):
			return errorJSON(c, fiber.StatusNotFound, "USER_NOT_FOUND", "Usuario no encontrado")
		case errors.Is(err, domain.ErrInvalidCredentials):
			return errorJSON(c, fiber.StatusBadRequest, "INVALID_CREDENTIALS", "Contraseña / Usuario no valido")
		}
		RequestLogger(c).Error().Err(err).Msg("login")
		return errorJSON(c, fiber.StatusInternalServerError, "INTERNAL", "Error al hacer login")
	}
	return c.JSON(out)
}

// Refresh godoc
// @Summary      Renovar token
// @Description  Emite un token nuevo con los datos del token presentado. La expiración nueva siempre es posterior.
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RefreshResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	out, err := h.uc.Refresh(GetClaims(c))
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return errorJSON(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "Token inválido")
		}
		RequestLogger(c).Error().Err(err).Msg("refresh")
		return errorJSON(c, fiber.StatusInternalServerError, "INTERNAL", "Error al renovar el token")
	}
	return c.JSON(out)
}
