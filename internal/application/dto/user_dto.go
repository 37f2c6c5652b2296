package dto

import "time"

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	LastName string `json:"lastName" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	RoleID   int64  `json:"role_id" validate:"required"`
}

// UpdateUserRequest actualización parcial; nil = sin cambio.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	LastName *string `json:"lastName"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	RoleID   *int64  `json:"role_id"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	LastName  string    `json:"lastName"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	RoleID    int64     `json:"role_id"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginRequest credenciales de login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoggedUser usuario autenticado con su token.
type LoggedUser struct {
	UserResponse
	Token string `json:"token"`
}

// LoginResponse salida del login.
type LoginResponse struct {
	LoggedUser LoggedUser `json:"loggedUser"`
}

// RefreshResponse token renovado.
type RefreshResponse struct {
	Token string `json:"token"`
}
