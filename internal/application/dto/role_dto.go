package dto

// RoleRequest alta o actualización de un rol.
type RoleRequest struct {
	Name string `json:"name" validate:"required"`
}

// RoleResponse salida de un rol.
type RoleResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
