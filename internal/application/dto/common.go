package dto

// ErrorResponse cuerpo de error HTTP. Code es un identificador estable para el cliente.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// MessageResponse confirmación de una operación de escritura.
type MessageResponse struct {
	Message string `json:"message"`
}

// EmailRequest búsqueda por email (usuarios y proveedores).
type EmailRequest struct {
	Email string `json:"email" validate:"required"`
}
