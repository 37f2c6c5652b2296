package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidCredentials = errors.New("contraseña / usuario no válido")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrForeignKey         = errors.New("referencia a un recurso inexistente")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrStorage            = errors.New("fallo en el almacenamiento de imágenes")
)
