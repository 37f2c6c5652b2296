package ports

import (
	"context"
	"io"
)

// Image archivo recibido en una petición multipart.
type Image struct {
	Filename string
	Content  io.Reader
}

// ImageStorage define el puerto de salida hacia el almacenamiento de imágenes.
// La aplicación solo conoce este contrato, no el proveedor concreto.
type ImageStorage interface {
	// Upload sube la imagen y devuelve su URL pública (https).
	Upload(ctx context.Context, img Image) (string, error)
	// Delete elimina la imagen identificada por su URL pública.
	Delete(ctx context.Context, url string) error
}
