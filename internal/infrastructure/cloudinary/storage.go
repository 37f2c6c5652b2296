package cloudinary

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/neryad/piki-backend/internal/application/ports"
	"github.com/neryad/piki-backend/pkg/config"
)

var _ ports.ImageStorage = (*Storage)(nil)

// Storage guarda las imágenes de productos y sliders en Cloudinary, dentro de una carpeta fija.
type Storage struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// New construye el cliente con las credenciales de configuración.
func New(cfg config.CloudinaryConfig) (*Storage, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary: %w", err)
	}
	return &Storage{cld: cld, folder: cfg.Folder}, nil
}

// Upload sube la imagen con un public id aleatorio y devuelve su URL https.
func (s *Storage) Upload(ctx context.Context, img ports.Image) (string, error) {
	res, err := s.cld.Upload.Upload(ctx, img.Content, uploader.UploadParams{
		Folder:   s.folder,
		PublicID: uuid.NewString(),
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload %q: %w", img.Filename, err)
	}
	if res.Error.Message != "" {
		return "", fmt.Errorf("cloudinary upload %q: %s", img.Filename, res.Error.Message)
	}
	return res.SecureURL, nil
}

// Delete elimina la imagen identificada por su URL pública.
// Una imagen que ya no existe en Cloudinary no es un error. Una URL vacía o que no es
// de entrega de Cloudinary (cargada a mano en imageUrl) no tiene nada que borrar.
func (s *Storage) Delete(ctx context.Context, imageURL string) error {
	if strings.TrimSpace(imageURL) == "" {
		return nil
	}
	publicID, err := PublicID(imageURL)
	if err != nil {
		log.Warn().Err(err).Str("image_url", imageURL).Msg("imagen externa, no se borra de cloudinary")
		return nil
	}
	res, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("cloudinary destroy %q: %w", publicID, err)
	}
	if res.Error.Message != "" {
		return fmt.Errorf("cloudinary destroy %q: %s", publicID, res.Error.Message)
	}
	return nil
}

// PublicID extrae el public id (carpeta incluida, sin versión ni extensión) de una URL de entrega:
// https://res.cloudinary.com/<cloud>/image/upload/v123/piki-photos/abc.jpg -> piki-photos/abc
func PublicID(imageURL string) (string, error) {
	u, err := url.Parse(imageURL)
	if err != nil {
		return "", fmt.Errorf("cloudinary: url inválida: %w", err)
	}
	_, rest, ok := strings.Cut(u.Path, "/upload/")
	if !ok || rest == "" {
		return "", errors.New("cloudinary: la url no es de entrega (falta /upload/)")
	}
	parts := strings.Split(rest, "/")
	if len(parts) > 1 && isVersion(parts[0]) {
		parts = parts[1:]
	}
	id := strings.Join(parts, "/")
	id = strings.TrimSuffix(id, path.Ext(id))
	if id == "" {
		return "", errors.New("cloudinary: public id vacío")
	}
	return id, nil
}

func isVersion(seg string) bool {
	if len(seg) < 2 || seg[0] != 'v' {
		return false
	}
	for _, r := range seg[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
