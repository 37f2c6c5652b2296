package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/neryad/piki-backend/internal/domain/entity"
	"github.com/neryad/piki-backend/internal/domain/repository"
)

var _ repository.SliderRepository = (*SliderRepo)(nil)

const sliderColumns = `id, image_url, link, is_active, created_at`

// SliderRepo implementación del puerto SliderRepository sobre PostgreSQL.
type SliderRepo struct {
	q Querier
}

// NewSliderRepository construye el adaptador de persistencia para sliders.
func NewSliderRepository(q Querier) *SliderRepo {
	return &SliderRepo{q: q}
}

func (r *SliderRepo) Create(ctx context.Context, s *entity.Slider) error {
	query := `
		INSERT INTO sliders (image_url, link, is_active, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	if err := r.q.QueryRow(ctx, query, s.ImageURL, s.Link, s.IsActive, s.CreatedAt).Scan(&s.ID); err != nil {
		return fmt.Errorf("insert slider: %w", err)
	}
	return nil
}

func (r *SliderRepo) GetByID(ctx context.Context, id int64) (*entity.Slider, error) {
	var s entity.Slider
	err := r.q.QueryRow(ctx, `SELECT `+sliderColumns+` FROM sliders WHERE id = $1`, id).
		Scan(&s.ID, &s.ImageURL, &s.Link, &s.IsActive, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get slider: %w", err)
	}
	return &s, nil
}

func (r *SliderRepo) GetImageURL(ctx context.Context, id int64) (*string, bool, error) {
	var url *string
	err := r.q.QueryRow(ctx, `SELECT image_url FROM sliders WHERE id = $1`, id).Scan(&url)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get slider image: %w", err)
	}
	return url, true, nil
}

// ListActive devuelve solo los sliders activos (portada).
func (r *SliderRepo) ListActive(ctx context.Context) ([]*entity.Slider, error) {
	rows, err := r.q.Query(ctx, `SELECT `+sliderColumns+` FROM sliders WHERE is_active = TRUE ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list sliders: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Slider, 0)
	for rows.Next() {
		var s entity.Slider
		if err := rows.Scan(&s.ID, &s.ImageURL, &s.Link, &s.IsActive, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan slider: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

func (r *SliderRepo) Update(ctx context.Context, id int64, c entity.SliderChanges) error {
	query := `
		UPDATE sliders SET
			image_url = COALESCE($2, image_url),
			link = COALESCE($3, link),
			is_active = COALESCE($4, is_active)
		WHERE id = $1`
	if _, err := r.q.Exec(ctx, query, id, c.ImageURL, c.Link, c.IsActive); err != nil {
		return fmt.Errorf("update slider: %w", err)
	}
	return nil
}

func (r *SliderRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM sliders WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete slider: %w", err)
	}
	return nil
}
