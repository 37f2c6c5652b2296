package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/neryad/piki-backend/internal/domain"
	"github.com/neryad/piki-backend/internal/domain/entity"
	"github.com/neryad/piki-backend/internal/domain/repository"
)

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

const materialColumns = `id, name, description, is_available, cost, date, supplier_id, quantity, quantity_by_unit, cost_by_unit, created_at`

// MaterialRepo implementación del puerto MaterialRepository sobre PostgreSQL.
type MaterialRepo struct {
	q Querier
}

// NewMaterialRepository construye el adaptador de persistencia para materiales.
func NewMaterialRepository(q Querier) *MaterialRepo {
	return &MaterialRepo{q: q}
}

// Create persiste un material. supplier_id debe existir (FK).
func (r *MaterialRepo) Create(ctx context.Context, m *entity.Material) error {
	query := `
		INSERT INTO materials (name, description, is_available, cost, date, supplier_id, quantity, quantity_by_unit, cost_by_unit, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		m.Name, m.Description, m.IsAvailable, m.Cost, m.Date, m.SupplierID,
		m.Quantity, m.QuantityByUnit, m.CostByUnit, m.CreatedAt,
	).Scan(&m.ID)
	if err != nil {
		return mapWriteError(err, "insert material", domain.ErrDuplicate)
	}
	return nil
}

func (r *MaterialRepo) GetByID(ctx context.Context, id int64) (*entity.Material, error) {
	m, err := scanMaterial(r.q.QueryRow(ctx, `SELECT `+materialColumns+` FROM materials WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get material: %w", err)
	}
	return m, nil
}

func (r *MaterialRepo) List(ctx context.Context) ([]*entity.Material, error) {
	rows, err := r.q.Query(ctx, `SELECT `+materialColumns+` FROM materials ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Material, 0)
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func (r *MaterialRepo) Update(ctx context.Context, id int64, c entity.MaterialChanges) error {
	query := `
		UPDATE materials SET
			name = COALESCE($2, name),
			description = COALESCE($3, description),
			is_available = COALESCE($4, is_available),
			cost = COALESCE($5, cost),
			date = COALESCE($6, date),
			supplier_id = COALESCE($7, supplier_id),
			quantity = COALESCE($8, quantity),
			quantity_by_unit = COALESCE($9, quantity_by_unit),
			cost_by_unit = COALESCE($10, cost_by_unit)
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, id,
		c.Name, c.Description, c.IsAvailable, c.Cost, c.Date, c.SupplierID,
		c.Quantity, c.QuantityByUnit, c.CostByUnit,
	)
	if err != nil {
		return mapWriteError(err, "update material", domain.ErrDuplicate)
	}
	return nil
}

func (r *MaterialRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM materials WHERE id = $1`, id); err != nil {
		return mapWriteError(err, "delete material", domain.ErrDuplicate)
	}
	return nil
}

func scanMaterial(row pgx.Row) (*entity.Material, error) {
	var m entity.Material
	err := row.Scan(&m.ID, &m.Name, &m.Description, &m.IsAvailable, &m.Cost, &m.Date, &m.SupplierID,
		&m.Quantity, &m.QuantityByUnit, &m.CostByUnit, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
