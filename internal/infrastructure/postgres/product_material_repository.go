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

var _ repository.ProductMaterialRepository = (*ProductMaterialRepo)(nil)

const productMaterialColumns = `id, product_id, material_id, quantity_used, created_at`

// ProductMaterialRepo implementación del puerto ProductMaterialRepository sobre PostgreSQL.
type ProductMaterialRepo struct {
	q Querier
}

// NewProductMaterialRepository construye el adaptador de la relación producto-material.
func NewProductMaterialRepository(q Querier) *ProductMaterialRepo {
	return &ProductMaterialRepo{q: q}
}

// Create persiste la relación. Producto y material deben existir (FK).
func (r *ProductMaterialRepo) Create(ctx context.Context, pm *entity.ProductMaterial) error {
	query := `
		INSERT INTO products_materials (product_id, material_id, quantity_used, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, pm.ProductID, pm.MaterialID, pm.QuantityUsed, pm.CreatedAt).Scan(&pm.ID)
	if err != nil {
		return mapWriteError(err, "insert product material", domain.ErrDuplicate)
	}
	return nil
}

func (r *ProductMaterialRepo) GetByID(ctx context.Context, id int64) (*entity.ProductMaterial, error) {
	var pm entity.ProductMaterial
	err := r.q.QueryRow(ctx, `SELECT `+productMaterialColumns+` FROM products_materials WHERE id = $1`, id).
		Scan(&pm.ID, &pm.ProductID, &pm.MaterialID, &pm.QuantityUsed, &pm.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product material: %w", err)
	}
	return &pm, nil
}

func (r *ProductMaterialRepo) List(ctx context.Context) ([]*entity.ProductMaterial, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productMaterialColumns+` FROM products_materials ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list product materials: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.ProductMaterial, 0)
	for rows.Next() {
		var pm entity.ProductMaterial
		if err := rows.Scan(&pm.ID, &pm.ProductID, &pm.MaterialID, &pm.QuantityUsed, &pm.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product material: %w", err)
		}
		list = append(list, &pm)
	}
	return list, rows.Err()
}

// ListRelations devuelve las relaciones con el nombre del producto y del material.
func (r *ProductMaterialRepo) ListRelations(ctx context.Context) ([]*entity.ProductMaterialRelation, error) {
	query := `
		SELECT pm.id, m.id, m.name, p.id, p.name, pm.quantity_used
		FROM products_materials pm
		JOIN materials m ON m.id = pm.material_id
		JOIN products p ON p.id = pm.product_id
		ORDER BY pm.id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list product material relations: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.ProductMaterialRelation, 0)
	for rows.Next() {
		var rel entity.ProductMaterialRelation
		if err := rows.Scan(&rel.ID, &rel.MaterialID, &rel.MaterialName, &rel.ProductID, &rel.ProductName, &rel.QuantityUsed); err != nil {
			return nil, fmt.Errorf("scan product material relation: %w", err)
		}
		list = append(list, &rel)
	}
	return list, rows.Err()
}

// BillOfMaterials devuelve los materiales que consume un producto con su costo unitario.
func (r *ProductMaterialRepo) BillOfMaterials(ctx context.Context, productID int64) ([]entity.BillOfMaterialsLine, error) {
	query := `
		SELECT m.id, m.name, pm.quantity_used, m.cost_by_unit
		FROM products_materials pm
		JOIN materials m ON m.id = pm.material_id
		WHERE pm.product_id = $1
		ORDER BY m.name`
	rows, err := r.q.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("bill of materials: %w", err)
	}
	defer rows.Close()
	var lines []entity.BillOfMaterialsLine
	for rows.Next() {
		var l entity.BillOfMaterialsLine
		if err := rows.Scan(&l.MaterialID, &l.MaterialName, &l.QuantityUsed, &l.CostByUnit); err != nil {
			return nil, fmt.Errorf("scan bill of materials: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func (r *ProductMaterialRepo) Update(ctx context.Context, id int64, c entity.ProductMaterialChanges) error {
	query := `
		UPDATE products_materials SET
			product_id = COALESCE($2, product_id),
			material_id = COALESCE($3, material_id),
			quantity_used = COALESCE($4, quantity_used)
		WHERE id = $1`
	if _, err := r.q.Exec(ctx, query, id, c.ProductID, c.MaterialID, c.QuantityUsed); err != nil {
		return mapWriteError(err, "update product material", domain.ErrDuplicate)
	}
	return nil
}

func (r *ProductMaterialRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM products_materials WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete product material: %w", err)
	}
	return nil
}
