package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/stockmaster/inventory-api/internal/domain/entity"
	"github.com/stockmaster/inventory-api/internal/domain/repository"
)

var _ repository.AdjustmentRepository = (*AdjustmentRepo)(nil)

// AdjustmentRepo implementación sobre PostgreSQL (usable con pool o tx).
// Registros write-once: no hay update ni delete.
type AdjustmentRepo struct {
	q Querier
}

// NewAdjustmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAdjustmentRepository(q Querier) *AdjustmentRepo {
	return &AdjustmentRepo{q: q}
}

// Create persiste un ajuste.
func (r *AdjustmentRepo) Create(adj *entity.Adjustment) error {
	query := `
		INSERT INTO adjustments (id, warehouse_id, product_id, prev_qty, new_qty, reason, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		adj.ID, adj.WarehouseID, adj.ProductID, adj.PrevQty, adj.NewQty,
		nullableString(adj.Reason), adj.CreatedBy, adj.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert adjustment: %w", err)
	}
	return nil
}

// GetByID obtiene un ajuste por ID, o nil si no existe.
func (r *AdjustmentRepo) GetByID(id string) (*entity.Adjustment, error) {
	query := `
		SELECT id, warehouse_id, product_id, prev_qty, new_qty, reason, created_by, created_at
		FROM adjustments WHERE id = $1`
	adj, err := scanAdjustment(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get adjustment: %w", err)
	}
	return adj, nil
}

// List lista ajustes por bodega y/o producto, más recientes primero.
func (r *AdjustmentRepo) List(filter repository.AdjustmentFilter) ([]*entity.Adjustment, error) {
	query := `
		SELECT id, warehouse_id, product_id, prev_qty, new_qty, reason, created_by, created_at
		FROM adjustments WHERE 1=1`
	var args []any
	pos := 1
	if filter.WarehouseID != "" {
		query += fmt.Sprintf(" AND warehouse_id = $%d", pos)
		args = append(args, filter.WarehouseID)
		pos++
	}
	if filter.ProductID != "" {
		query += fmt.Sprintf(" AND product_id = $%d", pos)
		args = append(args, filter.ProductID)
		pos++
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, filter.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list adjustments: %w", err)
	}
	defer rows.Close()

	var list []*entity.Adjustment
	for rows.Next() {
		adj, err := scanAdjustment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan adjustment: %w", err)
		}
		list = append(list, adj)
	}
	return list, rows.Err()
}

func scanAdjustment(row pgx.Row) (*entity.Adjustment, error) {
	var a entity.Adjustment
	var reason *string
	err := row.Scan(&a.ID, &a.WarehouseID, &a.ProductID, &a.PrevQty, &a.NewQty, &reason, &a.CreatedBy, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	if reason != nil {
		a.Reason = *reason
	}
	return &a, nil
}
