package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/stockmaster/inventory-api/internal/domain"
	"github.com/stockmaster/inventory-api/internal/domain/entity"
	"github.com/stockmaster/inventory-api/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo implementación de DocumentRepository sobre PostgreSQL
// (usable con pool o tx). Documentos y líneas viven en documents y
// document_items.
type DocumentRepo struct {
	q Querier
}

// NewDocumentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

// Create persiste la cabecera de un documento.
func (r *DocumentRepo) Create(doc *entity.Document) error {
	query := `
		INSERT INTO documents (id, kind, status, warehouse_id, from_warehouse_id, to_warehouse_id,
			supplier_name, customer_name, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		doc.ID, doc.Kind, doc.Status,
		nullableString(doc.WarehouseID), nullableString(doc.FromWarehouseID), nullableString(doc.ToWarehouseID),
		nullableString(doc.SupplierName), nullableString(doc.CustomerName),
		doc.CreatedBy, doc.CreatedAt, doc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

// GetByID devuelve el documento con sus ítems, o nil si no existe.
func (r *DocumentRepo) GetByID(id string) (*entity.Document, error) {
	query := `
		SELECT id, kind, status, warehouse_id, from_warehouse_id, to_warehouse_id,
			supplier_name, customer_name, created_by, created_at, updated_at
		FROM documents WHERE id = $1`
	doc, err := r.scanDocument(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	items, err := r.listItems(id)
	if err != nil {
		return nil, err
	}
	doc.Items = items
	return doc, nil
}

// UpdateStatus cambia el estado (la transición ya fue validada por el caso de uso).
func (r *DocumentRepo) UpdateStatus(id, status string) error {
	query := `UPDATE documents SET status = $2, updated_at = now() WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, id, status)
	if err != nil {
		return fmt.Errorf("update document status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MarkDone fija DONE solo si el documento sigue en READY; devuelve false si
// otra transacción lo movió primero.
func (r *DocumentRepo) MarkDone(id string) (bool, error) {
	query := `
		UPDATE documents SET status = $2, updated_at = now()
		WHERE id = $1 AND status = $3`
	cmd, err := r.q.Exec(context.Background(), query, id, entity.StatusDone, entity.StatusReady)
	if err != nil {
		return false, fmt.Errorf("mark document done: %w", err)
	}
	return cmd.RowsAffected() == 1, nil
}

// AddItem inserta una línea.
func (r *DocumentRepo) AddItem(item *entity.DocumentItem) error {
	query := `
		INSERT INTO document_items (id, document_id, product_id, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.DocumentID, item.ProductID, item.Quantity, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert document item: %w", err)
	}
	return nil
}

// RemoveItem borra una línea; ErrNotFound si no existe o no es del documento.
func (r *DocumentRepo) RemoveItem(documentID, itemID string) error {
	query := `DELETE FROM document_items WHERE id = $1 AND document_id = $2`
	cmd, err := r.q.Exec(context.Background(), query, itemID, documentID)
	if err != nil {
		return fmt.Errorf("delete document item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista documentos por tipo/estado/bodega, más recientes primero, con ítems.
func (r *DocumentRepo) List(filter repository.DocumentFilter) ([]*entity.Document, error) {
	query := `
		SELECT id, kind, status, warehouse_id, from_warehouse_id, to_warehouse_id,
			supplier_name, customer_name, created_by, created_at, updated_at
		FROM documents WHERE 1=1`
	var args []any
	pos := 1
	if filter.Kind != "" {
		query += fmt.Sprintf(" AND kind = $%d", pos)
		args = append(args, filter.Kind)
		pos++
	}
	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, filter.Status)
		pos++
	}
	if filter.WarehouseID != "" {
		query += fmt.Sprintf(" AND (warehouse_id = $%d OR from_warehouse_id = $%d OR to_warehouse_id = $%d)", pos, pos, pos)
		args = append(args, filter.WarehouseID)
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
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var list []*entity.Document
	for rows.Next() {
		doc, err := r.scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		list = append(list, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, doc := range list {
		items, err := r.listItems(doc.ID)
		if err != nil {
			return nil, err
		}
		doc.Items = items
	}
	return list, nil
}

func (r *DocumentRepo) listItems(documentID string) ([]entity.DocumentItem, error) {
	query := `
		SELECT id, document_id, product_id, quantity, created_at
		FROM document_items WHERE document_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, documentID)
	if err != nil {
		return nil, fmt.Errorf("list document items: %w", err)
	}
	defer rows.Close()
	var items []entity.DocumentItem
	for rows.Next() {
		var it entity.DocumentItem
		if err := rows.Scan(&it.ID, &it.DocumentID, &it.ProductID, &it.Quantity, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan document item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *DocumentRepo) scanDocument(row pgx.Row) (*entity.Document, error) {
	var d entity.Document
	var warehouseID, fromID, toID, supplier, customer *string
	err := row.Scan(&d.ID, &d.Kind, &d.Status, &warehouseID, &fromID, &toID,
		&supplier, &customer, &d.CreatedBy, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if warehouseID != nil {
		d.WarehouseID = *warehouseID
	}
	if fromID != nil {
		d.FromWarehouseID = *fromID
	}
	if toID != nil {
		d.ToWarehouseID = *toID
	}
	if supplier != nil {
		d.SupplierName = *supplier
	}
	if customer != nil {
		d.CustomerName = *customer
	}
	return &d, nil
}
