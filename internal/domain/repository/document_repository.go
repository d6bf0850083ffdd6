package repository

import "github.com/stockmaster/inventory-api/internal/domain/entity"

// DocumentFilter filtros para listar documentos.
type DocumentFilter struct {
	Kind        string
	Status      string
	WarehouseID string // matchea warehouse_id, from_warehouse_id o to_warehouse_id
	Limit       int
	Offset      int
}

// DocumentRepository puerto de persistencia para documentos de inventario
// (recepciones, entregas y traslados) y sus líneas.
type DocumentRepository interface {
	Create(doc *entity.Document) error

	// GetByID devuelve el documento con sus ítems cargados, o nil si no existe.
	GetByID(id string) (*entity.Document, error)

	// UpdateStatus cambia el estado sin condición previa (la validación de la
	// transición es responsabilidad del caso de uso).
	UpdateStatus(id, status string) error

	// MarkDone fija status = DONE solo si el documento sigue en READY.
	// Devuelve false si otra transacción lo movió antes (at-most-one-winner
	// para validaciones concurrentes del mismo documento).
	MarkDone(id string) (bool, error)

	AddItem(item *entity.DocumentItem) error

	// RemoveItem borra una línea del documento. Devuelve ErrNotFound si la
	// línea no existe o no pertenece al documento.
	RemoveItem(documentID, itemID string) error

	List(filter DocumentFilter) ([]*entity.Document, error)
}
