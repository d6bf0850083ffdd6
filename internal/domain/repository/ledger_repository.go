package repository

import (
	"time"

	"github.com/stockmaster/inventory-api/internal/domain/entity"
)

// LedgerFilter filtros de consulta del historial de movimientos.
// WarehouseID matchea tanto origen como destino.
type LedgerFilter struct {
	ProductID   string
	WarehouseID string
	Type        string
	From        *time.Time
	To          *time.Time
	Limit       int
}

// LedgerRepository puerto del ledger de stock. Append-only: no existen
// operaciones de update ni delete; el historial es inmutable.
type LedgerRepository interface {
	// Append inserta un asiento. Única operación de escritura.
	Append(entry *entity.LedgerEntry) error

	// List consulta asientos según filtros, más recientes primero.
	List(filter LedgerFilter) ([]*entity.LedgerEntry, error)
}
