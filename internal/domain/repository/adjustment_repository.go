package repository

import "github.com/stockmaster/inventory-api/internal/domain/entity"

// AdjustmentFilter filtros para listar ajustes.
type AdjustmentFilter struct {
	WarehouseID string
	ProductID   string
	Limit       int
	Offset      int
}

// AdjustmentRepository puerto de persistencia para ajustes manuales de stock.
// Registros write-once: solo Create y lecturas.
type AdjustmentRepository interface {
	Create(adj *entity.Adjustment) error
	GetByID(id string) (*entity.Adjustment, error)
	List(filter AdjustmentFilter) ([]*entity.Adjustment, error)
}
