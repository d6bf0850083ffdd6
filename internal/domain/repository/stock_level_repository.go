package repository

import "github.com/stockmaster/inventory-api/internal/domain/entity"

// StockLevelRepository puerto de persistencia para niveles de stock.
// Las escrituras son exclusivas del motor de documentos y siempre ocurren
// dentro de una transacción (implementación atada a la tx vía Querier).
type StockLevelRepository interface {
	// Get devuelve el nivel actual; si la fila no existe devuelve una en 0
	// sin crearla.
	Get(productID, warehouseID string) (*entity.StockLevel, error)

	// GetOrCreate garantiza la fila (product, warehouse) con cantidad 0 si
	// no existía. Idempotente: llamadas concurrentes producen una sola fila.
	GetOrCreate(productID, warehouseID string) (*entity.StockLevel, error)

	// GetForUpdate lee el nivel bloqueando la fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetForUpdate(productID, warehouseID string) (*entity.StockLevel, error)

	// AdjustBy suma delta (con signo) de forma atómica en el storage,
	// creando la fila en 0 si no existía. El CHECK quantity >= 0 del
	// esquema es la última barrera contra negativos.
	AdjustBy(productID, warehouseID string, delta int64) error

	// SetQuantity fija la cantidad absoluta (solo ajustes manuales).
	SetQuantity(productID, warehouseID string, quantity int64) error

	// ListByWarehouse niveles de una bodega (para consulta de stock).
	ListByWarehouse(warehouseID string, limit, offset int) ([]*entity.StockLevel, error)

	// ListByProduct niveles de un producto en todas las bodegas.
	ListByProduct(productID string) ([]*entity.StockLevel, error)
}
