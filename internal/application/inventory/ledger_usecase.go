package inventory

import (
	"context"

	"github.com/stockmaster/inventory-api/internal/domain/entity"
	"github.com/stockmaster/inventory-api/internal/domain/repository"
)

// LedgerUseCase consultas de solo lectura sobre el historial de movimientos.
// No expone escrituras: los asientos solo nacen dentro de las transacciones
// del motor de documentos y de ajustes.
type LedgerUseCase struct {
	ledgerRepo repository.LedgerRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(ledgerRepo repository.LedgerRepository) *LedgerUseCase {
	return &LedgerUseCase{ledgerRepo: ledgerRepo}
}

// List consulta el ledger con filtros opcionales (producto, bodega, tipo,
// rango de fechas). Aplica un límite por defecto de 100.
func (uc *LedgerUseCase) List(ctx context.Context, filter repository.LedgerFilter) ([]*entity.LedgerEntry, error) {
	if filter.Limit <= 0 {
		filter.Limit = 100
	}
	return uc.ledgerRepo.List(filter)
}

// ListByProduct historial de un producto.
func (uc *LedgerUseCase) ListByProduct(ctx context.Context, productID string, filter repository.LedgerFilter) ([]*entity.LedgerEntry, error) {
	filter.ProductID = productID
	return uc.List(ctx, filter)
}

// ListByWarehouse historial de una bodega (como origen o destino).
func (uc *LedgerUseCase) ListByWarehouse(ctx context.Context, warehouseID string, filter repository.LedgerFilter) ([]*entity.LedgerEntry, error) {
	filter.WarehouseID = warehouseID
	return uc.List(ctx, filter)
}
