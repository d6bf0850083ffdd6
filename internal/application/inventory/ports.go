package inventory

import (
	"context"

	"github.com/stockmaster/inventory-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Es el límite de atomicidad explícito del
// motor: toda mutación de stock + ledger + estado ocurre dentro de Run o
// RunAdjustment, y un error del callback revierte todo.
type TxRunner interface {
	// Run transacción para validar documentos.
	Run(ctx context.Context, fn func(
		docRepo repository.DocumentRepository,
		stockRepo repository.StockLevelRepository,
		ledgerRepo repository.LedgerRepository,
	) error) error

	// RunAdjustment transacción para ajustes manuales.
	RunAdjustment(ctx context.Context, fn func(
		stockRepo repository.StockLevelRepository,
		ledgerRepo repository.LedgerRepository,
		adjRepo repository.AdjustmentRepository,
	) error) error
}
