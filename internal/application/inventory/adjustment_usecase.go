package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stockmaster/inventory-api/internal/domain"
	"github.com/stockmaster/inventory-api/internal/domain/entity"
	"github.com/stockmaster/inventory-api/internal/domain/repository"
)

// AdjustmentUseCase aplica correcciones manuales de stock fuera del flujo de
// documentos: sin fase DRAFT, el ajuste se aplica de inmediato en una sola
// transacción (nuevo nivel + registro de ajuste + asiento de ledger).
type AdjustmentUseCase struct {
	txRunner      TxRunner
	adjRepo       repository.AdjustmentRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewAdjustmentUseCase construye el caso de uso.
func NewAdjustmentUseCase(
	txRunner TxRunner,
	adjRepo repository.AdjustmentRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *AdjustmentUseCase {
	return &AdjustmentUseCase{
		txRunner:      txRunner,
		adjRepo:       adjRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
	}
}

// Apply fija el stock de (producto, bodega) en newQty y deja rastro:
// registro Adjustment {prevQty, newQty, reason} más un asiento ADJUSTMENT
// en el ledger con quantity = |newQty - prevQty| y siempre bodega destino.
// El asiento no codifica el signo del cambio; para distinguir subida de
// bajada hay que cruzar con el registro Adjustment (convención histórica
// que los reportes aguas abajo ya asumen).
func (uc *AdjustmentUseCase) Apply(ctx context.Context, warehouseID, productID string, newQty int64, reason, userID string) (*entity.Adjustment, error) {
	if newQty < 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	warehouse, err := uc.warehouseRepo.GetByID(warehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	adjustment := &entity.Adjustment{
		ID:          uuid.New().String(),
		WarehouseID: warehouseID,
		ProductID:   productID,
		NewQty:      newQty,
		Reason:      reason,
		CreatedBy:   userID,
		CreatedAt:   now,
	}

	err = uc.txRunner.RunAdjustment(ctx, func(
		stockRepo repository.StockLevelRepository,
		ledgerRepo repository.LedgerRepository,
		adjRepo repository.AdjustmentRepository,
	) error {
		// Garantiza la fila y la bloquea: prevQty se lee bajo lock para que
		// ajustes y validaciones concurrentes no pisen la lectura.
		if _, err := stockRepo.GetOrCreate(productID, warehouseID); err != nil {
			return err
		}
		stock, err := stockRepo.GetForUpdate(productID, warehouseID)
		if err != nil {
			return err
		}
		adjustment.PrevQty = stock.Quantity

		if err := stockRepo.SetQuantity(productID, warehouseID, newQty); err != nil {
			return err
		}
		if err := adjRepo.Create(adjustment); err != nil {
			return err
		}

		delta := adjustment.Delta()
		if delta < 0 {
			delta = -delta
		}
		entry := &entity.LedgerEntry{
			ProductID:       productID,
			DestWarehouseID: warehouseID,
			Quantity:        delta,
			Type:            entity.LedgerTypeAdjustment,
			ReferenceID:     adjustment.ID,
			Timestamp:       now,
		}
		return ledgerRepo.Append(entry)
	})
	if err != nil {
		return nil, err
	}
	return adjustment, nil
}

// GetByID devuelve un ajuste por ID.
func (uc *AdjustmentUseCase) GetByID(ctx context.Context, id string) (*entity.Adjustment, error) {
	adj, err := uc.adjRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if adj == nil {
		return nil, domain.ErrNotFound
	}
	return adj, nil
}

// List lista ajustes por bodega y/o producto.
func (uc *AdjustmentUseCase) List(ctx context.Context, filter repository.AdjustmentFilter) ([]*entity.Adjustment, error) {
	return uc.adjRepo.List(filter)
}
