package inventory

import (
	"context"
	"time"

	"github.com/stockmaster/inventory-api/internal/domain"
	"github.com/stockmaster/inventory-api/internal/domain/entity"
	"github.com/stockmaster/inventory-api/internal/domain/repository"
)

// Validate finaliza un documento READY: aplica sus efectos de stock, agrega
// los asientos de ledger y lo marca DONE, todo dentro de una sola
// transacción. Si cualquier paso falla (por ejemplo ErrInsufficientStock en
// la segunda línea) no queda ningún efecto parcial.
func (uc *DocumentUseCase) Validate(ctx context.Context, documentID string) (*entity.Document, error) {
	doc, err := uc.docRepo.GetByID(documentID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	if doc.Status != entity.StatusReady {
		return nil, domain.ErrInvalidState
	}
	if len(doc.Items) == 0 {
		return nil, domain.ErrEmptyDocument
	}

	now := time.Now()
	err = uc.txRunner.Run(ctx, func(
		docRepo repository.DocumentRepository,
		stockRepo repository.StockLevelRepository,
		ledgerRepo repository.LedgerRepository,
	) error {
		// Marca DONE solo si sigue en READY: si una validación concurrente
		// del mismo documento ganó, esta pierde sin tocar stock.
		done, err := docRepo.MarkDone(documentID)
		if err != nil {
			return err
		}
		if !done {
			return domain.ErrInvalidState
		}

		switch doc.Kind {
		case entity.DocumentKindReceipt:
			return uc.applyReceipt(stockRepo, ledgerRepo, doc, now)
		case entity.DocumentKindDelivery:
			return uc.applyDelivery(stockRepo, ledgerRepo, doc, now)
		case entity.DocumentKindTransfer:
			return uc.applyTransfer(stockRepo, ledgerRepo, doc, now)
		}
		return domain.ErrInvalidInput
	})
	if err != nil {
		return nil, err
	}
	doc.Status = entity.StatusDone
	return doc, nil
}

// applyReceipt suma cada línea al stock de la bodega y asienta RECEIPT (destino).
func (uc *DocumentUseCase) applyReceipt(
	stockRepo repository.StockLevelRepository,
	ledgerRepo repository.LedgerRepository,
	doc *entity.Document,
	now time.Time,
) error {
	for _, item := range doc.Items {
		if err := stockRepo.AdjustBy(item.ProductID, doc.WarehouseID, item.Quantity); err != nil {
			return err
		}
		entry := &entity.LedgerEntry{
			ProductID:       item.ProductID,
			DestWarehouseID: doc.WarehouseID,
			Quantity:        item.Quantity,
			Type:            entity.LedgerTypeReceipt,
			ReferenceID:     doc.ID,
			Timestamp:       now,
		}
		if err := ledgerRepo.Append(entry); err != nil {
			return err
		}
	}
	return nil
}

// applyDelivery verifica disponibilidad de TODAS las líneas antes de restar
// nada (fail-fast, sin mutación parcial). Las filas quedan bloqueadas
// (SELECT FOR UPDATE) entre la verificación y el decremento. La verificación
// es por total agregado por producto: si varias líneas repiten el mismo
// producto, el sobregiro sale como ErrInsufficientStock y no como violación
// de CHECK del storage.
func (uc *DocumentUseCase) applyDelivery(
	stockRepo repository.StockLevelRepository,
	ledgerRepo repository.LedgerRepository,
	doc *entity.Document,
	now time.Time,
) error {
	for productID, required := range requiredByProduct(doc.Items) {
		if err := ensureAvailable(stockRepo, productID, doc.WarehouseID, required); err != nil {
			return err
		}
	}
	for _, item := range doc.Items {
		if err := stockRepo.AdjustBy(item.ProductID, doc.WarehouseID, -item.Quantity); err != nil {
			return err
		}
		entry := &entity.LedgerEntry{
			ProductID:         item.ProductID,
			SourceWarehouseID: doc.WarehouseID,
			Quantity:          item.Quantity,
			Type:              entity.LedgerTypeDelivery,
			ReferenceID:       doc.ID,
			Timestamp:         now,
		}
		if err := ledgerRepo.Append(entry); err != nil {
			return err
		}
	}
	return nil
}

// applyTransfer verifica disponibilidad en la bodega origen (agregada por
// producto, igual que applyDelivery), resta en origen y suma en destino,
// asentando TRANSFER_OUT y TRANSFER_IN por línea.
func (uc *DocumentUseCase) applyTransfer(
	stockRepo repository.StockLevelRepository,
	ledgerRepo repository.LedgerRepository,
	doc *entity.Document,
	now time.Time,
) error {
	for productID, required := range requiredByProduct(doc.Items) {
		if err := ensureAvailable(stockRepo, productID, doc.FromWarehouseID, required); err != nil {
			return err
		}
	}
	for _, item := range doc.Items {
		if err := stockRepo.AdjustBy(item.ProductID, doc.FromWarehouseID, -item.Quantity); err != nil {
			return err
		}
		if err := stockRepo.AdjustBy(item.ProductID, doc.ToWarehouseID, item.Quantity); err != nil {
			return err
		}
		outEntry := &entity.LedgerEntry{
			ProductID:         item.ProductID,
			SourceWarehouseID: doc.FromWarehouseID,
			Quantity:          item.Quantity,
			Type:              entity.LedgerTypeTransferOut,
			ReferenceID:       doc.ID,
			Timestamp:         now,
		}
		if err := ledgerRepo.Append(outEntry); err != nil {
			return err
		}
		inEntry := &entity.LedgerEntry{
			ProductID:       item.ProductID,
			DestWarehouseID: doc.ToWarehouseID,
			Quantity:        item.Quantity,
			Type:            entity.LedgerTypeTransferIn,
			ReferenceID:     doc.ID,
			Timestamp:       now,
		}
		if err := ledgerRepo.Append(inEntry); err != nil {
			return err
		}
	}
	return nil
}

// requiredByProduct suma las cantidades de las líneas por producto.
func requiredByProduct(items []entity.DocumentItem) map[string]int64 {
	totals := make(map[string]int64, len(items))
	for _, item := range items {
		totals[item.ProductID] += item.Quantity
	}
	return totals
}

// ensureAvailable bloquea la fila de stock y verifica que alcance para la
// cantidad requerida. Debe ejecutarse en la misma transacción que luego
// decrementa, para que no haya carrera check-then-act con otros validadores.
func ensureAvailable(stockRepo repository.StockLevelRepository, productID, warehouseID string, required int64) error {
	stock, err := stockRepo.GetForUpdate(productID, warehouseID)
	if err != nil {
		return err
	}
	if stock.Quantity < required {
		return domain.ErrInsufficientStock
	}
	return nil
}
