package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stockmaster/inventory-api/internal/domain"
	"github.com/stockmaster/inventory-api/internal/domain/document"
	"github.com/stockmaster/inventory-api/internal/domain/entity"
	"github.com/stockmaster/inventory-api/internal/domain/repository"
)

// DocumentUseCase es el motor de documentos de inventario: crea borradores,
// maneja líneas, avanza la máquina de estados y ejecuta la validación
// transaccional (stock + ledger + DONE como unidad atómica).
//
// Es el único componente autorizado a mutar StockLevel y a llevar un
// documento a DONE.
type DocumentUseCase struct {
	txRunner      TxRunner
	docRepo       repository.DocumentRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewDocumentUseCase construye el motor.
func NewDocumentUseCase(
	txRunner TxRunner,
	docRepo repository.DocumentRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *DocumentUseCase {
	return &DocumentUseCase{
		txRunner:      txRunner,
		docRepo:       docRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
	}
}

// CreateDocumentInput entrada para crear un borrador.
// RECEIPT/DELIVERY usan WarehouseID; TRANSFER usa From/To (distintas).
type CreateDocumentInput struct {
	Kind            string
	WarehouseID     string
	FromWarehouseID string
	ToWarehouseID   string
	SupplierName    string
	CustomerName    string
	UserID          string
}

// CreateDraft crea un documento en DRAFT, sin ítems.
func (uc *DocumentUseCase) CreateDraft(ctx context.Context, in CreateDocumentInput) (*entity.Document, error) {
	switch in.Kind {
	case entity.DocumentKindReceipt, entity.DocumentKindDelivery:
		if in.WarehouseID == "" {
			return nil, domain.ErrInvalidInput
		}
		wh, err := uc.warehouseRepo.GetByID(in.WarehouseID)
		if err != nil {
			return nil, err
		}
		if wh == nil {
			return nil, domain.ErrNotFound
		}
	case entity.DocumentKindTransfer:
		if in.FromWarehouseID == "" || in.ToWarehouseID == "" || in.FromWarehouseID == in.ToWarehouseID {
			return nil, domain.ErrInvalidInput
		}
		fromWh, err := uc.warehouseRepo.GetByID(in.FromWarehouseID)
		if err != nil {
			return nil, err
		}
		toWh, err := uc.warehouseRepo.GetByID(in.ToWarehouseID)
		if err != nil {
			return nil, err
		}
		if fromWh == nil || toWh == nil {
			return nil, domain.ErrNotFound
		}
	default:
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	doc := &entity.Document{
		ID:              uuid.New().String(),
		Kind:            in.Kind,
		Status:          entity.StatusDraft,
		WarehouseID:     in.WarehouseID,
		FromWarehouseID: in.FromWarehouseID,
		ToWarehouseID:   in.ToWarehouseID,
		SupplierName:    in.SupplierName,
		CustomerName:    in.CustomerName,
		CreatedBy:       in.UserID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.docRepo.Create(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// AddItem agrega una línea a un documento en DRAFT. El producto debe existir.
func (uc *DocumentUseCase) AddItem(ctx context.Context, documentID, productID string, quantity int64) (*entity.DocumentItem, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	doc, err := uc.docRepo.GetByID(documentID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	if doc.Status != entity.StatusDraft {
		return nil, domain.ErrInvalidState
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	item := &entity.DocumentItem{
		ID:         uuid.New().String(),
		DocumentID: documentID,
		ProductID:  productID,
		Quantity:   quantity,
		CreatedAt:  time.Now(),
	}
	if err := uc.docRepo.AddItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

// RemoveItem elimina una línea de un documento en DRAFT.
func (uc *DocumentUseCase) RemoveItem(ctx context.Context, documentID, itemID string) error {
	doc, err := uc.docRepo.GetByID(documentID)
	if err != nil {
		return err
	}
	if doc == nil {
		return domain.ErrNotFound
	}
	if doc.Status != entity.StatusDraft {
		return domain.ErrInvalidState
	}
	return uc.docRepo.RemoveItem(documentID, itemID)
}

// UpdateStatus avanza la máquina de estados sin tocar stock (camino genérico:
// DRAFT→WAITING, WAITING→READY, cualquiera→CANCELED). El destino DONE está
// vetado aquí: solo Validate puede llevar un documento a DONE, porque es
// quien aplica los efectos de stock. Pedir DONE por este camino retorna
// ErrInvalidTransition aunque la tabla permita READY→DONE.
func (uc *DocumentUseCase) UpdateStatus(ctx context.Context, documentID, newStatus string) (*entity.Document, error) {
	doc, err := uc.docRepo.GetByID(documentID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	if newStatus == entity.StatusDone {
		return nil, domain.ErrInvalidTransition
	}
	if err := document.ValidateTransition(doc.Status, newStatus); err != nil {
		return nil, err
	}
	if err := uc.docRepo.UpdateStatus(documentID, newStatus); err != nil {
		return nil, err
	}
	doc.Status = newStatus
	return doc, nil
}

// GetByID devuelve un documento con sus ítems.
func (uc *DocumentUseCase) GetByID(ctx context.Context, documentID string) (*entity.Document, error) {
	doc, err := uc.docRepo.GetByID(documentID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	return doc, nil
}

// List lista documentos por tipo/estado/bodega.
func (uc *DocumentUseCase) List(ctx context.Context, filter repository.DocumentFilter) ([]*entity.Document, error) {
	return uc.docRepo.List(filter)
}
