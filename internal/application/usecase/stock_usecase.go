package usecase

import (
	"github.com/stockmaster/inventory-api/internal/application/dto"
	"github.com/stockmaster/inventory-api/internal/domain"
	"github.com/stockmaster/inventory-api/internal/domain/entity"
	"github.com/stockmaster/inventory-api/internal/domain/repository"
)

// ViewPolicy decide qué bodegas puede consultar un usuario. Dos
// implementaciones: vista de manager (todas) y vista de staff (solo la
// asignada). Se elige por rol en vez de ramificar inline en cada consulta.
type ViewPolicy interface {
	// ScopeWarehouse resuelve la bodega efectiva de la consulta. Devuelve
	// ErrForbidden si el usuario no puede ver la bodega pedida.
	ScopeWarehouse(requested string) (string, error)
}

// ManagerView acceso a todas las bodegas.
type ManagerView struct{}

// ScopeWarehouse el manager consulta cualquier bodega (o todas si no filtra).
func (ManagerView) ScopeWarehouse(requested string) (string, error) {
	return requested, nil
}

// StaffView acceso limitado a la bodega asignada del usuario.
type StaffView struct {
	WarehouseID string
}

// ScopeWarehouse el staff siempre queda acotado a su bodega.
func (v StaffView) ScopeWarehouse(requested string) (string, error) {
	if requested != "" && requested != v.WarehouseID {
		return "", domain.ErrForbidden
	}
	return v.WarehouseID, nil
}

// PolicyForRole selecciona la vista según el rol del usuario autenticado.
func PolicyForRole(role, userWarehouseID string) ViewPolicy {
	if role == entity.RoleManager {
		return ManagerView{}
	}
	return StaffView{WarehouseID: userWarehouseID}
}

// StockQueryUseCase consultas de solo lectura sobre niveles de stock.
type StockQueryUseCase struct {
	stockRepo     repository.StockLevelRepository
	warehouseRepo repository.WarehouseRepository
}

// NewStockQueryUseCase construye el caso de uso.
func NewStockQueryUseCase(stockRepo repository.StockLevelRepository, warehouseRepo repository.WarehouseRepository) *StockQueryUseCase {
	return &StockQueryUseCase{stockRepo: stockRepo, warehouseRepo: warehouseRepo}
}

// ListByWarehouse niveles de una bodega, acotados por la política de vista.
func (uc *StockQueryUseCase) ListByWarehouse(policy ViewPolicy, warehouseID string, page dto.PageRequest) ([]*dto.StockLevelResponse, error) {
	scoped, err := policy.ScopeWarehouse(warehouseID)
	if err != nil {
		return nil, err
	}
	if scoped == "" {
		return nil, domain.ErrInvalidInput
	}
	wh, err := uc.warehouseRepo.GetByID(scoped)
	if err != nil {
		return nil, err
	}
	if wh == nil {
		return nil, domain.ErrNotFound
	}
	page.DefaultPage()
	levels, err := uc.stockRepo.ListByWarehouse(scoped, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toStockResponses(levels), nil
}

// ListByProduct niveles de un producto en todas las bodegas visibles.
func (uc *StockQueryUseCase) ListByProduct(policy ViewPolicy, productID string) ([]*dto.StockLevelResponse, error) {
	levels, err := uc.stockRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	scoped, err := policy.ScopeWarehouse("")
	if err != nil {
		return nil, err
	}
	if scoped != "" {
		filtered := levels[:0]
		for _, lvl := range levels {
			if lvl.WarehouseID == scoped {
				filtered = append(filtered, lvl)
			}
		}
		levels = filtered
	}
	return toStockResponses(levels), nil
}

func toStockResponses(levels []*entity.StockLevel) []*dto.StockLevelResponse {
	out := make([]*dto.StockLevelResponse, 0, len(levels))
	for _, lvl := range levels {
		out = append(out, &dto.StockLevelResponse{
			ProductID:   lvl.ProductID,
			WarehouseID: lvl.WarehouseID,
			Quantity:    lvl.Quantity,
			UpdatedAt:   lvl.UpdatedAt,
		})
	}
	return out
}
