package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/stockmaster/inventory-api/internal/application/dto"
	"github.com/stockmaster/inventory-api/internal/application/inventory"
	"github.com/stockmaster/inventory-api/internal/domain/entity"
	"github.com/stockmaster/inventory-api/internal/domain/repository"
)

// LedgerHandler expone el historial de movimientos (solo lectura).
type LedgerHandler struct {
	uc *inventory.LedgerUseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(uc *inventory.LedgerUseCase) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

// List godoc
// @Summary      Consultar el ledger de movimientos
// @Description  Historial inmutable de movimientos de stock, más recientes
// @Description  primero. Filtros opcionales por producto, bodega, tipo y
// @Description  rango de fechas (RFC 3339).
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        product_id    query  string  false  "filtrar por producto"
// @Param        warehouse_id  query  string  false  "bodega como origen o destino"
// @Param        type          query  string  false  "RECEIPT|DELIVERY|TRANSFER_OUT|TRANSFER_IN|ADJUSTMENT"
// @Param        from          query  string  false  "desde (RFC 3339)"
// @Param        to            query  string  false  "hasta (RFC 3339)"
// @Param        limit         query  int     false  "máximo de asientos (default 100)"
// @Success      200  {array}  dto.LedgerEntryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/ledger [get]
func (h *LedgerHandler) List(c *fiber.Ctx) error {
	filter, err := ledgerFilterFromQuery(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	entries, err := h.uc.List(c.Context(), filter)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(toLedgerResponses(entries))
}

// ListByProduct godoc
// @Summary      Historial de un producto
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {array}  dto.LedgerEntryResponse
// @Router       /api/ledger/products/{id} [get]
func (h *LedgerHandler) ListByProduct(c *fiber.Ctx) error {
	filter, err := ledgerFilterFromQuery(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	entries, err := h.uc.ListByProduct(c.Context(), c.Params("id"), filter)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(toLedgerResponses(entries))
}

// ListByWarehouse godoc
// @Summary      Historial de una bodega (origen o destino)
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la bodega"
// @Success      200  {array}  dto.LedgerEntryResponse
// @Router       /api/ledger/warehouses/{id} [get]
func (h *LedgerHandler) ListByWarehouse(c *fiber.Ctx) error {
	filter, err := ledgerFilterFromQuery(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	entries, err := h.uc.ListByWarehouse(c.Context(), c.Params("id"), filter)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(toLedgerResponses(entries))
}

func ledgerFilterFromQuery(c *fiber.Ctx) (repository.LedgerFilter, error) {
	filter := repository.LedgerFilter{
		ProductID:   c.Query("product_id"),
		WarehouseID: c.Query("warehouse_id"),
		Type:        c.Query("type"),
		Limit:       c.QueryInt("limit"),
	}
	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, err
		}
		filter.From = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, err
		}
		filter.To = &t
	}
	return filter, nil
}

func toLedgerResponses(entries []*entity.LedgerEntry) []*dto.LedgerEntryResponse {
	out := make([]*dto.LedgerEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, &dto.LedgerEntryResponse{
			ID:                e.ID,
			ProductID:         e.ProductID,
			SourceWarehouseID: e.SourceWarehouseID,
			DestWarehouseID:   e.DestWarehouseID,
			Quantity:          e.Quantity,
			Type:              e.Type,
			ReferenceID:       e.ReferenceID,
			Timestamp:         e.Timestamp,
		})
	}
	return out
}
