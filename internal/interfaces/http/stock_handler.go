package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stockmaster/inventory-api/internal/application/dto"
	"github.com/stockmaster/inventory-api/internal/application/usecase"
)

// StockHandler consultas de niveles de stock. El alcance por bodega lo decide
// la ViewPolicy derivada del rol del token: manager ve todo, staff solo su
// bodega asignada.
type StockHandler struct {
	uc *usecase.StockQueryUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *usecase.StockQueryUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// ListByWarehouse godoc
// @Summary      Niveles de stock de una bodega
// @Description  Staff solo puede consultar su bodega asignada; manager
// @Description  cualquiera.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID de la bodega"
// @Param        limit   query  int     false  "paginación"
// @Param        offset  query  int     false  "paginación"
// @Success      200  {array}   dto.StockLevelResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/warehouses/{id} [get]
func (h *StockHandler) ListByWarehouse(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "query inválida")
	}
	policy := usecase.PolicyForRole(GetRole(c), GetWarehouseID(c))
	levels, err := h.uc.ListByWarehouse(policy, c.Params("id"), page)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(levels)
}

// ListByProduct godoc
// @Summary      Niveles de stock de un producto
// @Description  Devuelve el nivel por bodega; staff solo ve su bodega.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {array}  dto.StockLevelResponse
// @Router       /api/stock/products/{id} [get]
func (h *StockHandler) ListByProduct(c *fiber.Ctx) error {
	policy := usecase.PolicyForRole(GetRole(c), GetWarehouseID(c))
	levels, err := h.uc.ListByProduct(policy, c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(levels)
}
