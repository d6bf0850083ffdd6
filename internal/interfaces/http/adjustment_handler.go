package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stockmaster/inventory-api/internal/application/dto"
	"github.com/stockmaster/inventory-api/internal/application/inventory"
	"github.com/stockmaster/inventory-api/internal/domain/entity"
	"github.com/stockmaster/inventory-api/internal/domain/repository"
)

// AdjustmentHandler maneja los ajustes manuales de stock (protegido).
type AdjustmentHandler struct {
	uc *inventory.AdjustmentUseCase
}

// NewAdjustmentHandler construye el handler.
func NewAdjustmentHandler(uc *inventory.AdjustmentUseCase) *AdjustmentHandler {
	return &AdjustmentHandler{uc: uc}
}

// Create godoc
// @Summary      Aplicar ajuste manual de stock
// @Description  Fija el nivel en new_qty de inmediato (sin fase DRAFT) y
// @Description  asienta el ajuste en el ledger.
// @Tags         adjustments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAdjustmentRequest  true  "warehouse_id, product_id, new_qty, reason"
// @Success      201   {object}  dto.AdjustmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/adjustments [post]
func (h *AdjustmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if err := dto.Validate(in); err != nil {
		return badRequest(c, err.Error())
	}
	adj, err := h.uc.Apply(c.Context(), in.WarehouseID, in.ProductID, in.NewQty, in.Reason, GetUserID(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toAdjustmentResponse(adj))
}

// GetByID godoc
// @Summary      Obtener un ajuste
// @Tags         adjustments
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del ajuste"
// @Success      200  {object}  dto.AdjustmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/adjustments/{id} [get]
func (h *AdjustmentHandler) GetByID(c *fiber.Ctx) error {
	adj, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(toAdjustmentResponse(adj))
}

// List godoc
// @Summary      Listar ajustes
// @Tags         adjustments
// @Security     Bearer
// @Produce      json
// @Param        warehouse_id  query  string  false  "filtrar por bodega"
// @Param        product_id    query  string  false  "filtrar por producto"
// @Success      200  {array}  dto.AdjustmentResponse
// @Router       /api/adjustments [get]
func (h *AdjustmentHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "query inválida")
	}
	page.DefaultPage()
	list, err := h.uc.List(c.Context(), repository.AdjustmentFilter{
		WarehouseID: c.Query("warehouse_id"),
		ProductID:   c.Query("product_id"),
		Limit:       page.Limit,
		Offset:      page.Offset,
	})
	if err != nil {
		return errorResponse(c, err)
	}
	out := make([]*dto.AdjustmentResponse, 0, len(list))
	for _, adj := range list {
		out = append(out, toAdjustmentResponse(adj))
	}
	return c.JSON(out)
}

func toAdjustmentResponse(a *entity.Adjustment) *dto.AdjustmentResponse {
	return &dto.AdjustmentResponse{
		ID:          a.ID,
		WarehouseID: a.WarehouseID,
		ProductID:   a.ProductID,
		PrevQty:     a.PrevQty,
		NewQty:      a.NewQty,
		Reason:      a.Reason,
		CreatedBy:   a.CreatedBy,
		CreatedAt:   a.CreatedAt,
	}
}
