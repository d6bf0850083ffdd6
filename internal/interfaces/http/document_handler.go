package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stockmaster/inventory-api/internal/application/dto"
	"github.com/stockmaster/inventory-api/internal/application/inventory"
	"github.com/stockmaster/inventory-api/internal/domain/entity"
	"github.com/stockmaster/inventory-api/internal/domain/repository"
)

// DocumentHandler maneja las peticiones HTTP de documentos de inventario.
// Se instancia una vez por tipo (receipts, deliveries, transfers) sobre el
// mismo motor.
type DocumentHandler struct {
	uc   *inventory.DocumentUseCase
	kind string
}

// NewDocumentHandler construye el handler para un tipo de documento.
func NewDocumentHandler(uc *inventory.DocumentUseCase, kind string) *DocumentHandler {
	return &DocumentHandler{uc: uc, kind: kind}
}

// Create godoc
// @Summary      Crear borrador de documento
// @Tags         documents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDocumentRequest  true  "warehouse_id (RECEIPT/DELIVERY) o from/to (TRANSFER)"
// @Success      201   {object}  dto.DocumentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/receipts [post]
func (h *DocumentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	doc, err := h.uc.CreateDraft(c.Context(), inventory.CreateDocumentInput{
		Kind:            h.kind,
		WarehouseID:     in.WarehouseID,
		FromWarehouseID: in.FromWarehouseID,
		ToWarehouseID:   in.ToWarehouseID,
		SupplierName:    in.SupplierName,
		CustomerName:    in.CustomerName,
		UserID:          GetUserID(c),
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toDocumentResponse(doc))
}

// GetByID godoc
// @Summary      Obtener documento con sus líneas
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del documento"
// @Success      200  {object}  dto.DocumentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/receipts/{id} [get]
func (h *DocumentHandler) GetByID(c *fiber.Ctx) error {
	doc, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(toDocumentResponse(doc))
}

// List godoc
// @Summary      Listar documentos por estado/bodega
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        status        query  string  false  "DRAFT, WAITING, READY, DONE, CANCELED"
// @Param        warehouse_id  query  string  false  "filtra por bodega (origen o destino)"
// @Success      200  {array}  dto.DocumentResponse
// @Router       /api/receipts [get]
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "query inválida")
	}
	page.DefaultPage()
	docs, err := h.uc.List(c.Context(), repository.DocumentFilter{
		Kind:        h.kind,
		Status:      c.Query("status"),
		WarehouseID: c.Query("warehouse_id"),
		Limit:       page.Limit,
		Offset:      page.Offset,
	})
	if err != nil {
		return errorResponse(c, err)
	}
	out := make([]*dto.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, toDocumentResponse(d))
	}
	return c.JSON(out)
}

// AddItem godoc
// @Summary      Agregar línea a un documento DRAFT
// @Tags         documents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "ID del documento"
// @Param        body  body  dto.AddItemRequest  true  "product_id, quantity > 0"
// @Success      201   {object}  dto.DocumentItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/receipts/{id}/items [post]
func (h *DocumentHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if err := dto.Validate(in); err != nil {
		return badRequest(c, err.Error())
	}
	item, err := h.uc.AddItem(c.Context(), c.Params("id"), in.ProductID, in.Quantity)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.DocumentItemResponse{
		ID:        item.ID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
	})
}

// RemoveItem godoc
// @Summary      Quitar línea de un documento DRAFT
// @Tags         documents
// @Security     Bearer
// @Param        id      path  string  true  "ID del documento"
// @Param        itemId  path  string  true  "ID de la línea"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/receipts/{id}/items/{itemId} [delete]
func (h *DocumentHandler) RemoveItem(c *fiber.Ctx) error {
	if err := h.uc.RemoveItem(c.Context(), c.Params("id"), c.Params("itemId")); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateStatus godoc
// @Summary      Transición genérica de estado (sin efectos de stock)
// @Description  Avanza la máquina de estados; DONE no es alcanzable por este
// @Description  camino, solo vía validate.
// @Tags         documents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del documento"
// @Param        body  body  dto.UpdateStatusRequest  true  "nuevo estado"
// @Success      200   {object}  dto.DocumentResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/receipts/{id}/status [patch]
func (h *DocumentHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if err := dto.Validate(in); err != nil {
		return badRequest(c, err.Error())
	}
	doc, err := h.uc.UpdateStatus(c.Context(), c.Params("id"), in.Status)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(toDocumentResponse(doc))
}

// Validate godoc
// @Summary      Validar documento READY
// @Description  Aplica los efectos de stock, asienta el ledger y marca DONE
// @Description  en una sola transacción.
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del documento"
// @Success      200  {object}  dto.DocumentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/receipts/{id}/validate [post]
func (h *DocumentHandler) Validate(c *fiber.Ctx) error {
	doc, err := h.uc.Validate(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(toDocumentResponse(doc))
}

func toDocumentResponse(d *entity.Document) *dto.DocumentResponse {
	items := make([]dto.DocumentItemResponse, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, dto.DocumentItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		})
	}
	return &dto.DocumentResponse{
		ID:              d.ID,
		Kind:            d.Kind,
		Status:          d.Status,
		WarehouseID:     d.WarehouseID,
		FromWarehouseID: d.FromWarehouseID,
		ToWarehouseID:   d.ToWarehouseID,
		SupplierName:    d.SupplierName,
		CustomerName:    d.CustomerName,
		CreatedBy:       d.CreatedBy,
		CreatedAt:       d.CreatedAt,
		Items:           items,
	}
}
