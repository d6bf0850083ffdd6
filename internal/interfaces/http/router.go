package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stockmaster/inventory-api/internal/application/auth"
	"github.com/stockmaster/inventory-api/internal/application/inventory"
	"github.com/stockmaster/inventory-api/internal/application/usecase"
	"github.com/stockmaster/inventory-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	WarehouseUC  *usecase.WarehouseUseCase
	ProductUC    *usecase.ProductUseCase
	StockQueryUC *usecase.StockQueryUseCase
	DocumentUC   *inventory.DocumentUseCase
	AdjustmentUC *inventory.AdjustmentUseCase
	LedgerUC     *inventory.LedgerUseCase
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Warehouses (protegido; escritura solo manager)
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", RequireRole(entity.RoleManager), warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", RequireRole(entity.RoleManager), warehouseHandler.Update)

	// Products (protegido; escritura solo manager)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", RequireRole(entity.RoleManager), productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", RequireRole(entity.RoleManager), productHandler.Update)

	// Documentos de inventario: un grupo por tipo sobre el mismo motor.
	registerDocumentRoutes(protected.Group("/receipts"), NewDocumentHandler(deps.DocumentUC, entity.DocumentKindReceipt))
	registerDocumentRoutes(protected.Group("/deliveries"), NewDocumentHandler(deps.DocumentUC, entity.DocumentKindDelivery))
	registerDocumentRoutes(protected.Group("/transfers"), NewDocumentHandler(deps.DocumentUC, entity.DocumentKindTransfer))

	// Adjustments (protegido, solo manager: saltan el ciclo de documento)
	adjustments := protected.Group("/adjustments", RequireRole(entity.RoleManager))
	adjustmentHandler := NewAdjustmentHandler(deps.AdjustmentUC)
	adjustments.Post("/", adjustmentHandler.Create)
	adjustments.Get("/", adjustmentHandler.List)
	adjustments.Get("/:id", adjustmentHandler.GetByID)

	// Stock (protegido; el alcance por bodega lo decide la ViewPolicy)
	stock := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockQueryUC)
	stock.Get("/warehouses/:id", stockHandler.ListByWarehouse)
	stock.Get("/products/:id", stockHandler.ListByProduct)

	// Ledger (protegido, solo lectura)
	ledger := protected.Group("/ledger")
	ledgerHandler := NewLedgerHandler(deps.LedgerUC)
	ledger.Get("/", ledgerHandler.List)
	ledger.Get("/products/:id", ledgerHandler.ListByProduct)
	ledger.Get("/warehouses/:id", ledgerHandler.ListByWarehouse)
}

func registerDocumentRoutes(g fiber.Router, h *DocumentHandler) {
	g.Post("/", h.Create)
	g.Get("/", h.List)
	g.Get("/:id", h.GetByID)
	g.Post("/:id/items", h.AddItem)
	g.Delete("/:id/items/:itemId", h.RemoveItem)
	g.Patch("/:id/status", h.UpdateStatus)
	g.Post("/:id/validate", h.Validate)
}
