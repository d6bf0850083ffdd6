// seed puebla la base de datos con datos de demostración: bodegas, usuarios
// (manager@stockmaster.com / staff@stockmaster.com), catálogo de productos,
// stock inicial vía ajustes y un par de documentos de ejemplo procesados por
// el motor (para que el ledger arranque con historial real).
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"os"

	"github.com/shopspring/decimal"

	"github.com/stockmaster/inventory-api/internal/application/auth"
	"github.com/stockmaster/inventory-api/internal/application/dto"
	"github.com/stockmaster/inventory-api/internal/application/inventory"
	"github.com/stockmaster/inventory-api/internal/application/usecase"
	"github.com/stockmaster/inventory-api/internal/domain/entity"
	"github.com/stockmaster/inventory-api/internal/infrastructure/postgres"
	"github.com/stockmaster/inventory-api/pkg/config"
	"github.com/stockmaster/inventory-api/pkg/logger"
)

type seedProduct struct {
	name     string
	sku      string
	category string
	uom      string
	price    string
	cost     string
}

var catalog = []seedProduct{
	{"Laptop Pro 15\"", "LAP-001", "Electronics", "Unit", "1499.99", "1100.00"},
	{"Wireless Mouse", "ACC-001", "Accessories", "Unit", "29.99", "12.50"},
	{"USB-C Cable", "CAB-001", "Accessories", "Unit", "14.99", "4.80"},
	{"Mechanical Keyboard", "KEY-001", "Accessories", "Unit", "89.99", "45.00"},
	{"27\" Monitor", "MON-001", "Electronics", "Unit", "329.99", "240.00"},
	{"Webcam HD", "CAM-001", "Electronics", "Unit", "59.99", "28.00"},
	{"Desk Chair Ergonomic", "FUR-001", "Furniture", "Unit", "249.99", "160.00"},
	{"Standing Desk", "FUR-002", "Furniture", "Unit", "499.99", "320.00"},
	{"Notebook A4", "OFF-001", "Office Supplies", "Pack", "6.99", "2.10"},
	{"Pen Set", "OFF-002", "Office Supplies", "Set", "9.99", "3.40"},
	{"Printer Paper", "OFF-003", "Office Supplies", "Ream", "7.49", "3.00"},
	{"Stapler", "OFF-004", "Office Supplies", "Unit", "12.99", "5.20"},
	{"Coffee Maker", "BRK-001", "Break Room", "Unit", "79.99", "48.00"},
	{"Water Bottle", "BRK-002", "Break Room", "Unit", "19.99", "7.50"},
	{"Headphones Wireless", "ACC-002", "Accessories", "Unit", "129.99", "72.00"},
}

// stock inicial por (índice de producto en catalog, índice de bodega).
var openingStock = []struct {
	product   int
	warehouse int
	qty       int64
}{
	{0, 0, 50}, {1, 0, 200}, {2, 0, 150}, {3, 0, 75}, {4, 0, 30},
	{5, 0, 100}, {6, 0, 25}, {7, 0, 15}, {8, 0, 500}, {9, 0, 300},
	{10, 0, 200}, {11, 0, 50}, {12, 0, 5}, {13, 0, 8}, {14, 0, 60},

	{0, 1, 30}, {1, 1, 120}, {2, 1, 100}, {4, 1, 20}, {5, 1, 80},
	{6, 1, 15}, {8, 1, 300}, {9, 1, 200},

	{0, 2, 25}, {1, 2, 100}, {3, 2, 50}, {4, 2, 15}, {8, 2, 250}, {10, 2, 150},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	adjustmentRepo := postgres.NewAdjustmentRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	adjustmentUC := inventory.NewAdjustmentUseCase(txRunner, adjustmentRepo, productRepo, warehouseRepo)
	documentUC := inventory.NewDocumentUseCase(txRunner, postgres.NewDocumentRepository(pool), productRepo, warehouseRepo)
	authUC := auth.NewAuthUseCase(userRepo, warehouseRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Bodegas
	warehouses := make([]*dto.WarehouseResponse, 0, 3)
	for _, in := range []dto.CreateWarehouseRequest{
		{Name: "Main Warehouse", Location: "New York, NY"},
		{Name: "West Coast Distribution", Location: "Los Angeles, CA"},
		{Name: "East Coast Hub", Location: "Boston, MA"},
	} {
		wh, err := warehouseUC.Create(in)
		if err != nil {
			log.Fatal().Err(err).Str("warehouse", in.Name).Msg("crear bodega")
		}
		log.Info().Str("id", wh.ID).Str("name", wh.Name).Msg("bodega creada")
		warehouses = append(warehouses, wh)
	}

	// Usuarios
	manager, err := authUC.Register(dto.RegisterRequest{
		Name:     "Manager User",
		Email:    "manager@stockmaster.com",
		Password: "manager123",
		Role:     entity.RoleManager,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("crear manager")
	}
	log.Info().Str("email", manager.Email).Msg("manager creado")

	staff, err := authUC.Register(dto.RegisterRequest{
		Name:        "Warehouse Staff",
		Email:       "staff@stockmaster.com",
		Password:    "staff123",
		Role:        entity.RoleStaff,
		WarehouseID: warehouses[0].ID,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("crear staff")
	}
	log.Info().Str("email", staff.Email).Str("warehouse", warehouses[0].Name).Msg("staff creado")

	// Catálogo
	products := make([]*dto.ProductResponse, 0, len(catalog))
	for _, sp := range catalog {
		p, err := productUC.Create(dto.CreateProductRequest{
			SKU:      sp.sku,
			Name:     sp.name,
			Category: sp.category,
			UOM:      sp.uom,
			Price:    decimal.RequireFromString(sp.price),
			Cost:     decimal.RequireFromString(sp.cost),
		})
		if err != nil {
			log.Fatal().Err(err).Str("sku", sp.sku).Msg("crear producto")
		}
		products = append(products, p)
	}
	log.Info().Int("count", len(products)).Msg("catálogo creado")

	// Stock inicial: ajustes manuales, así el ledger nace con rastro ADJUSTMENT.
	for _, s := range openingStock {
		if _, err := adjustmentUC.Apply(ctx,
			warehouses[s.warehouse].ID, products[s.product].ID, s.qty,
			"stock inicial", manager.ID,
		); err != nil {
			log.Fatal().Err(err).
				Str("sku", products[s.product].SKU).
				Str("warehouse", warehouses[s.warehouse].Name).
				Msg("stock inicial")
		}
	}
	log.Info().Int("count", len(openingStock)).Msg("niveles de stock iniciales aplicados")

	// Recepción procesada por el motor: DRAFT → READY → DONE.
	if err := seedReceipt(ctx, documentUC, seedReceiptInput{
		warehouseID: warehouses[0].ID,
		supplier:    "Tech Supplies Inc.",
		userID:      manager.ID,
		items: []seedItem{
			{products[0].ID, 20},
			{products[1].ID, 50},
		},
		validate: true,
	}); err != nil {
		log.Fatal().Err(err).Msg("recepción de ejemplo")
	}

	// Recepción pendiente de validación (queda en READY).
	if err := seedReceipt(ctx, documentUC, seedReceiptInput{
		warehouseID: warehouses[1].ID,
		supplier:    "Office Depot",
		userID:      staff.ID,
		items: []seedItem{
			{products[8].ID, 100},
			{products[9].ID, 50},
		},
	}); err != nil {
		log.Fatal().Err(err).Msg("recepción pendiente")
	}

	log.Info().Msg("seed completado")
	os.Exit(0)
}

type seedItem struct {
	productID string
	qty       int64
}

type seedReceiptInput struct {
	warehouseID string
	supplier    string
	userID      string
	items       []seedItem
	validate    bool
}

func seedReceipt(ctx context.Context, uc *inventory.DocumentUseCase, in seedReceiptInput) error {
	doc, err := uc.CreateDraft(ctx, inventory.CreateDocumentInput{
		Kind:         entity.DocumentKindReceipt,
		WarehouseID:  in.warehouseID,
		SupplierName: in.supplier,
		UserID:       in.userID,
	})
	if err != nil {
		return err
	}
	for _, item := range in.items {
		if _, err := uc.AddItem(ctx, doc.ID, item.productID, item.qty); err != nil {
			return err
		}
	}
	if _, err := uc.UpdateStatus(ctx, doc.ID, entity.StatusWaiting); err != nil {
		return err
	}
	if _, err := uc.UpdateStatus(ctx, doc.ID, entity.StatusReady); err != nil {
		return err
	}
	if !in.validate {
		return nil
	}
	_, err = uc.Validate(ctx, doc.ID)
	return err
}
