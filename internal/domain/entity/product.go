package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del catálogo (multi-bodega).
// El stock por bodega vive en StockLevel; aquí solo datos maestros.
// No se elimina un producto referenciado por stock o ledger.
type Product struct {
	ID        string
	SKU       string // código único
	Name      string
	Category  string
	UOM       string          // unidad de medida (unit, box, kg...)
	Price     decimal.Decimal // precio de venta
	Cost      decimal.Decimal // costo unitario de referencia
	CreatedAt time.Time
	UpdatedAt time.Time
}
