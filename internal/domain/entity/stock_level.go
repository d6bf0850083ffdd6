package entity

import "time"

// StockLevel cantidad actual de un producto en una bodega.
// Identidad compuesta (ProductID, WarehouseID); se crea perezosamente en 0
// al primer movimiento. Solo el motor de documentos la muta, y nunca
// puede quedar negativa.
type StockLevel struct {
	ProductID   string
	WarehouseID string
	Quantity    int64
	UpdatedAt   time.Time
}
