package entity

import "time"

// Adjustment corrección directa e inmediata de un nivel de stock, fuera del
// flujo de documentos (sin fase DRAFT). Registro write-once: al aplicarse
// muta el StockLevel y agrega un asiento ADJUSTMENT al ledger en la misma
// transacción.
type Adjustment struct {
	ID          string
	WarehouseID string
	ProductID   string
	PrevQty     int64
	NewQty      int64
	Reason      string
	CreatedBy   string
	CreatedAt   time.Time
}

// Delta devuelve el cambio de cantidad (NewQty - PrevQty), con signo.
func (a *Adjustment) Delta() int64 {
	return a.NewQty - a.PrevQty
}
