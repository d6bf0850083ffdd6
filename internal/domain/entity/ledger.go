package entity

import "time"

// Tipos de asiento en el ledger de stock.
const (
	LedgerTypeReceipt     = "RECEIPT"
	LedgerTypeDelivery    = "DELIVERY"
	LedgerTypeTransferOut = "TRANSFER_OUT"
	LedgerTypeTransferIn  = "TRANSFER_IN"
	LedgerTypeAdjustment  = "ADJUSTMENT"
)

// LedgerEntry asiento inmutable del historial de movimientos de stock.
// Append-only: nunca se actualiza ni se borra; es la fuente de verdad
// para reportes históricos. Una fila por cambio direccional de cantidad
// (un TRANSFER produce dos: OUT en origen e IN en destino).
type LedgerEntry struct {
	ID                string
	ProductID         string
	SourceWarehouseID string // vacío salvo DELIVERY / TRANSFER_OUT
	DestWarehouseID   string // vacío salvo RECEIPT / TRANSFER_IN / ADJUSTMENT
	Quantity          int64  // siempre > 0; la dirección la dan source/dest
	Type              string
	ReferenceID       string // documento o ajuste que originó el asiento
	Timestamp         time.Time
}
