package dto

import "time"

// CreateAdjustmentRequest body para POST /api/adjustments.
type CreateAdjustmentRequest struct {
	WarehouseID string `json:"warehouse_id" validate:"required,uuid4"`
	ProductID   string `json:"product_id" validate:"required,uuid4"`
	NewQty      int64  `json:"new_qty" validate:"min=0"`
	Reason      string `json:"reason,omitempty"`
}

// AdjustmentResponse representación HTTP de un ajuste aplicado.
type AdjustmentResponse struct {
	ID          string    `json:"id"`
	WarehouseID string    `json:"warehouse_id"`
	ProductID   string    `json:"product_id"`
	PrevQty     int64     `json:"prev_qty"`
	NewQty      int64     `json:"new_qty"`
	Reason      string    `json:"reason,omitempty"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// StockLevelResponse nivel actual de un producto en una bodega.
type StockLevelResponse struct {
	ProductID   string    `json:"product_id"`
	WarehouseID string    `json:"warehouse_id"`
	Quantity    int64     `json:"quantity"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LedgerEntryResponse asiento del historial de movimientos.
type LedgerEntryResponse struct {
	ID                string    `json:"id"`
	ProductID         string    `json:"product_id"`
	SourceWarehouseID string    `json:"source_warehouse_id,omitempty"`
	DestWarehouseID   string    `json:"dest_warehouse_id,omitempty"`
	Quantity          int64     `json:"quantity"`
	Type              string    `json:"type"`
	ReferenceID       string    `json:"reference_id"`
	Timestamp         time.Time `json:"timestamp"`
}
