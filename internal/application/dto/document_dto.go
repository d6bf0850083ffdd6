package dto

import "time"

// CreateDocumentRequest body para crear un borrador de documento.
// RECEIPT/DELIVERY requieren warehouse_id; TRANSFER requiere from/to.
type CreateDocumentRequest struct {
	WarehouseID     string `json:"warehouse_id,omitempty"`
	FromWarehouseID string `json:"from_warehouse_id,omitempty"`
	ToWarehouseID   string `json:"to_warehouse_id,omitempty"`
	SupplierName    string `json:"supplier_name,omitempty"`
	CustomerName    string `json:"customer_name,omitempty"`
}

// AddItemRequest body para agregar una línea a un documento DRAFT.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid4"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
}

// UpdateStatusRequest body para el camino genérico de transición de estado.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=DRAFT WAITING READY DONE CANCELED"`
}

// DocumentItemResponse línea de documento.
type DocumentItemResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// DocumentResponse representación HTTP de un documento.
type DocumentResponse struct {
	ID              string                 `json:"id"`
	Kind            string                 `json:"kind"`
	Status          string                 `json:"status"`
	WarehouseID     string                 `json:"warehouse_id,omitempty"`
	FromWarehouseID string                 `json:"from_warehouse_id,omitempty"`
	ToWarehouseID   string                 `json:"to_warehouse_id,omitempty"`
	SupplierName    string                 `json:"supplier_name,omitempty"`
	CustomerName    string                 `json:"customer_name,omitempty"`
	CreatedBy       string                 `json:"created_by"`
	CreatedAt       time.Time              `json:"created_at"`
	Items           []DocumentItemResponse `json:"items"`
}
