package entity

import "time"

// Tipos de documento de inventario.
const (
	DocumentKindReceipt  = "RECEIPT"  // entrada desde proveedor
	DocumentKindDelivery = "DELIVERY" // salida hacia cliente
	DocumentKindTransfer = "TRANSFER" // traslado entre bodegas
)

// Estados del ciclo de vida de un documento.
const (
	StatusDraft    = "DRAFT"
	StatusWaiting  = "WAITING"
	StatusReady    = "READY"
	StatusDone     = "DONE"
	StatusCanceled = "CANCELED"
)

// Document cabecera de un documento de inventario (recepción, entrega o
// traslado) que fluye por la máquina de estados DRAFT→WAITING→READY→DONE.
// WarehouseID aplica a RECEIPT/DELIVERY; From/To a TRANSFER (deben diferir).
// Los ítems solo son mutables en DRAFT. DONE y CANCELED son terminales.
type Document struct {
	ID              string
	Kind            string
	Status          string
	WarehouseID     string // RECEIPT / DELIVERY
	FromWarehouseID string // TRANSFER
	ToWarehouseID   string // TRANSFER
	SupplierName    string // RECEIPT
	CustomerName    string // DELIVERY
	CreatedBy       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Items           []DocumentItem
}

// DocumentItem línea de un documento: producto y cantidad (> 0).
type DocumentItem struct {
	ID         string
	DocumentID string
	ProductID  string
	Quantity   int64
	CreatedAt  time.Time
}

// TotalItems devuelve la cantidad de líneas del documento.
func (d *Document) TotalItems() int {
	return len(d.Items)
}

// IsTerminal indica si el documento ya no admite transiciones.
func (d *Document) IsTerminal() bool {
	return d.Status == StatusDone || d.Status == StatusCanceled
}
