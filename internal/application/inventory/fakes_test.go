package inventory_test

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/stockmaster/inventory-api/internal/domain/entity"
	"github.com/stockmaster/inventory-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria: un memStore por test, repos atados al store y un
// memTxRunner que copia el store, ejecuta el callback sobre la copia y solo
// la publica si el callback no falla (simula commit/rollback).
// ──────────────────────────────────────────────────────────────────────────────

var errQuantityCheck = errors.New("violación de CHECK: quantity >= 0")

type memStore struct {
	products    map[string]*entity.Product
	warehouses  map[string]*entity.Warehouse
	docs        map[string]*entity.Document
	stock       map[string]*entity.StockLevel // clave productID|warehouseID
	ledger      []*entity.LedgerEntry
	adjustments map[string]*entity.Adjustment
}

func newMemStore() *memStore {
	return &memStore{
		products:    map[string]*entity.Product{},
		warehouses:  map[string]*entity.Warehouse{},
		docs:        map[string]*entity.Document{},
		stock:       map[string]*entity.StockLevel{},
		adjustments: map[string]*entity.Adjustment{},
	}
}

func stockKey(productID, warehouseID string) string {
	return productID + "|" + warehouseID
}

func (s *memStore) clone() *memStore {
	c := newMemStore()
	for id, p := range s.products {
		cp := *p
		c.products[id] = &cp
	}
	for id, w := range s.warehouses {
		cw := *w
		c.warehouses[id] = &cw
	}
	for id, d := range s.docs {
		cd := *d
		cd.Items = append([]entity.DocumentItem(nil), d.Items...)
		c.docs[id] = &cd
	}
	for k, lvl := range s.stock {
		cl := *lvl
		c.stock[k] = &cl
	}
	c.ledger = append([]*entity.LedgerEntry(nil), s.ledger...)
	for id, a := range s.adjustments {
		ca := *a
		c.adjustments[id] = &ca
	}
	return c
}

// ─── DocumentRepository ───────────────────────────────────────────────────────

type memDocumentRepo struct{ s *memStore }

func (r *memDocumentRepo) Create(doc *entity.Document) error {
	cd := *doc
	cd.Items = append([]entity.DocumentItem(nil), doc.Items...)
	r.s.docs[doc.ID] = &cd
	return nil
}

func (r *memDocumentRepo) GetByID(id string) (*entity.Document, error) {
	doc, ok := r.s.docs[id]
	if !ok {
		return nil, nil
	}
	cd := *doc
	cd.Items = append([]entity.DocumentItem(nil), doc.Items...)
	return &cd, nil
}

func (r *memDocumentRepo) UpdateStatus(id, status string) error {
	doc, ok := r.s.docs[id]
	if !ok {
		return nil
	}
	doc.Status = status
	return nil
}

func (r *memDocumentRepo) MarkDone(id string) (bool, error) {
	doc, ok := r.s.docs[id]
	if !ok || doc.Status != entity.StatusReady {
		return false, nil
	}
	doc.Status = entity.StatusDone
	return true, nil
}

func (r *memDocumentRepo) AddItem(item *entity.DocumentItem) error {
	doc, ok := r.s.docs[item.DocumentID]
	if !ok {
		return errors.New("documento inexistente")
	}
	doc.Items = append(doc.Items, *item)
	return nil
}

func (r *memDocumentRepo) RemoveItem(documentID, itemID string) error {
	doc, ok := r.s.docs[documentID]
	if !ok {
		return nil
	}
	for i, item := range doc.Items {
		if item.ID == itemID {
			doc.Items = append(doc.Items[:i], doc.Items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *memDocumentRepo) List(filter repository.DocumentFilter) ([]*entity.Document, error) {
	var out []*entity.Document
	for _, doc := range r.s.docs {
		if filter.Kind != "" && doc.Kind != filter.Kind {
			continue
		}
		if filter.Status != "" && doc.Status != filter.Status {
			continue
		}
		if filter.WarehouseID != "" &&
			doc.WarehouseID != filter.WarehouseID &&
			doc.FromWarehouseID != filter.WarehouseID &&
			doc.ToWarehouseID != filter.WarehouseID {
			continue
		}
		cd := *doc
		out = append(out, &cd)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ─── StockLevelRepository ─────────────────────────────────────────────────────

type memStockRepo struct{ s *memStore }

func (r *memStockRepo) Get(productID, warehouseID string) (*entity.StockLevel, error) {
	if lvl, ok := r.s.stock[stockKey(productID, warehouseID)]; ok {
		cl := *lvl
		return &cl, nil
	}
	return &entity.StockLevel{ProductID: productID, WarehouseID: warehouseID}, nil
}

func (r *memStockRepo) GetOrCreate(productID, warehouseID string) (*entity.StockLevel, error) {
	key := stockKey(productID, warehouseID)
	if _, ok := r.s.stock[key]; !ok {
		r.s.stock[key] = &entity.StockLevel{
			ProductID:   productID,
			WarehouseID: warehouseID,
			UpdatedAt:   time.Now(),
		}
	}
	cl := *r.s.stock[key]
	return &cl, nil
}

func (r *memStockRepo) GetForUpdate(productID, warehouseID string) (*entity.StockLevel, error) {
	return r.Get(productID, warehouseID)
}

func (r *memStockRepo) AdjustBy(productID, warehouseID string, delta int64) error {
	key := stockKey(productID, warehouseID)
	lvl, ok := r.s.stock[key]
	if !ok {
		lvl = &entity.StockLevel{ProductID: productID, WarehouseID: warehouseID}
		r.s.stock[key] = lvl
	}
	if lvl.Quantity+delta < 0 {
		return errQuantityCheck
	}
	lvl.Quantity += delta
	lvl.UpdatedAt = time.Now()
	return nil
}

func (r *memStockRepo) SetQuantity(productID, warehouseID string, quantity int64) error {
	if quantity < 0 {
		return errQuantityCheck
	}
	key := stockKey(productID, warehouseID)
	r.s.stock[key] = &entity.StockLevel{
		ProductID:   productID,
		WarehouseID: warehouseID,
		Quantity:    quantity,
		UpdatedAt:   time.Now(),
	}
	return nil
}

func (r *memStockRepo) ListByWarehouse(warehouseID string, limit, offset int) ([]*entity.StockLevel, error) {
	var out []*entity.StockLevel
	for _, lvl := range r.s.stock {
		if lvl.WarehouseID == warehouseID {
			cl := *lvl
			out = append(out, &cl)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out, nil
}

func (r *memStockRepo) ListByProduct(productID string) ([]*entity.StockLevel, error) {
	var out []*entity.StockLevel
	for _, lvl := range r.s.stock {
		if lvl.ProductID == productID {
			cl := *lvl
			out = append(out, &cl)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].WarehouseID < out[j].WarehouseID })
	return out, nil
}

// ─── LedgerRepository ─────────────────────────────────────────────────────────

type memLedgerRepo struct{ s *memStore }

func (r *memLedgerRepo) Append(entry *entity.LedgerEntry) error {
	ce := *entry
	if ce.ID == "" {
		ce.ID = uuid.New().String()
	}
	r.s.ledger = append(r.s.ledger, &ce)
	return nil
}

func (r *memLedgerRepo) List(filter repository.LedgerFilter) ([]*entity.LedgerEntry, error) {
	var out []*entity.LedgerEntry
	for _, e := range r.s.ledger {
		if filter.ProductID != "" && e.ProductID != filter.ProductID {
			continue
		}
		if filter.WarehouseID != "" &&
			e.SourceWarehouseID != filter.WarehouseID &&
			e.DestWarehouseID != filter.WarehouseID {
			continue
		}
		if filter.Type != "" && e.Type != filter.Type {
			continue
		}
		ce := *e
		out = append(out, &ce)
	}
	return out, nil
}

// ─── AdjustmentRepository ─────────────────────────────────────────────────────

type memAdjustmentRepo struct{ s *memStore }

func (r *memAdjustmentRepo) Create(adj *entity.Adjustment) error {
	ca := *adj
	r.s.adjustments[adj.ID] = &ca
	return nil
}

func (r *memAdjustmentRepo) GetByID(id string) (*entity.Adjustment, error) {
	if adj, ok := r.s.adjustments[id]; ok {
		ca := *adj
		return &ca, nil
	}
	return nil, nil
}

func (r *memAdjustmentRepo) List(filter repository.AdjustmentFilter) ([]*entity.Adjustment, error) {
	var out []*entity.Adjustment
	for _, adj := range r.s.adjustments {
		if filter.WarehouseID != "" && adj.WarehouseID != filter.WarehouseID {
			continue
		}
		if filter.ProductID != "" && adj.ProductID != filter.ProductID {
			continue
		}
		ca := *adj
		out = append(out, &ca)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ─── ProductRepository / WarehouseRepository ─────────────────────────────────

type memProductRepo struct{ s *memStore }

func (r *memProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	if p, ok := r.s.products[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *memProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SKU < out[j].SKU })
	return out, nil
}

type memWarehouseRepo struct{ s *memStore }

func (r *memWarehouseRepo) Create(w *entity.Warehouse) error {
	cw := *w
	r.s.warehouses[w.ID] = &cw
	return nil
}

func (r *memWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	if w, ok := r.s.warehouses[id]; ok {
		cw := *w
		return &cw, nil
	}
	return nil, nil
}

func (r *memWarehouseRepo) Update(w *entity.Warehouse) error {
	cw := *w
	r.s.warehouses[w.ID] = &cw
	return nil
}

func (r *memWarehouseRepo) List(limit, offset int) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range r.s.warehouses {
		cw := *w
		out = append(out, &cw)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// ─── TxRunner ─────────────────────────────────────────────────────────────────

// memTxRunner ejecuta el callback sobre una copia del store y solo la publica
// si no hubo error: cualquier fallo a mitad de camino deja el store original
// intacto, igual que un rollback de Postgres.
type memTxRunner struct{ s *memStore }

func (r *memTxRunner) Run(ctx context.Context, fn func(
	docRepo repository.DocumentRepository,
	stockRepo repository.StockLevelRepository,
	ledgerRepo repository.LedgerRepository,
) error) error {
	tx := r.s.clone()
	if err := fn(&memDocumentRepo{tx}, &memStockRepo{tx}, &memLedgerRepo{tx}); err != nil {
		return err
	}
	*r.s = *tx
	return nil
}

func (r *memTxRunner) RunAdjustment(ctx context.Context, fn func(
	stockRepo repository.StockLevelRepository,
	ledgerRepo repository.LedgerRepository,
	adjRepo repository.AdjustmentRepository,
) error) error {
	tx := r.s.clone()
	if err := fn(&memStockRepo{tx}, &memLedgerRepo{tx}, &memAdjustmentRepo{tx}); err != nil {
		return err
	}
	*r.s = *tx
	return nil
}
