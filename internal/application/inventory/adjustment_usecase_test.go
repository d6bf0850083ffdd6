package inventory_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockmaster/inventory-api/internal/domain"
	"github.com/stockmaster/inventory-api/internal/domain/entity"
	"github.com/stockmaster/inventory-api/internal/domain/repository"
)

func TestAdjustment_SubeStock(t *testing.T) {
	w := newWorld(t)
	w.setStock(w.prodLaptop, w.whMain, 50)

	adj, err := w.adjUC.Apply(context.Background(), w.whMain, w.prodLaptop, 62, "conteo físico", "manager-1")

	require.NoError(t, err)
	assert.Equal(t, int64(50), adj.PrevQty)
	assert.Equal(t, int64(62), adj.NewQty)
	assert.Equal(t, int64(12), adj.Delta())
	assert.Equal(t, int64(62), w.stockQty(w.prodLaptop, w.whMain))

	require.Len(t, w.store.ledger, 1)
	entry := w.store.ledger[0]
	assert.Equal(t, entity.LedgerTypeAdjustment, entry.Type)
	assert.Equal(t, int64(12), entry.Quantity)
	assert.Equal(t, w.whMain, entry.DestWarehouseID)
	assert.Equal(t, adj.ID, entry.ReferenceID)
}

// El asiento de un ajuste a la baja también va con cantidad absoluta y bodega
// destino: el signo solo se recupera cruzando con el registro Adjustment.
func TestAdjustment_BajaStockAsientoAbsoluto(t *testing.T) {
	w := newWorld(t)
	w.setStock(w.prodLaptop, w.whMain, 50)

	adj, err := w.adjUC.Apply(context.Background(), w.whMain, w.prodLaptop, 30, "merma", "manager-1")

	require.NoError(t, err)
	assert.Equal(t, int64(-20), adj.Delta())
	assert.Equal(t, int64(30), w.stockQty(w.prodLaptop, w.whMain))

	require.Len(t, w.store.ledger, 1)
	entry := w.store.ledger[0]
	assert.Equal(t, int64(20), entry.Quantity, "cantidad absoluta, sin signo")
	assert.Equal(t, w.whMain, entry.DestWarehouseID)
	assert.Empty(t, entry.SourceWarehouseID)
}

func TestAdjustment_CantidadNegativaRechazada(t *testing.T) {
	w := newWorld(t)

	_, err := w.adjUC.Apply(context.Background(), w.whMain, w.prodLaptop, -1, "", "manager-1")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdjustment_ProductoOBodegaInexistente(t *testing.T) {
	w := newWorld(t)

	_, err := w.adjUC.Apply(context.Background(), w.whMain, uuid.New().String(), 10, "", "manager-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = w.adjUC.Apply(context.Background(), uuid.New().String(), w.prodLaptop, 10, "", "manager-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdjustment_CreaFilaDeStockSiNoExiste(t *testing.T) {
	w := newWorld(t)

	adj, err := w.adjUC.Apply(context.Background(), w.whWest, w.prodMouse, 40, "stock inicial", "manager-1")

	require.NoError(t, err)
	assert.Zero(t, adj.PrevQty, "una fila nueva parte de 0")
	assert.Equal(t, int64(40), w.stockQty(w.prodMouse, w.whWest))
}

func TestAdjustment_SinCambioTambienDejaRastro(t *testing.T) {
	w := newWorld(t)
	w.setStock(w.prodLaptop, w.whMain, 25)

	adj, err := w.adjUC.Apply(context.Background(), w.whMain, w.prodLaptop, 25, "conteo sin diferencia", "manager-1")

	require.NoError(t, err)
	assert.Zero(t, adj.Delta())
	require.Len(t, w.store.ledger, 1)
	assert.Zero(t, w.store.ledger[0].Quantity)
}

func TestAdjustment_ConsultableTrasAplicar(t *testing.T) {
	w := newWorld(t)
	w.setStock(w.prodLaptop, w.whMain, 50)
	applied, err := w.adjUC.Apply(context.Background(), w.whMain, w.prodLaptop, 45, "daño", "manager-1")
	require.NoError(t, err)

	got, err := w.adjUC.GetByID(context.Background(), applied.ID)
	require.NoError(t, err)
	assert.Equal(t, applied.PrevQty, got.PrevQty)
	assert.Equal(t, "daño", got.Reason)

	list, err := w.adjUC.List(context.Background(), repository.AdjustmentFilter{WarehouseID: w.whMain})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

// GetOrCreate es idempotente por par (producto, bodega): la segunda llamada
// devuelve la misma fila sin pisar la cantidad. En producción la garantía de
// fila única bajo concurrencia la da el INSERT ... ON CONFLICT DO NOTHING del
// repositorio de Postgres; aquí se cubre el contrato del puerto.
func TestGetOrCreate_IdempotentePorPar(t *testing.T) {
	w := newWorld(t)
	stockRepo := &memStockRepo{w.store}

	first, err := stockRepo.GetOrCreate(w.prodLaptop, w.whMain)
	require.NoError(t, err)
	assert.Zero(t, first.Quantity, "la fila nueva nace en 0")

	require.NoError(t, stockRepo.SetQuantity(w.prodLaptop, w.whMain, 42))

	second, err := stockRepo.GetOrCreate(w.prodLaptop, w.whMain)
	require.NoError(t, err)
	assert.Equal(t, int64(42), second.Quantity,
		"repetir GetOrCreate no debe resetear la cantidad existente")
	assert.Len(t, w.store.stock, 1, "una sola fila por par (producto, bodega)")
}

func TestAdjustment_GetByIDInexistente(t *testing.T) {
	w := newWorld(t)

	_, err := w.adjUC.GetByID(context.Background(), uuid.New().String())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
