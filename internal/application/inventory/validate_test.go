package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockmaster/inventory-api/internal/domain"
	"github.com/stockmaster/inventory-api/internal/domain/entity"
	"github.com/stockmaster/inventory-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Validate: recepciones
// ──────────────────────────────────────────────────────────────────────────────

func TestValidate_RecepcionSumaStockYAsientaLedger(t *testing.T) {
	w := newWorld(t)
	w.setStock(w.prodLaptop, w.whMain, 50)
	doc := w.draftReceipt(t, w.whMain, map[string]int64{
		w.prodLaptop: 20,
		w.prodMouse:  50,
	})
	w.toReady(t, doc.ID)

	done, err := w.docUC.Validate(context.Background(), doc.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.StatusDone, done.Status)
	assert.Equal(t, int64(70), w.stockQty(w.prodLaptop, w.whMain))
	assert.Equal(t, int64(50), w.stockQty(w.prodMouse, w.whMain),
		"la fila de stock debe crearse al vuelo si no existía")

	require.Len(t, w.store.ledger, 2, "un asiento RECEIPT por línea")
	for _, entry := range w.store.ledger {
		assert.Equal(t, entity.LedgerTypeReceipt, entry.Type)
		assert.Equal(t, w.whMain, entry.DestWarehouseID)
		assert.Empty(t, entry.SourceWarehouseID, "una recepción no tiene origen")
		assert.Equal(t, doc.ID, entry.ReferenceID)
	}
}

func TestValidate_FueraDeReady(t *testing.T) {
	w := newWorld(t)
	doc := w.draftReceipt(t, w.whMain, map[string]int64{w.prodLaptop: 10})

	_, err := w.docUC.Validate(context.Background(), doc.ID)

	assert.ErrorIs(t, err, domain.ErrInvalidState, "solo READY es validable")
	assert.Zero(t, w.stockQty(w.prodLaptop, w.whMain))
}

func TestValidate_DocumentoVacio(t *testing.T) {
	w := newWorld(t)
	doc := w.draftReceipt(t, w.whMain, nil)
	w.toReady(t, doc.ID)

	_, err := w.docUC.Validate(context.Background(), doc.ID)

	assert.ErrorIs(t, err, domain.ErrEmptyDocument)

	reloaded, err := w.docUC.GetByID(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusReady, reloaded.Status,
		"un documento vacío queda en READY, no en DONE")
}

func TestValidate_SegundaValidacionPierde(t *testing.T) {
	w := newWorld(t)
	doc := w.draftReceipt(t, w.whMain, map[string]int64{w.prodLaptop: 10})
	w.toReady(t, doc.ID)

	_, err := w.docUC.Validate(context.Background(), doc.ID)
	require.NoError(t, err)

	// El documento ya está en DONE: revalidar no puede duplicar efectos.
	_, err = w.docUC.Validate(context.Background(), doc.ID)

	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.Equal(t, int64(10), w.stockQty(w.prodLaptop, w.whMain),
		"el stock debe reflejar una sola aplicación")
	assert.Len(t, w.store.ledger, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validate: entregas
// ──────────────────────────────────────────────────────────────────────────────

func TestValidate_EntregaRestaStock(t *testing.T) {
	w := newWorld(t)
	w.setStock(w.prodLaptop, w.whMain, 50)
	doc := w.draftDelivery(t, w.whMain, map[string]int64{w.prodLaptop: 10})
	w.toReady(t, doc.ID)

	done, err := w.docUC.Validate(context.Background(), doc.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.StatusDone, done.Status)
	assert.Equal(t, int64(40), w.stockQty(w.prodLaptop, w.whMain))

	require.Len(t, w.store.ledger, 1)
	entry := w.store.ledger[0]
	assert.Equal(t, entity.LedgerTypeDelivery, entry.Type)
	assert.Equal(t, w.whMain, entry.SourceWarehouseID)
	assert.Empty(t, entry.DestWarehouseID, "una entrega no tiene destino")
}

func TestValidate_EntregaExacta(t *testing.T) {
	w := newWorld(t)
	w.setStock(w.prodLaptop, w.whMain, 10)
	doc := w.draftDelivery(t, w.whMain, map[string]int64{w.prodLaptop: 10})
	w.toReady(t, doc.ID)

	_, err := w.docUC.Validate(context.Background(), doc.ID)

	require.NoError(t, err, "entregar exactamente lo disponible es válido")
	assert.Zero(t, w.stockQty(w.prodLaptop, w.whMain))
}

func TestValidate_EntregaSinStockSuficiente(t *testing.T) {
	w := newWorld(t)
	w.setStock(w.prodLaptop, w.whMain, 5)
	doc := w.draftDelivery(t, w.whMain, map[string]int64{w.prodLaptop: 10})
	w.toReady(t, doc.ID)

	_, err := w.docUC.Validate(context.Background(), doc.ID)

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(5), w.stockQty(w.prodLaptop, w.whMain), "el stock no se toca")

	reloaded, rerr := w.docUC.GetByID(context.Background(), doc.ID)
	require.NoError(t, rerr)
	assert.Equal(t, entity.StatusReady, reloaded.Status,
		"el documento sigue en READY y puede reintentarse")
}

// Atomicidad: la primera línea alcanza, la segunda no. Nada de la primera
// puede quedar aplicado.
func TestValidate_EntregaRollbackSinEfectosParciales(t *testing.T) {
	w := newWorld(t)
	w.setStock(w.prodLaptop, w.whMain, 100)
	w.setStock(w.prodMouse, w.whMain, 3)
	doc := w.draftDelivery(t, w.whMain, map[string]int64{
		w.prodLaptop: 10, // alcanza
		w.prodMouse:  5,  // no alcanza
	})
	w.toReady(t, doc.ID)

	_, err := w.docUC.Validate(context.Background(), doc.ID)

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(100), w.stockQty(w.prodLaptop, w.whMain),
		"la línea que sí alcanzaba no debe quedar aplicada")
	assert.Equal(t, int64(3), w.stockQty(w.prodMouse, w.whMain))
	assert.Empty(t, w.store.ledger, "ningún asiento de una validación fallida")

	reloaded, rerr := w.docUC.GetByID(context.Background(), doc.ID)
	require.NoError(t, rerr)
	assert.Equal(t, entity.StatusReady, reloaded.Status)
}

// Las líneas pueden repetir producto; la disponibilidad se verifica por el
// total agregado, así el sobregiro sale como ErrInsufficientStock y nunca
// llega al CHECK del storage.
func TestValidate_EntregaLineasRepetidasSobregiro(t *testing.T) {
	w := newWorld(t)
	w.setStock(w.prodLaptop, w.whMain, 15)
	doc := w.draftDelivery(t, w.whMain, map[string]int64{w.prodLaptop: 10})
	_, err := w.docUC.AddItem(context.Background(), doc.ID, w.prodLaptop, 10)
	require.NoError(t, err)
	w.toReady(t, doc.ID)

	_, err = w.docUC.Validate(context.Background(), doc.ID)

	assert.ErrorIs(t, err, domain.ErrInsufficientStock,
		"10+10 sobre 15 disponibles debe fallar como stock insuficiente")
	assert.Equal(t, int64(15), w.stockQty(w.prodLaptop, w.whMain))
	assert.Empty(t, w.store.ledger)
}

func TestValidate_EntregaLineasRepetidasQueAlcanzan(t *testing.T) {
	w := newWorld(t)
	w.setStock(w.prodLaptop, w.whMain, 20)
	doc := w.draftDelivery(t, w.whMain, map[string]int64{w.prodLaptop: 10})
	_, err := w.docUC.AddItem(context.Background(), doc.ID, w.prodLaptop, 10)
	require.NoError(t, err)
	w.toReady(t, doc.ID)

	done, err := w.docUC.Validate(context.Background(), doc.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.StatusDone, done.Status)
	assert.Zero(t, w.stockQty(w.prodLaptop, w.whMain))
	assert.Len(t, w.store.ledger, 2, "cada línea conserva su propio asiento")
}

func TestValidate_TrasladoLineasRepetidasSobregiro(t *testing.T) {
	w := newWorld(t)
	w.setStock(w.prodLaptop, w.whMain, 15)
	doc := w.draftTransfer(t, w.whMain, w.whWest, map[string]int64{w.prodLaptop: 10})
	_, err := w.docUC.AddItem(context.Background(), doc.ID, w.prodLaptop, 10)
	require.NoError(t, err)
	w.toReady(t, doc.ID)

	_, err = w.docUC.Validate(context.Background(), doc.ID)

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(15), w.stockQty(w.prodLaptop, w.whMain))
	assert.Zero(t, w.stockQty(w.prodLaptop, w.whWest))
	assert.Empty(t, w.store.ledger)
}

func TestValidate_EntregaSinFilaDeStock(t *testing.T) {
	w := newWorld(t)
	// Nunca hubo stock de este producto en la bodega: nivel implícito 0.
	doc := w.draftDelivery(t, w.whMain, map[string]int64{w.prodLaptop: 1})
	w.toReady(t, doc.ID)

	_, err := w.docUC.Validate(context.Background(), doc.ID)

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validate: traslados
// ──────────────────────────────────────────────────────────────────────────────

func TestValidate_TrasladoMueveEntreBodegas(t *testing.T) {
	w := newWorld(t)
	w.setStock(w.prodLaptop, w.whMain, 50)
	w.setStock(w.prodMouse, w.whMain, 200)
	doc := w.draftTransfer(t, w.whMain, w.whWest, map[string]int64{
		w.prodLaptop: 10,
		w.prodMouse:  30,
	})
	w.toReady(t, doc.ID)

	done, err := w.docUC.Validate(context.Background(), doc.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.StatusDone, done.Status)
	assert.Equal(t, int64(40), w.stockQty(w.prodLaptop, w.whMain))
	assert.Equal(t, int64(10), w.stockQty(w.prodLaptop, w.whWest))
	assert.Equal(t, int64(170), w.stockQty(w.prodMouse, w.whMain))
	assert.Equal(t, int64(30), w.stockQty(w.prodMouse, w.whWest))

	// Dos asientos por línea: TRANSFER_OUT del origen y TRANSFER_IN al destino.
	require.Len(t, w.store.ledger, 4)
	var outs, ins int
	for _, entry := range w.store.ledger {
		switch entry.Type {
		case entity.LedgerTypeTransferOut:
			outs++
			assert.Equal(t, w.whMain, entry.SourceWarehouseID)
			assert.Empty(t, entry.DestWarehouseID)
		case entity.LedgerTypeTransferIn:
			ins++
			assert.Equal(t, w.whWest, entry.DestWarehouseID)
			assert.Empty(t, entry.SourceWarehouseID)
		default:
			t.Fatalf("tipo de asiento inesperado: %s", entry.Type)
		}
	}
	assert.Equal(t, 2, outs)
	assert.Equal(t, 2, ins)
}

func TestValidate_TrasladoSinStockEnOrigen(t *testing.T) {
	w := newWorld(t)
	w.setStock(w.prodLaptop, w.whMain, 5)
	// El destino tiene de sobra, pero lo que cuenta es el origen.
	w.setStock(w.prodLaptop, w.whWest, 500)
	doc := w.draftTransfer(t, w.whMain, w.whWest, map[string]int64{w.prodLaptop: 10})
	w.toReady(t, doc.ID)

	_, err := w.docUC.Validate(context.Background(), doc.ID)

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(5), w.stockQty(w.prodLaptop, w.whMain))
	assert.Equal(t, int64(500), w.stockQty(w.prodLaptop, w.whWest))
	assert.Empty(t, w.store.ledger)
}

func TestValidate_TrasladoRollbackSegundaLinea(t *testing.T) {
	w := newWorld(t)
	w.setStock(w.prodLaptop, w.whMain, 100)
	w.setStock(w.prodMouse, w.whMain, 1)
	doc := w.draftTransfer(t, w.whMain, w.whWest, map[string]int64{
		w.prodLaptop: 10,
		w.prodMouse:  5,
	})
	w.toReady(t, doc.ID)

	_, err := w.docUC.Validate(context.Background(), doc.ID)

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(100), w.stockQty(w.prodLaptop, w.whMain))
	assert.Zero(t, w.stockQty(w.prodLaptop, w.whWest))
	assert.Empty(t, w.store.ledger)
}

func TestValidate_DocumentoCanceladoNoValidable(t *testing.T) {
	w := newWorld(t)
	w.setStock(w.prodLaptop, w.whMain, 50)
	doc := w.draftDelivery(t, w.whMain, map[string]int64{w.prodLaptop: 10})
	_, err := w.docUC.UpdateStatus(context.Background(), doc.ID, entity.StatusCanceled)
	require.NoError(t, err)

	_, err = w.docUC.Validate(context.Background(), doc.ID)

	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.Equal(t, int64(50), w.stockQty(w.prodLaptop, w.whMain))
}

func TestValidate_ReintentoTrasReponerStock(t *testing.T) {
	w := newWorld(t)
	w.setStock(w.prodLaptop, w.whMain, 5)
	doc := w.draftDelivery(t, w.whMain, map[string]int64{w.prodLaptop: 10})
	w.toReady(t, doc.ID)

	_, err := w.docUC.Validate(context.Background(), doc.ID)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Llega mercancía: el mismo documento READY se puede validar de nuevo.
	w.setStock(w.prodLaptop, w.whMain, 50)

	done, err := w.docUC.Validate(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDone, done.Status)
	assert.Equal(t, int64(40), w.stockQty(w.prodLaptop, w.whMain))
}

func TestValidate_LedgerConsultablePorFiltros(t *testing.T) {
	w := newWorld(t)
	w.setStock(w.prodLaptop, w.whMain, 50)
	doc := w.draftTransfer(t, w.whMain, w.whWest, map[string]int64{w.prodLaptop: 10})
	w.toReady(t, doc.ID)
	_, err := w.docUC.Validate(context.Background(), doc.ID)
	require.NoError(t, err)

	ledgerRepo := &memLedgerRepo{w.store}

	outs, err := ledgerRepo.List(repository.LedgerFilter{Type: entity.LedgerTypeTransferOut})
	require.NoError(t, err)
	assert.Len(t, outs, 1)

	// La bodega matchea como origen o como destino.
	byWest, err := ledgerRepo.List(repository.LedgerFilter{WarehouseID: w.whWest})
	require.NoError(t, err)
	assert.Len(t, byWest, 1)
	assert.Equal(t, entity.LedgerTypeTransferIn, byWest[0].Type)
}
