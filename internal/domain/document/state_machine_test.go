package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockmaster/inventory-api/internal/domain"
	"github.com/stockmaster/inventory-api/internal/domain/document"
	"github.com/stockmaster/inventory-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tabla de transiciones: el flujo solo avanza hacia adelante
// (DRAFT→WAITING→READY→DONE) o se cancela; DONE y CANCELED son terminales.
// ──────────────────────────────────────────────────────────────────────────────

func TestCanTransition_Tabla(t *testing.T) {
	cases := []struct {
		name    string
		current string
		next    string
		want    bool
	}{
		{"draft a waiting", entity.StatusDraft, entity.StatusWaiting, true},
		{"draft a canceled", entity.StatusDraft, entity.StatusCanceled, true},
		{"draft no salta a ready", entity.StatusDraft, entity.StatusReady, false},
		{"draft no salta a done", entity.StatusDraft, entity.StatusDone, false},
		{"waiting a ready", entity.StatusWaiting, entity.StatusReady, true},
		{"waiting a canceled", entity.StatusWaiting, entity.StatusCanceled, true},
		{"waiting no retrocede a draft", entity.StatusWaiting, entity.StatusDraft, false},
		{"ready a done", entity.StatusReady, entity.StatusDone, true},
		{"ready a canceled", entity.StatusReady, entity.StatusCanceled, true},
		{"done es terminal", entity.StatusDone, entity.StatusCanceled, false},
		{"done no se reabre", entity.StatusDone, entity.StatusDraft, false},
		{"canceled es terminal", entity.StatusCanceled, entity.StatusDraft, false},
		{"canceled no pasa a done", entity.StatusCanceled, entity.StatusDone, false},
		{"estado desconocido no transiciona", "ARCHIVED", entity.StatusDone, false},
		{"destino desconocido", entity.StatusDraft, "ARCHIVED", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, document.CanTransition(tc.current, tc.next))
		})
	}
}

func TestValidateTransition_ErrorTipado(t *testing.T) {
	require.NoError(t, document.ValidateTransition(entity.StatusDraft, entity.StatusWaiting))

	err := document.ValidateTransition(entity.StatusDone, entity.StatusCanceled)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition,
		"una transición fuera de tabla siempre retorna ErrInvalidTransition")
}
