// Package document implementa la máquina de estados de los documentos de
// inventario (servicio de dominio puro, sin I/O ni estado propio).
package document

import (
	"github.com/stockmaster/inventory-api/internal/domain"
	"github.com/stockmaster/inventory-api/internal/domain/entity"
)

// validTransitions tabla dirigida de sucesores permitidos (sin ciclos).
//
//	DRAFT    → WAITING, CANCELED
//	WAITING  → READY, CANCELED
//	READY    → DONE, CANCELED
//	DONE     → (terminal)
//	CANCELED → (terminal)
var validTransitions = map[string][]string{
	entity.StatusDraft:    {entity.StatusWaiting, entity.StatusCanceled},
	entity.StatusWaiting:  {entity.StatusReady, entity.StatusCanceled},
	entity.StatusReady:    {entity.StatusDone, entity.StatusCanceled},
	entity.StatusDone:     {},
	entity.StatusCanceled: {},
}

// CanTransition indica si el cambio de estado current→next está permitido.
func CanTransition(current, next string) bool {
	for _, allowed := range validTransitions[current] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ValidateTransition devuelve ErrInvalidTransition si current→next no está
// en la tabla de sucesores.
func ValidateTransition(current, next string) error {
	if !CanTransition(current, next) {
		return domain.ErrInvalidTransition
	}
	return nil
}
