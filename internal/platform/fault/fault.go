// Package fault convierte errores internos (storage caído, readback vacío,
// payload corrupto) en un error genérico con una referencia opaca.
// El detalle solo queda en el log del servidor.
package fault

import (
	"errors"

	"github.com/google/uuid"

	"pet-records/internal/platform/logger"
)

// GenericMessage es lo único que ve el cliente.
const GenericMessage = "Something went wrong. Please try again."

// Error es un fallo interno ya logueado.
type Error struct {
	Ref string
	Op  string
	err error
}

func (e *Error) Error() string { return GenericMessage }

// Unwrap permite errors.Is contra la causa (solo para tests/logs).
func (e *Error) Unwrap() error { return e.err }

// Wrap loguea err con una referencia nueva y devuelve *Error.
// Si err ya es *Error se devuelve tal cual (no se loguea dos veces).
func Wrap(log logger.Logger, op string, err error) error {
	if err == nil {
		return nil
	}
	var fe *Error
	if errors.As(err, &fe) {
		return fe
	}

	ref := uuid.NewString()
	if log != nil {
		log.Error("internal fault", map[string]any{
			"op":        op,
			"error_ref": ref,
			"error":     err,
		})
	}
	return &Error{Ref: ref, Op: op, err: err}
}

// As extrae *Error de una cadena de errores.
func As(err error) (*Error, bool) {
	var fe *Error
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
