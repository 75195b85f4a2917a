package intake

import (
	"errors"
	"fmt"

	"pet-intake/internal/domain/pets"
)

// Outcome clasifica el resultado de una operación del Synchronizer.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeNotFound
	OutcomeValidation
	OutcomeTransport
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeValidation:
		return "validation"
	case OutcomeTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// ErrNotFound: fetch llegó al servicio pero no hay registro con ese ID.
var ErrNotFound = errors.New("record not found")

// ValidationError bloquea la escritura antes de cualquier llamada remota.
// Incluye la falta de ID en operaciones que lo requieren (clave "id").
type ValidationError struct {
	Fields pets.FieldErrors
}

func (e *ValidationError) Error() string {
	return e.Fields.Error()
}

// TransportError envuelve cualquier falla de la llamada remota o del servicio.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: directory service: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// OutcomeOf traduce el error devuelto por el Synchronizer a su Outcome.
// Errores desconocidos cuentan como Transport.
func OutcomeOf(err error) Outcome {
	if err == nil {
		return OutcomeSuccess
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		return OutcomeValidation
	}
	if errors.Is(err, ErrNotFound) {
		return OutcomeNotFound
	}
	return OutcomeTransport
}

// FieldErrorsOf devuelve el detalle por campo si err es de validación.
func FieldErrorsOf(err error) (pets.FieldErrors, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Fields, true
	}
	return nil, false
}
