package directory

import (
	"context"
	"errors"

	"pet-intake/internal/domain/pets"
)

// ErrNotFound: el servicio respondió bien pero no tiene el registro.
var ErrNotFound = errors.New("directory: record not found")

// Service es el contrato del Directory Service remoto.
// Cualquier error distinto de ErrNotFound se considera falla de transporte/servicio.
type Service interface {
	Get(ctx context.Context, id string) (pets.Pet, error)
	// Create asigna ID si viene vacío.
	Create(ctx context.Context, p pets.Pet) (pets.Pet, error)
	Update(ctx context.Context, id string, p pets.Pet) (pets.Pet, error)
	Delete(ctx context.Context, id string) error
}
