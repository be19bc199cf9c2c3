package records

import (
	"context"
	"time"
)

type Repository interface {
	// Create inserta y devuelve el id asignado por storage.
	Create(ctx context.Context, petID int64, p Payload) (int64, error)
	GetByID(ctx context.Context, id int64) (MedicalRecord, error)
	// ListByPet ordena por created_at DESC, id DESC.
	ListByPet(ctx context.Context, petID int64, filter ListFilter) ([]MedicalRecord, error)
}

// ListFilter: Type vacío = todos los tipos.
type ListFilter struct {
	Type RecordType
}

// PetLookup lo implementa pets.Service. Se define acá para evitar ciclos
// de imports (pets -> records).
type PetLookup interface {
	DateOfBirth(ctx context.Context, petID int64) (dob time.Time, found bool, err error)
}
