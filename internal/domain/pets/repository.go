package pets

import (
	"context"

	"pet-records/internal/domain/records"
)

// Repository: los adapters devuelven ErrNotFound cuando el id no existe.
// Los listados ordenan por created_at DESC, id DESC; ownerName vacío = sin filtro.
type Repository interface {
	Create(ctx context.Context, p NewPet) (int64, error)
	GetByID(ctx context.Context, id int64) (Pet, error)
	List(ctx context.Context, ownerName string) ([]Pet, error)
	ListWithRecordCounts(ctx context.Context, ownerName string) ([]PetWithCounts, error)
	Stats(ctx context.Context) (Stats, error)
}

// RecordLister es la parte de records.Repository que usa GetWithRecords.
type RecordLister interface {
	ListByPet(ctx context.Context, petID int64, filter records.ListFilter) ([]records.MedicalRecord, error)
}
