package memory

import (
	"errors"
	"sync"
	"time"

	"pet-records/internal/domain/pets"
	"pet-records/internal/domain/records"
)

// ErrForeignKey: el registro apunta a una mascota inexistente.
var ErrForeignKey = errors.New("memory: pet does not exist")

// storedRecord guarda el payload serializado, igual que la columna data.
type storedRecord struct {
	id        int64
	petID     int64
	typ       records.RecordType
	data      []byte
	createdAt time.Time
}

// Store es el estado compartido de PetRepo y RecordRepo: un único lock
// para que la FK de registro -> mascota se respete.
type Store struct {
	mu sync.RWMutex

	pets    map[int64]pets.Pet
	records map[int64]storedRecord

	nextPetID    int64
	nextRecordID int64

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		pets:    make(map[int64]pets.Pet),
		records: make(map[int64]storedRecord),
		now:     time.Now,
	}
}
