package pets

import (
	"time"

	"pet-records/internal/domain/records"
)

// AnimalType define los tipos de animal soportados.
// @Enum dog, cat, bird, rabbit, other
type AnimalType string

const (
	AnimalDog    AnimalType = "dog"
	AnimalCat    AnimalType = "cat"
	AnimalBird   AnimalType = "bird"
	AnimalRabbit AnimalType = "rabbit"
	AnimalOther  AnimalType = "other"
)

// Pet representa el perfil de una mascota.
// DateOfBirth es una fecha calendario (YYYY-MM-DD) guardada como medianoche UTC.
type Pet struct {
	ID int64

	Name       string
	AnimalType AnimalType
	OwnerName  string

	DateOfBirth time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewPet es un Pet ya validado, todavía sin id.
type NewPet struct {
	Name        string
	AnimalType  AnimalType
	OwnerName   string
	DateOfBirth time.Time
}

type PetWithRecords struct {
	Pet     Pet
	Records []records.MedicalRecord
}

type RecordCounts struct {
	Vaccines  int
	Allergies int
}

type PetWithCounts struct {
	Pet    Pet
	Counts RecordCounts
}

type Stats struct {
	TotalPets      int
	TotalVaccines  int
	TotalAllergies int
}
