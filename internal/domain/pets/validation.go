package pets

import (
	"time"

	"pet-records/internal/domain/records"
	"pet-records/internal/platform/validate"
)

type CreateInput struct {
	Name        string `json:"name" validate:"required,notblank,max=50"`
	AnimalType  string `json:"animalType" validate:"required,oneof=dog cat bird rabbit other"`
	OwnerName   string `json:"ownerName" validate:"required,notblank,max=100"`
	DateOfBirth string `json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
}

var createMessages = validate.Messages{
	"name.required":        "Pet name is required",
	"name.max":             "Pet name must be 50 characters or less",
	"animalType":           "Please select a valid animal type",
	"ownerName.required":   "Owner name is required",
	"ownerName.max":        "Owner name must be 100 characters or less",
	"dateOfBirth.required": "Date of birth is required",
	"dateOfBirth.datetime": "Date of birth must be a valid date (YYYY-MM-DD)",
}

// ValidateCreate valida sin reescribir: lo que se guarda es lo enviado.
// Hoy es válido, mañana no.
func ValidateCreate(in CreateInput, today time.Time) (NewPet, error) {
	if err := validate.Struct(in, createMessages); err != nil {
		return NewPet{}, err
	}

	dob, _ := time.Parse(records.DateLayout, in.DateOfBirth)
	y, m, d := today.Date()
	if dob.After(time.Date(y, m, d, 0, 0, 0, 0, time.UTC)) {
		return NewPet{}, validate.Field("dateOfBirth", "Date of birth cannot be in the future")
	}

	return NewPet{
		Name:        in.Name,
		AnimalType:  AnimalType(in.AnimalType),
		OwnerName:   in.OwnerName,
		DateOfBirth: dob,
	}, nil
}
