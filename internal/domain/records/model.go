package records

import "time"

// RecordType es el discriminador de medical_records.record_type.
// @Enum vaccine, allergy, lab_result, vital
type RecordType string

const (
	TypeVaccine RecordType = "vaccine"
	TypeAllergy RecordType = "allergy"

	// Declarados pero sin payload implementado: nunca se construyen.
	TypeLabResult RecordType = "lab_result"
	TypeVital     RecordType = "vital"
)

// Known reporta si t es un discriminador declarado (aunque no sea construible).
func (t RecordType) Known() bool {
	switch t {
	case TypeVaccine, TypeAllergy, TypeLabResult, TypeVital:
		return true
	default:
		return false
	}
}

// Severity de una alergia.
// @Enum mild, severe
type Severity string

const (
	SeverityMild   Severity = "mild"
	SeveritySevere Severity = "severe"
)

// CommonReactions es la lista sugerida para la UI; se aceptan otras en texto libre.
var CommonReactions = []string{
	"Hives",
	"Itching",
	"Swelling",
	"Rash",
	"Vomiting",
	"Diarrhea",
	"Difficulty breathing",
	"Sneezing",
	"Watery eyes",
	"Lethargy",
}

// Payload es el dato variable de un registro. Solo lo implementan
// VaccinePayload y AllergyPayload (interfaz sellada).
type Payload interface {
	RecordType() RecordType
	sealed()
}

// VaccinePayload: administeredDate en formato YYYY-MM-DD.
type VaccinePayload struct {
	VaccineName      string `json:"vaccineName"`
	AdministeredDate string `json:"administeredDate"`
}

func (VaccinePayload) RecordType() RecordType { return TypeVaccine }
func (VaccinePayload) sealed()                {}

type AllergyPayload struct {
	AllergyName string   `json:"allergyName"`
	Reactions   []string `json:"reactions"`
	Severity    Severity `json:"severity"`
}

func (AllergyPayload) RecordType() RecordType { return TypeAllergy }
func (AllergyPayload) sealed()                {}

// MedicalRecord es inmutable una vez creado.
type MedicalRecord struct {
	ID    int64
	PetID int64

	Type    RecordType
	Payload Payload

	CreatedAt time.Time
}

func (r MedicalRecord) Vaccine() (VaccinePayload, bool) {
	v, ok := r.Payload.(VaccinePayload)
	return v, ok
}

func (r MedicalRecord) Allergy() (AllergyPayload, bool) {
	a, ok := r.Payload.(AllergyPayload)
	return a, ok
}
