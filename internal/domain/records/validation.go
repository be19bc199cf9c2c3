package records

import (
	"strings"
	"time"

	"pet-records/internal/platform/validate"
)

const DateLayout = "2006-01-02"

type VaccineInput struct {
	VaccineName      string `json:"vaccineName" validate:"required,notblank,max=100"`
	AdministeredDate string `json:"administeredDate" validate:"required,datetime=2006-01-02"`
}

type AllergyInput struct {
	AllergyName string   `json:"allergyName" validate:"required,notblank,max=100"`
	Reactions   []string `json:"reactions" validate:"min=1,max=10"`
	Severity    string   `json:"severity" validate:"required,oneof=mild severe"`
}

var vaccineMessages = validate.Messages{
	"vaccineName.required":      "Vaccine name is required",
	"vaccineName.max":           "Vaccine name must be 100 characters or less",
	"administeredDate.required": "Administered date is required",
	"administeredDate.datetime": "Administered date must be a valid date (YYYY-MM-DD)",
}

var allergyMessages = validate.Messages{
	"allergyName.required": "Allergy name is required",
	"allergyName.max":      "Allergy name must be 100 characters or less",
	"reactions.min":        "At least one reaction is required",
	"reactions.max":        "Maximum 10 reactions allowed",
	"severity":             "Severity must be either mild or severe",
}

// ValidateVaccine es la validación sintáctica (pura). El chequeo contra la
// fecha de nacimiento necesita storage y lo hace Service.AddVaccine.
func ValidateVaccine(in VaccineInput, today time.Time) (VaccinePayload, error) {
	if err := validate.Struct(in, vaccineMessages); err != nil {
		return VaccinePayload{}, err
	}

	d, _ := time.Parse(DateLayout, in.AdministeredDate)
	if d.After(civilDay(today)) {
		return VaccinePayload{}, validate.Field("administeredDate", "Administered date cannot be in the future")
	}

	return VaccinePayload{
		VaccineName:      in.VaccineName,
		AdministeredDate: in.AdministeredDate,
	}, nil
}

// ValidateAllergy trata reactions como conjunto (sin entradas en blanco,
// sin duplicados exactos, orden de primera aparición) antes de validar
// cantidades. Los textos no se modifican.
func ValidateAllergy(in AllergyInput) (AllergyPayload, error) {
	in.Reactions = normalizeReactions(in.Reactions)

	if err := validate.Struct(in, allergyMessages); err != nil {
		return AllergyPayload{}, err
	}

	return AllergyPayload{
		AllergyName: in.AllergyName,
		Reactions:   in.Reactions,
		Severity:    Severity(in.Severity),
	}, nil
}

func normalizeReactions(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, r := range in {
		if strings.TrimSpace(r) == "" {
			continue
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}

// civilDay trunca t a medianoche UTC de su fecha calendario local,
// para comparar contra fechas YYYY-MM-DD parseadas en UTC.
func civilDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
