package records

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-records/internal/platform/validate"
)

var today = time.Date(2024, 6, 15, 23, 59, 0, 0, time.UTC)

func TestValidateVaccine(t *testing.T) {
	p, err := ValidateVaccine(VaccineInput{VaccineName: " Rabies ", AdministeredDate: "2024-06-15"}, today)
	require.NoError(t, err)
	assert.Equal(t, VaccinePayload{VaccineName: " Rabies ", AdministeredDate: "2024-06-15"}, p)

	cases := []struct {
		name string
		in   VaccineInput
		msg  string
	}{
		{"missing name", VaccineInput{AdministeredDate: "2024-01-01"}, "Vaccine name is required"},
		{"blank name", VaccineInput{VaccineName: "   ", AdministeredDate: "2024-01-01"}, "Vaccine name is required"},
		{"long name", VaccineInput{VaccineName: strings.Repeat("v", 101), AdministeredDate: "2024-01-01"}, "Vaccine name must be 100 characters or less"},
		{"missing date", VaccineInput{VaccineName: "Rabies"}, "Administered date is required"},
		{"bad date", VaccineInput{VaccineName: "Rabies", AdministeredDate: "01/02/2024"}, "Administered date must be a valid date (YYYY-MM-DD)"},
		{"future date", VaccineInput{VaccineName: "Rabies", AdministeredDate: "2024-06-16"}, "Administered date cannot be in the future"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ValidateVaccine(tc.in, today)
			require.Error(t, err)
			_, ok := validate.AsErrors(err)
			assert.True(t, ok)
			assert.Equal(t, tc.msg, err.Error())
		})
	}
}

func TestValidateAllergy(t *testing.T) {
	p, err := ValidateAllergy(AllergyInput{
		AllergyName: " Pollen ",
		Reactions:   []string{"Hives", "Hives", "", " ", "Itching "},
		Severity:    "severe",
	})
	require.NoError(t, err)
	assert.Equal(t, AllergyPayload{
		AllergyName: " Pollen ",
		Reactions:   []string{"Hives", "Itching "},
		Severity:    SeveritySevere,
	}, p)

	eleven := make([]string, 11)
	for i := range eleven {
		eleven[i] = string(rune('a' + i))
	}

	cases := []struct {
		name string
		in   AllergyInput
		msg  string
	}{
		{"missing name", AllergyInput{Reactions: []string{"Hives"}, Severity: "mild"}, "Allergy name is required"},
		{"no reactions", AllergyInput{AllergyName: "Pollen", Severity: "mild"}, "At least one reaction is required"},
		{"only blank reactions", AllergyInput{AllergyName: "Pollen", Reactions: []string{" ", ""}, Severity: "mild"}, "At least one reaction is required"},
		{"too many reactions", AllergyInput{AllergyName: "Pollen", Reactions: eleven, Severity: "mild"}, "Maximum 10 reactions allowed"},
		{"blank name", AllergyInput{AllergyName: " ", Reactions: []string{"Hives"}, Severity: "mild"}, "Allergy name is required"},
		{"capitalized severity", AllergyInput{AllergyName: "Pollen", Reactions: []string{"Hives"}, Severity: "Severe"}, "Severity must be either mild or severe"},
		{"bad severity", AllergyInput{AllergyName: "Pollen", Reactions: []string{"Hives"}, Severity: "moderate"}, "Severity must be either mild or severe"},
		{"missing severity", AllergyInput{AllergyName: "Pollen", Reactions: []string{"Hives"}}, "Severity must be either mild or severe"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ValidateAllergy(tc.in)
			require.Error(t, err)
			assert.Equal(t, tc.msg, err.Error())
		})
	}
}

func TestValidateAllergy_DuplicatesCollapseBeforeLimit(t *testing.T) {
	in := AllergyInput{AllergyName: "Pollen", Severity: "mild"}
	for i := 0; i < 15; i++ {
		in.Reactions = append(in.Reactions, "Hives")
	}
	p, err := ValidateAllergy(in)
	require.NoError(t, err)
	assert.Equal(t, []string{"Hives"}, p.Reactions)
}
