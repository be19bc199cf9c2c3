package pets

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-records/internal/platform/validate"
)

var today = time.Date(2024, 6, 15, 18, 30, 0, 0, time.UTC)

func validInput() CreateInput {
	return CreateInput{Name: "Rex", AnimalType: "dog", OwnerName: "Ann", DateOfBirth: "2020-01-01"}
}

func TestValidateCreate_OK(t *testing.T) {
	np, err := ValidateCreate(validInput(), today)
	require.NoError(t, err)
	assert.Equal(t, "Rex", np.Name)
	assert.Equal(t, AnimalDog, np.AnimalType)
	assert.Equal(t, "Ann", np.OwnerName)
	assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), np.DateOfBirth)
}

func TestValidateCreate_KeepsPaddedNames(t *testing.T) {
	in := validInput()
	in.Name = " Rex "
	in.OwnerName = "Ann "

	np, err := ValidateCreate(in, today)
	require.NoError(t, err)
	assert.Equal(t, " Rex ", np.Name)
	assert.Equal(t, "Ann ", np.OwnerName)
}

func TestValidateCreate_Messages(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CreateInput)
		field  string
		msg    string
	}{
		{"missing name", func(in *CreateInput) { in.Name = "" }, "name", "Pet name is required"},
		{"blank name", func(in *CreateInput) { in.Name = "   " }, "name", "Pet name is required"},
		{"long name", func(in *CreateInput) { in.Name = strings.Repeat("a", 51) }, "name", "Pet name must be 50 characters or less"},
		{"bad animal", func(in *CreateInput) { in.AnimalType = "dragon" }, "animalType", "Please select a valid animal type"},
		{"uppercase animal", func(in *CreateInput) { in.AnimalType = "DOG" }, "animalType", "Please select a valid animal type"},
		{"padded animal", func(in *CreateInput) { in.AnimalType = " dog" }, "animalType", "Please select a valid animal type"},
		{"blank owner", func(in *CreateInput) { in.OwnerName = "\t " }, "ownerName", "Owner name is required"},
		{"padded dob", func(in *CreateInput) { in.DateOfBirth = " 2020-01-01" }, "dateOfBirth", "Date of birth must be a valid date (YYYY-MM-DD)"},
		{"missing animal", func(in *CreateInput) { in.AnimalType = "" }, "animalType", "Please select a valid animal type"},
		{"missing owner", func(in *CreateInput) { in.OwnerName = "" }, "ownerName", "Owner name is required"},
		{"long owner", func(in *CreateInput) { in.OwnerName = strings.Repeat("b", 101) }, "ownerName", "Owner name must be 100 characters or less"},
		{"missing dob", func(in *CreateInput) { in.DateOfBirth = "" }, "dateOfBirth", "Date of birth is required"},
		{"bad dob", func(in *CreateInput) { in.DateOfBirth = "15/03/2020" }, "dateOfBirth", "Date of birth must be a valid date (YYYY-MM-DD)"},
		{"impossible dob", func(in *CreateInput) { in.DateOfBirth = "2020-02-30" }, "dateOfBirth", "Date of birth must be a valid date (YYYY-MM-DD)"},
		{"future dob", func(in *CreateInput) { in.DateOfBirth = "2024-06-16" }, "dateOfBirth", "Date of birth cannot be in the future"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)

			_, err := ValidateCreate(in, today)
			require.Error(t, err)
			ve, ok := validate.AsErrors(err)
			require.True(t, ok)
			assert.Equal(t, tc.msg, err.Error())
			assert.True(t, ve.Has(tc.field))
		})
	}
}

func TestValidateCreate_BoundaryLengthsAndToday(t *testing.T) {
	in := validInput()
	in.Name = strings.Repeat("a", 50)
	in.OwnerName = strings.Repeat("b", 100)
	in.DateOfBirth = "2024-06-15"

	_, err := ValidateCreate(in, today)
	assert.NoError(t, err)
}

func TestValidateCreate_KeepsAllErrors(t *testing.T) {
	_, err := ValidateCreate(CreateInput{}, today)
	ve, ok := validate.AsErrors(err)
	require.True(t, ok)
	assert.Equal(t, "Pet name is required", err.Error())
	assert.Len(t, ve.All(), 4)
}
