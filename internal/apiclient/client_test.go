package apiclient_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-records/internal/adapters/storage"
	"pet-records/internal/apiclient"
	"pet-records/internal/domain/pets"
	"pet-records/internal/domain/records"
	"pet-records/internal/platform/httpclient"
	"pet-records/internal/router"
)

func TestClient_AgainstRouter(t *testing.T) {
	ctx := context.Background()
	b, err := storage.OpenSQLite(ctx, ":memory:", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })

	petsSvc := pets.NewService(b.Pets, b.Records, nil)
	recsSvc := records.NewService(b.Records, petsSvc, nil)

	rex, err := petsSvc.Create(ctx, pets.CreateInput{Name: "Rex", AnimalType: "dog", OwnerName: "Ann", DateOfBirth: "2020-01-01"})
	require.NoError(t, err)
	_, err = petsSvc.Create(ctx, pets.CreateInput{Name: "Tom", AnimalType: "cat", OwnerName: "Bob", DateOfBirth: "2019-05-05"})
	require.NoError(t, err)
	_, err = recsSvc.AddVaccine(ctx, rex.ID, records.VaccineInput{VaccineName: "Rabies", AdministeredDate: "2021-01-01"})
	require.NoError(t, err)

	ts := httptest.NewServer(router.NewRouter(router.Options{Pets: b.Pets, Records: b.Records, DB: b.DB}))
	t.Cleanup(ts.Close)

	c, err := apiclient.New(ts.URL, 0)
	require.NoError(t, err)

	all, err := c.ListPets(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	anns, err := c.ListWithCounts(ctx, "Ann")
	require.NoError(t, err)
	require.Len(t, anns, 1)
	assert.Equal(t, "Rex", anns[0].Name)
	assert.Equal(t, "2020-01-01", anns[0].DateOfBirth)
	assert.Equal(t, 1, anns[0].VaccineCount)
	assert.Equal(t, 0, anns[0].AllergyCount)

	none, err := c.ListPets(ctx, "Nobody")
	require.NoError(t, err)
	assert.Empty(t, none)

	st, err := c.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, apiclient.Stats{TotalPets: 2, TotalVaccines: 1, TotalAllergies: 0}, st)

	_, err = c.GetPet(ctx, 9999)
	assert.True(t, httpclient.IsNotFound(err))
}
