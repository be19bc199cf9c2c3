package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-records/internal/domain/pets"
	"pet-records/internal/domain/records"
	"pet-records/internal/platform/logger"
)

func newTestHandle(t *testing.T) *Handle {
	t.Helper()
	h := NewHandle(MemoryPath, logger.NewNop())
	t.Cleanup(func() { _ = h.Close() })
	return h
}

func mustPet(t *testing.T, repo *PetsRepo, name, owner string) int64 {
	t.Helper()
	id, err := repo.Create(context.Background(), pets.NewPet{
		Name:        name,
		AnimalType:  pets.AnimalDog,
		OwnerName:   owner,
		DateOfBirth: time.Date(2020, 3, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return id
}

func TestHandle_AcquireIsIdempotent(t *testing.T) {
	h := newTestHandle(t)
	ctx := context.Background()

	db1, err := h.Acquire(ctx)
	require.NoError(t, err)
	db2, err := h.Acquire(ctx)
	require.NoError(t, err)
	assert.Same(t, db1, db2)
}

func TestHandle_AcquireAfterClose(t *testing.T) {
	h := NewHandle(MemoryPath, nil)
	_, err := h.Acquire(context.Background())
	require.NoError(t, err)

	require.NoError(t, h.Close())
	require.NoError(t, h.Close())

	_, err = h.Acquire(context.Background())
	assert.ErrorIs(t, err, ErrClosed)
}

func TestBootstrap_Idempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "pets.db")

	h := NewHandle(path, nil)
	db, err := h.Acquire(ctx)
	require.NoError(t, err)

	created, err := Bootstrap(ctx, db)
	require.NoError(t, err)
	assert.False(t, created, "schema already applied by Acquire")

	id := mustPet(t, NewPetsRepo(h), "Rex", "Ann")
	require.NoError(t, h.Close())

	// Reabrir el mismo archivo conserva los datos.
	h2 := NewHandle(path, nil)
	t.Cleanup(func() { _ = h2.Close() })
	p, err := NewPetsRepo(h2).GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Rex", p.Name)
}

func TestPetsRepo_CreateAndGet(t *testing.T) {
	h := newTestHandle(t)
	repo := NewPetsRepo(h)
	ctx := context.Background()

	id := mustPet(t, repo, "Rex", "Ann")
	p, err := repo.GetByID(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, id, p.ID)
	assert.Equal(t, "Rex", p.Name)
	assert.Equal(t, pets.AnimalDog, p.AnimalType)
	assert.Equal(t, "Ann", p.OwnerName)
	assert.Equal(t, "2020-03-15", p.DateOfBirth.Format(records.DateLayout))
	assert.False(t, p.CreatedAt.IsZero())
	assert.False(t, p.UpdatedAt.IsZero())
}

func TestPetsRepo_GetMissing(t *testing.T) {
	repo := NewPetsRepo(newTestHandle(t))
	_, err := repo.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, pets.ErrNotFound)
}

func TestPetsRepo_ListOrderAndOwnerFilter(t *testing.T) {
	repo := NewPetsRepo(newTestHandle(t))
	ctx := context.Background()

	a := mustPet(t, repo, "Rex", "Ann")
	b := mustPet(t, repo, "Milo", "Bob")
	c := mustPet(t, repo, "Luna", "Ann")

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int64{c, b, a}, []int64{all[0].ID, all[1].ID, all[2].ID})

	ann, err := repo.List(ctx, "Ann")
	require.NoError(t, err)
	require.Len(t, ann, 2)
	assert.Equal(t, c, ann[0].ID)
	assert.Equal(t, a, ann[1].ID)

	none, err := repo.List(ctx, "Nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
	assert.NotNil(t, none)
}

func TestRecordsRepo_CreateGetList(t *testing.T) {
	h := newTestHandle(t)
	petsRepo := NewPetsRepo(h)
	repo := NewRecordsRepo(h)
	ctx := context.Background()

	petID := mustPet(t, petsRepo, "Rex", "Ann")

	vID, err := repo.Create(ctx, petID, records.VaccinePayload{VaccineName: "Rabies", AdministeredDate: "2021-01-10"})
	require.NoError(t, err)
	aID, err := repo.Create(ctx, petID, records.AllergyPayload{
		AllergyName: "Pollen",
		Reactions:   []string{"Sneezing", "Itching"},
		Severity:    records.SeverityMild,
	})
	require.NoError(t, err)

	v, err := repo.GetByID(ctx, vID)
	require.NoError(t, err)
	vp, ok := v.Vaccine()
	require.True(t, ok)
	assert.Equal(t, "Rabies", vp.VaccineName)
	assert.Equal(t, petID, v.PetID)

	all, err := repo.ListByPet(ctx, petID, records.ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, aID, all[0].ID, "newest first")
	assert.Equal(t, vID, all[1].ID)

	allergies, err := repo.ListByPet(ctx, petID, records.ListFilter{Type: records.TypeAllergy})
	require.NoError(t, err)
	require.Len(t, allergies, 1)
	ap, ok := allergies[0].Allergy()
	require.True(t, ok)
	assert.Equal(t, []string{"Sneezing", "Itching"}, ap.Reactions)

	_, err = repo.GetByID(ctx, 12345)
	assert.ErrorIs(t, err, records.ErrNotFound)
}

func TestRecordsRepo_ForeignKeyEnforced(t *testing.T) {
	repo := NewRecordsRepo(newTestHandle(t))
	_, err := repo.Create(context.Background(), 42, records.VaccinePayload{VaccineName: "Rabies", AdministeredDate: "2021-01-10"})
	assert.Error(t, err)
}

func TestRecordsRepo_MalformedPayloadFailsRead(t *testing.T) {
	h := newTestHandle(t)
	repo := NewRecordsRepo(h)
	ctx := context.Background()
	petID := mustPet(t, NewPetsRepo(h), "Rex", "Ann")

	db, err := h.Acquire(ctx)
	require.NoError(t, err)
	res, err := db.ExecContext(ctx,
		`INSERT INTO medical_records (pet_id, record_type, data) VALUES (?, 'vaccine', '{"allergyName":"x"}')`, petID)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)

	_, err = repo.GetByID(ctx, id)
	assert.ErrorIs(t, err, records.ErrMalformedPayload)

	_, err = repo.ListByPet(ctx, petID, records.ListFilter{})
	assert.ErrorIs(t, err, records.ErrMalformedPayload)
}

func TestPetsRepo_CountsAndStats(t *testing.T) {
	h := newTestHandle(t)
	petsRepo := NewPetsRepo(h)
	repo := NewRecordsRepo(h)
	ctx := context.Background()

	rex := mustPet(t, petsRepo, "Rex", "Ann")
	milo := mustPet(t, petsRepo, "Milo", "Bob")

	for _, name := range []string{"Rabies", "Distemper"} {
		_, err := repo.Create(ctx, rex, records.VaccinePayload{VaccineName: name, AdministeredDate: "2021-01-10"})
		require.NoError(t, err)
	}
	_, err := repo.Create(ctx, rex, records.AllergyPayload{AllergyName: "Pollen", Reactions: []string{"Hives"}, Severity: records.SeveritySevere})
	require.NoError(t, err)

	// Un tipo declarado sin payload no cuenta en ningún bucket.
	db, err := h.Acquire(ctx)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO medical_records (pet_id, record_type, data) VALUES (?, 'vital', '{}')`, rex)
	require.NoError(t, err)

	items, err := petsRepo.ListWithRecordCounts(ctx, "")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, milo, items[0].Pet.ID)
	assert.Equal(t, pets.RecordCounts{}, items[0].Counts)
	assert.Equal(t, rex, items[1].Pet.ID)
	assert.Equal(t, pets.RecordCounts{Vaccines: 2, Allergies: 1}, items[1].Counts)

	onlyAnn, err := petsRepo.ListWithRecordCounts(ctx, "Ann")
	require.NoError(t, err)
	require.Len(t, onlyAnn, 1)

	st, err := petsRepo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, pets.Stats{TotalPets: 2, TotalVaccines: 2, TotalAllergies: 1}, st)
}

func TestPetsRepo_CascadeDelete(t *testing.T) {
	h := newTestHandle(t)
	ctx := context.Background()
	petID := mustPet(t, NewPetsRepo(h), "Rex", "Ann")
	repo := NewRecordsRepo(h)
	_, err := repo.Create(ctx, petID, records.VaccinePayload{VaccineName: "Rabies", AdministeredDate: "2021-01-10"})
	require.NoError(t, err)

	db, err := h.Acquire(ctx)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `DELETE FROM pets WHERE id = ?`, petID)
	require.NoError(t, err)

	items, err := repo.ListByPet(ctx, petID, records.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, items)
}
