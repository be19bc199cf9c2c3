package memory

import (
	"context"
	"sort"

	"pet-records/internal/domain/pets"
	"pet-records/internal/domain/records"
)

type petRepo struct {
	s *Store
}

func NewPetRepo(s *Store) pets.Repository {
	return &petRepo{s: s}
}

func (r *petRepo) Create(ctx context.Context, np pets.NewPet) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextPetID++
	now := r.s.now().UTC()
	p := pets.Pet{
		ID:          r.s.nextPetID,
		Name:        np.Name,
		AnimalType:  np.AnimalType,
		OwnerName:   np.OwnerName,
		DateOfBirth: np.DateOfBirth,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.s.pets[p.ID] = p
	return p.ID, nil
}

func (r *petRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.pets[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

func (r *petRepo) List(ctx context.Context, ownerName string) ([]pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.list(ownerName), nil
}

func (r *petRepo) ListWithRecordCounts(ctx context.Context, ownerName string) ([]pets.PetWithCounts, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	counts := make(map[int64]pets.RecordCounts)
	for _, rec := range r.s.records {
		c := counts[rec.petID]
		switch rec.typ {
		case records.TypeVaccine:
			c.Vaccines++
		case records.TypeAllergy:
			c.Allergies++
		}
		counts[rec.petID] = c
	}

	items := r.list(ownerName)
	out := make([]pets.PetWithCounts, 0, len(items))
	for _, p := range items {
		out = append(out, pets.PetWithCounts{Pet: p, Counts: counts[p.ID]})
	}
	return out, nil
}

func (r *petRepo) Stats(ctx context.Context) (pets.Stats, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	st := pets.Stats{TotalPets: len(r.s.pets)}
	for _, rec := range r.s.records {
		switch rec.typ {
		case records.TypeVaccine:
			st.TotalVaccines++
		case records.TypeAllergy:
			st.TotalAllergies++
		}
	}
	return st, nil
}

// list asume el lock tomado.
func (r *petRepo) list(ownerName string) []pets.Pet {
	out := make([]pets.Pet, 0)
	for _, p := range r.s.pets {
		if ownerName == "" || p.OwnerName == ownerName {
			out = append(out, p)
		}
	}

	// Orden created_at desc, id desc (igual que SQL)
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}
