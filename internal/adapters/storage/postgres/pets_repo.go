package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pet-records/internal/domain/pets"
	"pet-records/internal/domain/records"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

var _ pets.Repository = (*PetsRepo)(nil)

const petColumns = `id, name, animal_type, owner_name, date_of_birth, created_at, updated_at`

func (r *PetsRepo) Create(ctx context.Context, p pets.NewPet) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO pets (name, animal_type, owner_name, date_of_birth)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`,
		p.Name,
		string(p.AnimalType),
		p.OwnerName,
		p.DateOfBirth.Format(records.DateLayout),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert pet: %w", err)
	}
	return id, nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	p, err := scanPet(r.db.QueryRowContext(ctx, `SELECT `+petColumns+` FROM pets WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, fmt.Errorf("get pet %d: %w", id, err)
	}
	return p, nil
}

func (r *PetsRepo) List(ctx context.Context, ownerName string) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+petColumns+`
		FROM pets
		WHERE ($1 = '' OR owner_name = $1)
		ORDER BY created_at DESC, id DESC
	`, ownerName)
	if err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pet: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PetsRepo) ListWithRecordCounts(ctx context.Context, ownerName string) ([]pets.PetWithCounts, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			p.id, p.name, p.animal_type, p.owner_name, p.date_of_birth, p.created_at, p.updated_at,
			COUNT(mr.id) FILTER (WHERE mr.record_type = $1) AS vaccine_count,
			COUNT(mr.id) FILTER (WHERE mr.record_type = $2) AS allergy_count
		FROM pets p
		LEFT JOIN medical_records mr ON mr.pet_id = p.id
		WHERE ($3 = '' OR p.owner_name = $3)
		GROUP BY p.id
		ORDER BY p.created_at DESC, p.id DESC
	`, string(records.TypeVaccine), string(records.TypeAllergy), ownerName)
	if err != nil {
		return nil, fmt.Errorf("list pets with counts: %w", err)
	}
	defer rows.Close()

	out := make([]pets.PetWithCounts, 0)
	for rows.Next() {
		var c pets.RecordCounts
		p, err := scanPet(rows, &c.Vaccines, &c.Allergies)
		if err != nil {
			return nil, fmt.Errorf("scan pet with counts: %w", err)
		}
		out = append(out, pets.PetWithCounts{Pet: p, Counts: c})
	}
	return out, rows.Err()
}

func (r *PetsRepo) Stats(ctx context.Context) (pets.Stats, error) {
	var st pets.Stats
	err := r.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM pets),
			(SELECT COUNT(*) FROM medical_records WHERE record_type = $1),
			(SELECT COUNT(*) FROM medical_records WHERE record_type = $2)
	`, string(records.TypeVaccine), string(records.TypeAllergy)).Scan(
		&st.TotalPets,
		&st.TotalVaccines,
		&st.TotalAllergies,
	)
	if err != nil {
		return pets.Stats{}, fmt.Errorf("stats: %w", err)
	}
	return st, nil
}

type scanner interface {
	Scan(dest ...any) error
}

// date_of_birth es DATE: pgx lo mapea a time.Time a medianoche UTC.
func scanPet(sc scanner, extra ...any) (pets.Pet, error) {
	var p pets.Pet
	var animal string
	dest := append([]any{&p.ID, &p.Name, &animal, &p.OwnerName, &p.DateOfBirth, &p.CreatedAt, &p.UpdatedAt}, extra...)
	if err := sc.Scan(dest...); err != nil {
		return pets.Pet{}, err
	}
	p.AnimalType = pets.AnimalType(animal)
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return p, nil
}
