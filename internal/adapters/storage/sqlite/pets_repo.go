package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pet-records/internal/domain/pets"
	"pet-records/internal/domain/records"
)

type PetsRepo struct {
	h *Handle
}

func NewPetsRepo(h *Handle) *PetsRepo {
	return &PetsRepo{h: h}
}

var _ pets.Repository = (*PetsRepo)(nil)

func (r *PetsRepo) Create(ctx context.Context, p pets.NewPet) (int64, error) {
	db, err := r.h.Acquire(ctx)
	if err != nil {
		return 0, err
	}

	res, err := db.ExecContext(ctx, `
		INSERT INTO pets (name, animal_type, owner_name, date_of_birth)
		VALUES (?, ?, ?, ?)
	`,
		p.Name,
		string(p.AnimalType),
		p.OwnerName,
		p.DateOfBirth.Format(records.DateLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("insert pet: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert pet id: %w", err)
	}
	return id, nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	db, err := r.h.Acquire(ctx)
	if err != nil {
		return pets.Pet{}, err
	}

	p, err := scanPet(db.QueryRowContext(ctx, `SELECT `+petColumns+` FROM pets WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, fmt.Errorf("get pet %d: %w", id, err)
	}
	return p, nil
}

func (r *PetsRepo) List(ctx context.Context, ownerName string) ([]pets.Pet, error) {
	db, err := r.h.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT `+petColumns+`
		FROM pets
		WHERE (? = '' OR owner_name = ?)
		ORDER BY created_at DESC, id DESC
	`, ownerName, ownerName)
	if err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}
	defer func() { _ = rows.Close() }()

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

// ListWithRecordCounts resuelve los conteos en una sola query.
// lab_result y vital no suman en ningún bucket.
func (r *PetsRepo) ListWithRecordCounts(ctx context.Context, ownerName string) ([]pets.PetWithCounts, error) {
	db, err := r.h.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT
			p.id, p.name, p.animal_type, p.owner_name, p.date_of_birth, p.created_at, p.updated_at,
			COUNT(CASE WHEN mr.record_type = ? THEN 1 END) AS vaccine_count,
			COUNT(CASE WHEN mr.record_type = ? THEN 1 END) AS allergy_count
		FROM pets p
		LEFT JOIN medical_records mr ON mr.pet_id = p.id
		WHERE (? = '' OR p.owner_name = ?)
		GROUP BY p.id
		ORDER BY p.created_at DESC, p.id DESC
	`, string(records.TypeVaccine), string(records.TypeAllergy), ownerName, ownerName)
	if err != nil {
		return nil, fmt.Errorf("list pets with counts: %w", err)
	}
	defer func() { _ = rows.Close() }()

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
	db, err := r.h.Acquire(ctx)
	if err != nil {
		return pets.Stats{}, err
	}

	var st pets.Stats
	err = db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM pets),
			(SELECT COUNT(*) FROM medical_records WHERE record_type = ?),
			(SELECT COUNT(*) FROM medical_records WHERE record_type = ?)
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
