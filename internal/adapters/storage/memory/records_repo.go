package memory

import (
	"context"
	"fmt"
	"sort"

	"pet-records/internal/domain/records"
)

type recordRepo struct {
	s *Store
}

func NewRecordRepo(s *Store) records.Repository {
	return &recordRepo{s: s}
}

func (r *recordRepo) Create(ctx context.Context, petID int64, p records.Payload) (int64, error) {
	data, err := records.EncodePayload(p)
	if err != nil {
		return 0, err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.pets[petID]; !ok {
		return 0, fmt.Errorf("insert medical record: %w", ErrForeignKey)
	}

	r.s.nextRecordID++
	rec := storedRecord{
		id:        r.s.nextRecordID,
		petID:     petID,
		typ:       p.RecordType(),
		data:      data,
		createdAt: r.s.now().UTC(),
	}
	r.s.records[rec.id] = rec
	return rec.id, nil
}

func (r *recordRepo) GetByID(ctx context.Context, id int64) (records.MedicalRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rec, ok := r.s.records[id]
	if !ok {
		return records.MedicalRecord{}, records.ErrNotFound
	}
	return decode(rec)
}

func (r *recordRepo) ListByPet(ctx context.Context, petID int64, filter records.ListFilter) ([]records.MedicalRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	matched := make([]storedRecord, 0)
	for _, rec := range r.s.records {
		if rec.petID != petID {
			continue
		}
		if filter.Type != "" && rec.typ != filter.Type {
			continue
		}
		matched = append(matched, rec)
	}

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].createdAt.Equal(matched[j].createdAt) {
			return matched[i].createdAt.After(matched[j].createdAt)
		}
		return matched[i].id > matched[j].id
	})

	out := make([]records.MedicalRecord, 0, len(matched))
	for _, rec := range matched {
		mr, err := decode(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, mr)
	}
	return out, nil
}

func decode(rec storedRecord) (records.MedicalRecord, error) {
	p, err := records.DecodePayload(rec.typ, rec.data)
	if err != nil {
		return records.MedicalRecord{}, fmt.Errorf("record %d: %w", rec.id, err)
	}
	return records.MedicalRecord{
		ID:        rec.id,
		PetID:     rec.petID,
		Type:      rec.typ,
		Payload:   p,
		CreatedAt: rec.createdAt,
	}, nil
}
