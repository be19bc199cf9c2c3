package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pet-records/internal/domain/records"
)

type RecordsRepo struct {
	h *Handle
}

func NewRecordsRepo(h *Handle) *RecordsRepo {
	return &RecordsRepo{h: h}
}

var _ records.Repository = (*RecordsRepo)(nil)

func (r *RecordsRepo) Create(ctx context.Context, petID int64, p records.Payload) (int64, error) {
	data, err := records.EncodePayload(p)
	if err != nil {
		return 0, err
	}

	db, err := r.h.Acquire(ctx)
	if err != nil {
		return 0, err
	}

	res, err := db.ExecContext(ctx, `
		INSERT INTO medical_records (pet_id, record_type, data)
		VALUES (?, ?, ?)
	`, petID, string(p.RecordType()), string(data))
	if err != nil {
		return 0, fmt.Errorf("insert medical record: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert medical record id: %w", err)
	}
	return id, nil
}

func (r *RecordsRepo) GetByID(ctx context.Context, id int64) (records.MedicalRecord, error) {
	db, err := r.h.Acquire(ctx)
	if err != nil {
		return records.MedicalRecord{}, err
	}

	rec, err := scanRecord(db.QueryRowContext(ctx, `SELECT `+recordColumns+` FROM medical_records WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return records.MedicalRecord{}, records.ErrNotFound
		}
		return records.MedicalRecord{}, fmt.Errorf("get medical record %d: %w", id, err)
	}
	return rec, nil
}

func (r *RecordsRepo) ListByPet(ctx context.Context, petID int64, filter records.ListFilter) ([]records.MedicalRecord, error) {
	db, err := r.h.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT `+recordColumns+`
		FROM medical_records
		WHERE pet_id = ? AND (? = '' OR record_type = ?)
		ORDER BY created_at DESC, id DESC
	`, petID, string(filter.Type), string(filter.Type))
	if err != nil {
		return nil, fmt.Errorf("list medical records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]records.MedicalRecord, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
