package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-records/internal/domain/records"
)

type RecordsRepo struct {
	db *sql.DB
}

func NewRecordsRepo(db *sql.DB) *RecordsRepo {
	return &RecordsRepo{db: db}
}

var _ records.Repository = (*RecordsRepo)(nil)

func (r *RecordsRepo) Create(ctx context.Context, petID int64, p records.Payload) (int64, error) {
	data, err := records.EncodePayload(p)
	if err != nil {
		return 0, err
	}

	var id int64
	err = r.db.QueryRowContext(ctx, `
		INSERT INTO medical_records (pet_id, record_type, data)
		VALUES ($1, $2, $3::text::jsonb)
		RETURNING id
	`, petID, string(p.RecordType()), string(data)).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert medical record: %w", err)
	}
	return id, nil
}

func (r *RecordsRepo) GetByID(ctx context.Context, id int64) (records.MedicalRecord, error) {
	rec, err := scanRecord(r.db.QueryRowContext(ctx, `
		SELECT id, pet_id, record_type, data::text, created_at
		FROM medical_records
		WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return records.MedicalRecord{}, records.ErrNotFound
		}
		return records.MedicalRecord{}, fmt.Errorf("get medical record %d: %w", id, err)
	}
	return rec, nil
}

func (r *RecordsRepo) ListByPet(ctx context.Context, petID int64, filter records.ListFilter) ([]records.MedicalRecord, error) {
	sb := strings.Builder{}
	sb.WriteString(`
		SELECT id, pet_id, record_type, data::text, created_at
		FROM medical_records
		WHERE pet_id = $1
	`)
	args := []any{petID}

	if filter.Type != "" {
		sb.WriteString(` AND record_type = $2`)
		args = append(args, string(filter.Type))
	}
	sb.WriteString(` ORDER BY created_at DESC, id DESC`)

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list medical records: %w", err)
	}
	defer rows.Close()

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

func scanRecord(sc scanner) (records.MedicalRecord, error) {
	var rec records.MedicalRecord
	var typ, data string
	var createdAt time.Time
	if err := sc.Scan(&rec.ID, &rec.PetID, &typ, &data, &createdAt); err != nil {
		return records.MedicalRecord{}, err
	}

	rec.Type = records.RecordType(typ)
	rec.CreatedAt = createdAt.UTC()

	p, err := records.DecodePayload(rec.Type, []byte(data))
	if err != nil {
		return records.MedicalRecord{}, fmt.Errorf("record %d: %w", rec.ID, err)
	}
	rec.Payload = p
	return rec, nil
}
