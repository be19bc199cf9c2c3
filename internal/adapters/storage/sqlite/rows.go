package sqlite

import (
	"fmt"
	"time"

	"pet-records/internal/domain/pets"
	"pet-records/internal/domain/records"
)

// scanner lo cumplen *sql.Row y *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const petColumns = `id, name, animal_type, owner_name, date_of_birth, created_at, updated_at`

func scanPet(sc scanner, extra ...any) (pets.Pet, error) {
	var p pets.Pet
	var animal, dob, createdAt, updatedAt string
	dest := append([]any{&p.ID, &p.Name, &animal, &p.OwnerName, &dob, &createdAt, &updatedAt}, extra...)
	if err := sc.Scan(dest...); err != nil {
		return pets.Pet{}, err
	}
	return rowToPet(p, animal, dob, createdAt, updatedAt)
}

func rowToPet(p pets.Pet, animal, dob, createdAt, updatedAt string) (pets.Pet, error) {
	var err error
	p.AnimalType = pets.AnimalType(animal)
	if p.DateOfBirth, err = time.Parse(records.DateLayout, dob); err != nil {
		return pets.Pet{}, fmt.Errorf("pet %d date_of_birth: %w", p.ID, err)
	}
	if p.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return pets.Pet{}, fmt.Errorf("pet %d created_at: %w", p.ID, err)
	}
	if p.UpdatedAt, err = parseTimestamp(updatedAt); err != nil {
		return pets.Pet{}, fmt.Errorf("pet %d updated_at: %w", p.ID, err)
	}
	return p, nil
}

const recordColumns = `id, pet_id, record_type, data, created_at`

func scanRecord(sc scanner) (records.MedicalRecord, error) {
	var (
		rec       records.MedicalRecord
		typ       string
		data      []byte
		createdAt string
	)
	if err := sc.Scan(&rec.ID, &rec.PetID, &typ, &data, &createdAt); err != nil {
		return records.MedicalRecord{}, err
	}
	return rowToRecord(rec, typ, data, createdAt)
}

// rowToRecord decodifica el payload según record_type; un blob que no
// corresponde devuelve records.ErrMalformedPayload.
func rowToRecord(rec records.MedicalRecord, typ string, data []byte, createdAt string) (records.MedicalRecord, error) {
	rec.Type = records.RecordType(typ)

	p, err := records.DecodePayload(rec.Type, data)
	if err != nil {
		return records.MedicalRecord{}, fmt.Errorf("record %d: %w", rec.ID, err)
	}
	rec.Payload = p

	if rec.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return records.MedicalRecord{}, fmt.Errorf("record %d created_at: %w", rec.ID, err)
	}
	return rec, nil
}

// parseTimestamp acepta el default del schema (ISO-8601 con milisegundos)
// y el formato de CURRENT_TIMESTAMP.
func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02 15:04:05", s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
