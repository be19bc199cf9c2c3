package records

import (
	"context"
	"errors"
	"time"

	"pet-records/internal/platform/fault"
	"pet-records/internal/platform/logger"
	"pet-records/internal/platform/metrics"
	"pet-records/internal/platform/validate"
)

var (
	ErrPetNotFound = errors.New("Pet not found")
	ErrNotFound    = errors.New("record not found")
)

type Service struct {
	repo Repository
	pets PetLookup
	log  logger.Logger
	now  func() time.Time
}

func NewService(repo Repository, pets PetLookup, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{
		repo: repo,
		pets: pets,
		log:  log.With(map[string]any{"component": "records"}),
		now:  time.Now,
	}
}

// SetClock reemplaza el reloj usado para "hoy" en las validaciones de fecha.
func (s *Service) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// AddVaccine valida en dos fases: sintáctica (pura) y semántica
// (administeredDate >= fecha de nacimiento de la mascota).
func (s *Service) AddVaccine(ctx context.Context, petID int64, in VaccineInput) (MedicalRecord, error) {
	const op = "records.AddVaccine"

	payload, err := ValidateVaccine(in, s.now())
	if err != nil {
		return MedicalRecord{}, s.rejected(op, err)
	}

	dob, found, err := s.pets.DateOfBirth(ctx, petID)
	if err != nil {
		return MedicalRecord{}, s.fault(op, err)
	}
	if !found {
		return MedicalRecord{}, ErrPetNotFound
	}

	administered, _ := time.Parse(DateLayout, payload.AdministeredDate)
	if administered.Before(dob) {
		return MedicalRecord{}, s.rejected(op, validate.Field("administeredDate", "Vaccine date cannot be before the pet's birth date"))
	}

	return s.insert(ctx, op, petID, payload)
}

func (s *Service) AddAllergy(ctx context.Context, petID int64, in AllergyInput) (MedicalRecord, error) {
	const op = "records.AddAllergy"

	payload, err := ValidateAllergy(in)
	if err != nil {
		return MedicalRecord{}, s.rejected(op, err)
	}

	if _, found, err := s.pets.DateOfBirth(ctx, petID); err != nil {
		return MedicalRecord{}, s.fault(op, err)
	} else if !found {
		return MedicalRecord{}, ErrPetNotFound
	}

	return s.insert(ctx, op, petID, payload)
}

// ListForPet: typeFilter vacío = todos. Se compara exacto; un tipo
// desconocido es error de validación.
func (s *Service) ListForPet(ctx context.Context, petID int64, typeFilter string) ([]MedicalRecord, error) {
	const op = "records.ListForPet"

	filter := ListFilter{}
	if typeFilter != "" {
		t := RecordType(typeFilter)
		if !t.Known() {
			return nil, s.rejected(op, validate.Field("type", "Record type must be one of vaccine, allergy, lab_result, vital"))
		}
		filter.Type = t
	}

	if _, found, err := s.pets.DateOfBirth(ctx, petID); err != nil {
		return nil, s.fault(op, err)
	} else if !found {
		return nil, ErrPetNotFound
	}

	items, err := s.repo.ListByPet(ctx, petID, filter)
	if err != nil {
		return nil, s.fault(op, err)
	}
	return items, nil
}

func (s *Service) insert(ctx context.Context, op string, petID int64, p Payload) (MedicalRecord, error) {
	id, err := s.repo.Create(ctx, petID, p)
	if err != nil {
		return MedicalRecord{}, s.fault(op, err)
	}

	// Readback: si no está, es una inconsistencia interna.
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return MedicalRecord{}, s.fault(op, errors.New("record missing after insert"))
		}
		return MedicalRecord{}, s.fault(op, err)
	}

	metrics.RecordsCreated.WithLabelValues(string(rec.Type)).Inc()
	s.log.Info("medical record created", map[string]any{
		"record_id":   rec.ID,
		"pet_id":      rec.PetID,
		"record_type": string(rec.Type),
	})
	return rec, nil
}

func (s *Service) rejected(op string, err error) error {
	metrics.ValidationFailures.WithLabelValues(op).Inc()
	s.log.Debug("validation failed", map[string]any{"op": op, "reason": err.Error()})
	return err
}

func (s *Service) fault(op string, err error) error {
	metrics.Faults.WithLabelValues(op).Inc()
	return fault.Wrap(s.log, op, err)
}
