package pets

import (
	"context"
	"errors"
	"time"

	"pet-records/internal/domain/records"
	"pet-records/internal/platform/fault"
	"pet-records/internal/platform/logger"
	"pet-records/internal/platform/metrics"
)

var (
	ErrNotFound = errors.New("Pet not found")
)

type Service struct {
	repo    Repository
	records RecordLister
	log     logger.Logger
	now     func() time.Time
}

func NewService(repo Repository, recs RecordLister, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{
		repo:    repo,
		records: recs,
		log:     log.With(map[string]any{"component": "pets"}),
		now:     time.Now,
	}
}

// SetClock reemplaza el reloj usado para "hoy" en las validaciones de fecha.
func (s *Service) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	const op = "pets.Create"

	np, err := ValidateCreate(in, s.now())
	if err != nil {
		metrics.ValidationFailures.WithLabelValues(op).Inc()
		s.log.Debug("validation failed", map[string]any{"op": op, "reason": err.Error()})
		return Pet{}, err
	}

	id, err := s.repo.Create(ctx, np)
	if err != nil {
		return Pet{}, s.fault(op, err)
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Pet{}, s.fault(op, errors.New("pet missing after insert"))
		}
		return Pet{}, s.fault(op, err)
	}

	metrics.PetsCreated.Inc()
	s.log.Info("pet created", map[string]any{"pet_id": p.ID, "animal_type": string(p.AnimalType)})
	return p, nil
}

func (s *Service) List(ctx context.Context, ownerName string) ([]Pet, error) {
	items, err := s.repo.List(ctx, ownerName)
	if err != nil {
		return nil, s.fault("pets.List", err)
	}
	return items, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Pet, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Pet{}, ErrNotFound
		}
		return Pet{}, s.fault("pets.GetByID", err)
	}
	return p, nil
}

// GetWithRecords: un payload corrupto en cualquier registro hace fallar todo.
func (s *Service) GetWithRecords(ctx context.Context, id int64) (PetWithRecords, error) {
	const op = "pets.GetWithRecords"

	p, err := s.GetByID(ctx, id)
	if err != nil {
		return PetWithRecords{}, err
	}

	recs, err := s.records.ListByPet(ctx, id, records.ListFilter{})
	if err != nil {
		return PetWithRecords{}, s.fault(op, err)
	}
	return PetWithRecords{Pet: p, Records: recs}, nil
}

func (s *Service) ListWithRecordCounts(ctx context.Context, ownerName string) ([]PetWithCounts, error) {
	items, err := s.repo.ListWithRecordCounts(ctx, ownerName)
	if err != nil {
		return nil, s.fault("pets.ListWithRecordCounts", err)
	}
	return items, nil
}

func (s *Service) Stats(ctx context.Context) (Stats, error) {
	st, err := s.repo.Stats(ctx)
	if err != nil {
		return Stats{}, s.fault("pets.Stats", err)
	}
	return st, nil
}

func (s *Service) fault(op string, err error) error {
	metrics.Faults.WithLabelValues(op).Inc()
	return fault.Wrap(s.log, op, err)
}
