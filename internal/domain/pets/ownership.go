package pets

import (
	"context"
	"errors"
	"time"
)

// DateOfBirth implementa records.PetLookup (records no puede importar pets).
// Devuelve el error de storage sin convertir: el fault lo arma quien llama.
func (s *Service) DateOfBirth(ctx context.Context, petID int64) (time.Time, bool, error) {
	p, err := s.repo.GetByID(ctx, petID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, err
	}
	return p.DateOfBirth, true, nil
}
