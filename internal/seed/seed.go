// Package seed carga un set de datos de ejemplo a través de los services,
// así pasa por las mismas validaciones que la API.
package seed

import (
	"context"
	"errors"
	"fmt"

	"pet-records/internal/domain/pets"
	"pet-records/internal/domain/records"
	"pet-records/internal/platform/logger"
)

var ErrNotEmpty = errors.New("store already has pets (use --force to seed anyway)")

type Summary struct {
	Pets      int
	Vaccines  int
	Allergies int
}

// Run inserta el dataset. Sin force, se niega si ya hay mascotas.
func Run(ctx context.Context, petsSvc *pets.Service, recordsSvc *records.Service, force bool, log logger.Logger) (Summary, error) {
	if log == nil {
		log = logger.NewNop()
	}

	st, err := petsSvc.Stats(ctx)
	if err != nil {
		return Summary{}, err
	}
	if st.TotalPets > 0 && !force {
		return Summary{}, ErrNotEmpty
	}

	var sum Summary
	for _, ps := range dataset {
		p, err := petsSvc.Create(ctx, ps.pet)
		if err != nil {
			return sum, fmt.Errorf("seed pet %q: %w", ps.pet.Name, err)
		}
		sum.Pets++

		for _, v := range ps.vaccines {
			if _, err := recordsSvc.AddVaccine(ctx, p.ID, v); err != nil {
				return sum, fmt.Errorf("seed vaccine %q for %q: %w", v.VaccineName, p.Name, err)
			}
			sum.Vaccines++
		}
		for _, a := range ps.allergies {
			if _, err := recordsSvc.AddAllergy(ctx, p.ID, a); err != nil {
				return sum, fmt.Errorf("seed allergy %q for %q: %w", a.AllergyName, p.Name, err)
			}
			sum.Allergies++
		}

		log.Debug("seeded pet", map[string]any{"pet_id": p.ID, "name": p.Name})
	}

	log.Info("seed complete", map[string]any{
		"pets":      sum.Pets,
		"vaccines":  sum.Vaccines,
		"allergies": sum.Allergies,
	})
	return sum, nil
}
