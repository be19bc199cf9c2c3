package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"pet-records/internal/apiclient"
	"pet-records/internal/domain/pets"
	"pet-records/internal/domain/records"
	"pet-records/internal/seed"
)

func newInitCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Crea el schema si no existe",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if g.server != "" {
				return errRemoteUnsupported
			}
			l, err := openLocal(cmd.Context(), g)
			if err != nil {
				return err
			}
			defer l.Close()

			fmt.Fprintf(cmd.OutOrStdout(), "storage ready (%s)\n", l.backend.Driver)
			return nil
		},
	}
}

func newSeedCmd(g *globalFlags) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Carga mascotas y registros de ejemplo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if g.server != "" {
				return errRemoteUnsupported
			}
			l, err := openLocal(cmd.Context(), g)
			if err != nil {
				return err
			}
			defer l.Close()

			sum, err := seed.Run(cmd.Context(), l.pets, l.records, force, l.log)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d pets, %d vaccines, %d allergies\n", sum.Pets, sum.Vaccines, sum.Allergies)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "sembrar aunque ya haya mascotas")
	return cmd
}

func newPetsCmd(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pets",
		Short: "Consultas de mascotas",
	}
	cmd.AddCommand(newPetsListCmd(g), newPetsCountsCmd(g))
	return cmd
}

func newPetsListCmd(g *globalFlags) *cobra.Command {
	var owner string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Lista mascotas (filtra por dueño exacto con --owner)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			var rows []apiclient.Pet

			if g.server != "" {
				c, err := openRemote(g)
				if err != nil {
					return err
				}
				if rows, err = c.ListPets(ctx, owner); err != nil {
					return err
				}
			} else {
				l, err := openLocal(ctx, g)
				if err != nil {
					return err
				}
				defer l.Close()

				list, err := l.pets.List(ctx, owner)
				if err != nil {
					return err
				}
				for _, p := range list {
					rows = append(rows, fromPet(p))
				}
			}

			tw := newTable(cmd.OutOrStdout(), "ID\tNAME\tTYPE\tOWNER\tBORN")
			for _, p := range rows {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", p.ID, p.Name, p.AnimalType, p.OwnerName, p.DateOfBirth)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&owner, "owner", "", "nombre del dueño")
	return cmd
}

func newPetsCountsCmd(g *globalFlags) *cobra.Command {
	var owner string
	cmd := &cobra.Command{
		Use:   "counts",
		Short: "Lista mascotas con cantidad de vacunas y alergias",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			var rows []apiclient.PetWithCounts

			if g.server != "" {
				c, err := openRemote(g)
				if err != nil {
					return err
				}
				if rows, err = c.ListWithCounts(ctx, owner); err != nil {
					return err
				}
			} else {
				l, err := openLocal(ctx, g)
				if err != nil {
					return err
				}
				defer l.Close()

				list, err := l.pets.ListWithRecordCounts(ctx, owner)
				if err != nil {
					return err
				}
				for _, p := range list {
					rows = append(rows, apiclient.PetWithCounts{
						Pet:          fromPet(p.Pet),
						VaccineCount: p.Counts.Vaccines,
						AllergyCount: p.Counts.Allergies,
					})
				}
			}

			tw := newTable(cmd.OutOrStdout(), "ID\tNAME\tOWNER\tVACCINES\tALLERGIES")
			for _, p := range rows {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\n", p.ID, p.Name, p.OwnerName, p.VaccineCount, p.AllergyCount)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&owner, "owner", "", "nombre del dueño")
	return cmd
}

func newStatsCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Totales de mascotas, vacunas y alergias",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			var st apiclient.Stats

			if g.server != "" {
				c, err := openRemote(g)
				if err != nil {
					return err
				}
				if st, err = c.Stats(ctx); err != nil {
					return err
				}
			} else {
				l, err := openLocal(ctx, g)
				if err != nil {
					return err
				}
				defer l.Close()

				s, err := l.pets.Stats(ctx)
				if err != nil {
					return err
				}
				st = apiclient.Stats{TotalPets: s.TotalPets, TotalVaccines: s.TotalVaccines, TotalAllergies: s.TotalAllergies}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "pets:      %d\nvaccines:  %d\nallergies: %d\n", st.TotalPets, st.TotalVaccines, st.TotalAllergies)
			return nil
		},
	}
}

func fromPet(p pets.Pet) apiclient.Pet {
	return apiclient.Pet{
		ID:          p.ID,
		Name:        p.Name,
		AnimalType:  string(p.AnimalType),
		OwnerName:   p.OwnerName,
		DateOfBirth: p.DateOfBirth.Format(records.DateLayout),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func newTable(w io.Writer, header string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, header)
	return tw
}
