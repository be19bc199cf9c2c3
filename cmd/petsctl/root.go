package main

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"pet-records/internal/adapters/storage"
	"pet-records/internal/apiclient"
	"pet-records/internal/config"
	"pet-records/internal/domain/pets"
	"pet-records/internal/domain/records"
	"pet-records/internal/platform/logger"
)

type globalFlags struct {
	server  string
	db      string
	timeout time.Duration
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:           "petsctl",
		Short:         "Operación de pet-records: schema, seed y consultas",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&g.server, "server", "", "URL de la API (p.ej. http://localhost:8080); vacío = acceso directo a la base")
	root.PersistentFlags().StringVar(&g.db, "db", "", "ruta de la base SQLite (pisa DATABASE_PATH)")
	root.PersistentFlags().DurationVar(&g.timeout, "timeout", apiTimeout, "timeout de requests a la API")

	root.AddCommand(
		newInitCmd(g),
		newSeedCmd(g),
		newPetsCmd(g),
		newStatsCmd(g),
	)
	return root
}

const apiTimeout = 10 * time.Second

var errRemoteUnsupported = errors.New("this command only runs against the database (drop --server)")

// local agrupa servicios sobre el backend configurado.
type local struct {
	backend *storage.Backend
	pets    *pets.Service
	records *records.Service
	log     logger.Logger
}

func (l *local) Close() error {
	_ = l.log.Sync()
	return l.backend.Close()
}

func openLocal(ctx context.Context, g *globalFlags) (*local, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if g.db != "" {
		cfg.Driver = config.DriverSQLite
		cfg.DatabasePath = g.db
	}

	log := logger.New(cfg.Log)
	b, err := storage.Open(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	petsSvc := pets.NewService(b.Pets, b.Records, log)
	return &local{
		backend: b,
		pets:    petsSvc,
		records: records.NewService(b.Records, petsSvc, log),
		log:     log,
	}, nil
}

func openRemote(g *globalFlags) (*apiclient.Client, error) {
	return apiclient.New(g.server, g.timeout)
}
