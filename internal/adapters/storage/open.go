// Package storage elige el backend según config y arma los repos.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	mem "pet-records/internal/adapters/storage/memory"
	pg "pet-records/internal/adapters/storage/postgres"
	"pet-records/internal/adapters/storage/sqlite"
	"pet-records/internal/config"
	"pet-records/internal/domain/pets"
	"pet-records/internal/domain/records"
	"pet-records/internal/platform/logger"
)

// Backend agrupa los repos de un mismo almacenamiento.
// DB es nil para el backend en memoria.
type Backend struct {
	Driver  config.Driver
	Pets    pets.Repository
	Records records.Repository
	DB      *sql.DB

	close func() error
}

func (b *Backend) Close() error {
	if b == nil || b.close == nil {
		return nil
	}
	return b.close()
}

// Open abre el backend y aplica el schema. Falla rápido si la base no responde.
func Open(ctx context.Context, cfg config.Config, log logger.Logger) (*Backend, error) {
	if log == nil {
		log = logger.NewNop()
	}

	switch cfg.Driver {
	case config.DriverMemory:
		s := mem.NewStore()
		return &Backend{
			Driver:  cfg.Driver,
			Pets:    mem.NewPetRepo(s),
			Records: mem.NewRecordRepo(s),
		}, nil

	case config.DriverSQLite, "":
		return OpenSQLite(ctx, cfg.DatabasePath, log)

	case config.DriverPostgres:
		db, err := pg.Open(cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		created, err := pg.Bootstrap(ctx, db)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		if created {
			log.Info("schema created", map[string]any{"driver": string(cfg.Driver)})
		}
		return &Backend{
			Driver:  cfg.Driver,
			Pets:    pg.NewPetsRepo(db),
			Records: pg.NewRecordsRepo(db),
			DB:      db,
			close:   db.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// OpenSQLite abre (o crea) la base embebida en path. ":memory:" sirve para tests.
func OpenSQLite(ctx context.Context, path string, log logger.Logger) (*Backend, error) {
	h := sqlite.NewHandle(path, log)
	db, err := h.Acquire(ctx)
	if err != nil {
		_ = h.Close()
		return nil, err
	}
	return &Backend{
		Driver:  config.DriverSQLite,
		Pets:    sqlite.NewPetsRepo(h),
		Records: sqlite.NewRecordsRepo(h),
		DB:      db,
		close:   h.Close,
	}, nil
}
