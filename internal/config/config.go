// Package config carga la configuración del proceso desde env (y .env opcional).
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"pet-records/internal/platform/logger"
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
	DriverMemory   Driver = "memory"
)

type Config struct {
	Port string

	Driver       Driver
	DatabasePath string
	DSN          string

	Log logger.Options

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Addr es la dirección de escucha del servidor HTTP.
func (c Config) Addr() string { return ":" + c.Port }

// Load lee .env si existe (no pisa variables ya definidas) y después el entorno.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv arma la config con getenv (inyectable en tests).
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Port:         envOr(getenv, "PORT", "8080"),
		DatabasePath: envOr(getenv, "DATABASE_PATH", "novellia-pets.db"),
		DSN:          strings.TrimSpace(getenv("DB_DSN")),
		Log: logger.Options{
			Level:  logger.ParseLevel(getenv("LOG_LEVEL")),
			Format: logger.ParseFormat(getenv("LOG_FORMAT")),
			App:    envOr(getenv, "APP_NAME", "pet-records"),
		},
	}

	// DB_DSN solo (sin driver) sigue eligiendo Postgres.
	switch d := Driver(strings.ToLower(strings.TrimSpace(getenv("STORAGE_DRIVER")))); d {
	case "":
		cfg.Driver = DriverSQLite
		if cfg.DSN != "" {
			cfg.Driver = DriverPostgres
		}
	case DriverSQLite, DriverPostgres, DriverMemory:
		cfg.Driver = d
	default:
		return Config{}, fmt.Errorf("STORAGE_DRIVER: unknown driver %q", d)
	}
	if cfg.Driver == DriverPostgres && cfg.DSN == "" {
		return Config{}, errors.New("STORAGE_DRIVER=postgres requires DB_DSN")
	}

	var err error
	if cfg.ReadTimeout, err = durationOr(getenv, "HTTP_READ_TIMEOUT", 5*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.WriteTimeout, err = durationOr(getenv, "HTTP_WRITE_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.ShutdownTimeout, err = durationOr(getenv, "SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func envOr(getenv func(string) string, key, def string) string {
	if v := strings.TrimSpace(getenv(key)); v != "" {
		return v
	}
	return def
}

func durationOr(getenv func(string) string, key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%s: invalid duration %q", key, v)
	}
	return d, nil
}
