// Package sqlite es el backend embebido (modernc.org/sqlite, sin CGO).
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"pet-records/internal/platform/logger"
)

//go:embed schema.sql
var schema string

const (
	DefaultPath = "novellia-pets.db"
	MemoryPath  = ":memory:"
)

var ErrClosed = errors.New("sqlite: handle closed")

// Handle abre la base en el primer Acquire y aplica el schema si hace falta.
// Un error de apertura queda fijo: los Acquire siguientes lo devuelven.
type Handle struct {
	path string
	log  logger.Logger

	mu     sync.Mutex
	db     *sql.DB
	err    error
	closed bool
}

func NewHandle(path string, log logger.Logger) *Handle {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Handle{path: path, log: log.With(map[string]any{"component": "sqlite"})}
}

// Acquire es idempotente y seguro para uso concurrente.
func (h *Handle) Acquire(ctx context.Context) (*sql.DB, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, ErrClosed
	}
	if h.db != nil || h.err != nil {
		return h.db, h.err
	}

	db, err := open(ctx, h.path)
	if err != nil {
		h.err = err
		return nil, err
	}

	created, err := Bootstrap(ctx, db)
	if err != nil {
		_ = db.Close()
		h.err = err
		return nil, err
	}
	if created {
		h.log.Info("schema created", map[string]any{"path": h.path})
	}

	h.db = db
	return db, nil
}

func (h *Handle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	h.closed = true
	if h.db == nil {
		return nil
	}
	return h.db.Close()
}

func open(ctx context.Context, path string) (*sql.DB, error) {
	if path != MemoryPath {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
				return nil, fmt.Errorf("create dirs: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if path == MemoryPath {
		// Cada conexión a :memory: es una base distinta.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(4)
		db.SetConnMaxIdleTime(5 * time.Minute)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return db, nil
}

// foreign_keys es por conexión, por eso va en el DSN y no en un PRAGMA suelto.
func dsn(path string) string {
	if path == MemoryPath {
		return path + "?_pragma=foreign_keys(1)"
	}
	return path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}

// Bootstrap crea tablas e índices si la tabla pets no existe.
// Devuelve true si aplicó el schema.
func Bootstrap(ctx context.Context, db *sql.DB) (bool, error) {
	var name string
	err := db.QueryRowContext(ctx,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'pets'`,
	).Scan(&name)
	switch {
	case err == nil:
		return false, nil
	case !errors.Is(err, sql.ErrNoRows):
		return false, fmt.Errorf("inspect schema: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return false, fmt.Errorf("apply schema: %w", err)
	}
	return true, nil
}
