package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"pet-records/internal/adapters/storage"
	"pet-records/internal/config"
	"pet-records/internal/platform/logger"
	"pet-records/internal/router"
)

// @title Pet Records API
// @version 1.0
// @description Historia médica de mascotas: vacunas y alergias.
// @BasePath /
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log := logger.New(cfg.Log)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, err := storage.Open(ctx, cfg, log)
	if err != nil {
		log.Error("storage init failed", map[string]any{"driver": string(cfg.Driver), "err": err.Error()})
		return err
	}
	defer func() {
		if err := backend.Close(); err != nil {
			log.Warn("storage close", map[string]any{"err": err.Error()})
		}
	}()

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.NewRouter(router.Options{
			Logger:  log,
			Pets:    backend.Pets,
			Records: backend.Records,
			DB:      backend.DB,
		}),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	srv.ErrorLog = serverErrorLog(log)

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "driver": string(backend.Driver)})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// serverErrorLog manda los errores internos de net/http (TLS, handshakes,
// panics fuera de chi) por zap. nil = log estándar de net/http.
func serverErrorLog(log logger.Logger) *stdlog.Logger {
	zl, ok := log.(*logger.ZapLogger)
	if !ok {
		return nil
	}
	return zap.NewStdLog(zl.Zap().Named("http.server"))
}
