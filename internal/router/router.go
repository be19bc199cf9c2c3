package router

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/heptiolabs/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "pet-records/docs"
	mem "pet-records/internal/adapters/storage/memory"
	"pet-records/internal/domain/pets"
	"pet-records/internal/domain/records"
	"pet-records/internal/middleware"
	"pet-records/internal/platform/logger"
)

type Options struct {
	Logger logger.Logger // nil = nop

	// Opcional: si vienen, se usan. Si no, in-memory.
	Pets    pets.Repository
	Records records.Repository

	// DB alimenta el readiness check. nil = sin check de base.
	DB *sql.DB
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logging(log.With(map[string]any{"component": "http"})))
	r.Use(middleware.Recover(log))

	petRepo, recordRepo := opts.Pets, opts.Records
	if petRepo == nil || recordRepo == nil {
		s := mem.NewStore()
		petRepo = mem.NewPetRepo(s)
		recordRepo = mem.NewRecordRepo(s)
	}

	// Services por módulo. pets.Service es el PetLookup de records.
	petsSvc := pets.NewService(petRepo, recordRepo, log)
	recordsSvc := records.NewService(recordRepo, petsSvc, log)

	// Rutas por módulo
	pets.RegisterRoutes(r, petsSvc)
	records.RegisterRoutes(r, recordsSvc)

	// Infra
	r.Mount("/health", http.StripPrefix("/health", healthHandler(opts.DB)))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return r
}

// healthHandler expone /live y /ready.
func healthHandler(db *sql.DB) healthcheck.Handler {
	h := healthcheck.NewHandler()
	h.AddLivenessCheck("goroutine-threshold", healthcheck.GoroutineCountCheck(1000))
	if db != nil {
		h.AddReadinessCheck("database", healthcheck.DatabasePingCheck(db, time.Second))
	}
	return h
}
