package router

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "pet-intake/docs"
	mem "pet-intake/internal/adapters/storage/memory"
	pg "pet-intake/internal/adapters/storage/postgres"
	"pet-intake/internal/domain/pets"
	"pet-intake/internal/middleware"
	"pet-intake/internal/platform/logger"
	"pet-intake/internal/platform/metrics"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger logger.Logger

	// Registry donde se registran y de donde se exponen las métricas.
	// Si es nil se usa uno nuevo (tests).
	Registry *prometheus.Registry
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := metrics.New(reg)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(log, m))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var petRepo pets.Repository
	if opts.DB != nil {
		petRepo = pg.NewPetsRepo(opts.DB)
	} else {
		petRepo = mem.NewPetRepo()
	}

	pets.RegisterRoutes(r, pets.NewService(petRepo))

	return r
}
