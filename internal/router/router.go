package router

import (
	"database/sql"
	"net/http"

	_ "furiends-pets/docs"
	mem "furiends-pets/internal/adapters/storage/memory"
	pg "furiends-pets/internal/adapters/storage/postgres"
	"furiends-pets/internal/domain/pets"
	"furiends-pets/internal/middleware"
	"furiends-pets/internal/platform/logger"
	"furiends-pets/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// nil = logger.Nop()
	Logger logger.Logger

	EnableMetrics bool
	EnableSwagger bool
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	if m := useMiddleware(r, log, opts.EnableMetrics); m != nil {
		r.Method(http.MethodGet, "/metrics", m.Handler())
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if opts.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	}

	var petRepo pets.Repository
	if opts.DB != nil {
		petRepo = pg.NewPetsRepo(opts.DB)
	} else {
		petRepo = mem.NewPetRepo()
	}

	pets.RegisterRoutes(r, pets.NewService(petRepo), log)

	return r
}

// useMiddleware monta el stack común. Devuelve los collectors si las métricas
// están activas.
func useMiddleware(r chi.Router, log logger.Logger, enableMetrics bool) *metrics.HTTP {
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))

	// Métricas por fuera de Recover para contar también los 500 por panic.
	var m *metrics.HTTP
	if enableMetrics {
		m = metrics.NewHTTP("furiends_pets")
		r.Use(m.Middleware)
	}
	r.Use(middleware.Recover(log))

	return m
}
