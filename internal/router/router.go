package router

import (
	"database/sql"
	"net/http"

	mem "guaumiau-pets-api/internal/adapters/storage/memory"
	pg "guaumiau-pets-api/internal/adapters/storage/postgres"
	"guaumiau-pets-api/internal/domain/pets"
	"guaumiau-pets-api/internal/middleware"
	"guaumiau-pets-api/internal/platform/logger"

	_ "guaumiau-pets-api/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: sin logger no se loguean requests (útil en tests).
	Log logger.Logger

	// Origen permitido para el cliente móvil/web. "*" en dev.
	CORSOrigin string
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	origin := opts.CORSOrigin
	if origin == "" {
		origin = "*"
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{origin},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	if opts.Log != nil {
		r.Use(middleware.RequestLogger(opts.Log))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	var petsRepo pets.Repository
	if opts.DB != nil {
		petsRepo = pg.NewPetsRepo(opts.DB)
	} else {
		petsRepo = mem.NewPetsRepo()
	}

	petsSvc := pets.NewService(petsRepo)
	pets.RegisterRoutes(r, petsSvc)

	return r
}
