package main

import (
	"database/sql"
	"net/http"
	"time"

	"guaumiau-pets-api/internal/adapters/storage/postgres"
	"guaumiau-pets-api/internal/config"
	"guaumiau-pets-api/internal/platform/logger"
	"guaumiau-pets-api/internal/router"
)

// @title        GuauMiau Pets API
// @version      1.0
// @description  Backend REST para el registro de mascotas de la app móvil GuauMiau.
// @BasePath     /
func main() {
	cfg := config.Load()

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	// Sin DSN corre con store in-memory (modo dev, sin Postgres)
	var db *sql.DB
	if cfg.DBDSN != "" {
		opened, err := postgres.Open(cfg.DBDSN)
		if err != nil {
			log.Error("db connect failed", map[string]any{"error": err.Error()})
			return
		}
		defer opened.Close()

		if err := postgres.RunMigrations(opened); err != nil {
			log.Error("db migrations failed", map[string]any{"error": err.Error()})
			return
		}

		db = opened
		log.Info("connected to postgres", nil)
	} else {
		log.Warn("DB_DSN not set, using in-memory store", nil)
	}

	r := router.NewRouter(router.Options{
		DB:         db,
		Log:        log,
		CORSOrigin: cfg.CORSOrigin,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": srv.Addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
	}
}
