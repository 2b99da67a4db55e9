package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config junta todo lo que el servicio lee del entorno.
// DBDSN vacío => store in-memory (modo dev, sin Postgres).
type Config struct {
	Port       string
	DBDSN      string
	AppName    string
	LogLevel   string
	LogFormat  string
	CORSOrigin string
}

func Load() Config {
	// .env es opcional; en prod vienen del entorno directamente
	_ = godotenv.Load()

	return Config{
		Port:       getEnv("PORT", "8080"),
		DBDSN:      getEnv("DB_DSN", ""),
		AppName:    getEnv("APP_NAME", "guaumiau-pets-api"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		LogFormat:  getEnv("LOG_FORMAT", "text"),
		CORSOrigin: getEnv("CORS_ORIGIN", "*"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
