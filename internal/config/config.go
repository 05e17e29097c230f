package config

import (
	"os"

	"ledger_api/internal/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort     string
	DatabaseURL string
	LogLevel    string
	LogJSON     bool
	Version     string
}

// Load reads configuration from the environment, with an optional .env file.
func Load() *Config {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logger.Fatal("DATABASE_URL is not set")
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "info"
	}

	version := os.Getenv("APP_VERSION")
	if version == "" {
		version = "dev"
	}

	return &Config{
		AppPort:     port,
		DatabaseURL: dbURL,
		LogLevel:    level,
		LogJSON:     os.Getenv("LOG_JSON") == "true",
		Version:     version,
	}
}
