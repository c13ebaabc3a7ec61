// Package cli provides common initialization for the fintrack command.
package cli

import (
	"os"

	"github.com/joho/godotenv"

	"fintrack/internal/config"
	"fintrack/internal/localstore"
	"fintrack/internal/log"
)

// SetupLogger initializes structured logging with default settings and makes
// it the process default.
func SetupLogger() *log.Logger {
	logger := log.New(log.DefaultConfig())
	log.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *log.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}
	return cfg
}

// InitLocalStore opens the local snapshot database.
// Returns the store or exits the process on failure.
func InitLocalStore(logger *log.Logger, path string) *localstore.Store {
	local, err := localstore.Open(path)
	if err != nil {
		logger.Error("Failed to open local store", log.FieldError, err, log.FieldPath, path)
		os.Exit(1)
	}
	return local
}
