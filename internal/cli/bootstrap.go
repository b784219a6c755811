package cli

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/Duncan-Britt/Expenses/internal/config"
	applog "github.com/Duncan-Britt/Expenses/internal/log"
	"github.com/Duncan-Britt/Expenses/internal/storage"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// SetupLogger initializes structured logging at the configured level.
func SetupLogger(cfg *config.Config) *applog.Logger {
	return applog.New(applog.Config{
		Level:     applog.ParseLevel(cfg.LogLevel),
		Component: applog.ComponentApp,
	})
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig() *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		applog.New(applog.DefaultConfig()).Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

// InitStore opens the expense store and runs the schema bootstrap.
// Returns the store or exits the process on failure: an unreachable
// database or a failed bootstrap is fatal.
func InitStore(ctx context.Context, logger *applog.Logger, databaseURL string) *storage.Store {
	store, err := storage.New(ctx, databaseURL, logger)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to initialize expense store", "error", err)
		os.Exit(1)
	}
	return store
}
