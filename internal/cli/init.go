// Package cli provides the common bootstrap used by cmd/masroufi:
// env file loading, logger setup, config validation and backend
// selection.
package cli

import (
	"os"

	"github.com/joho/godotenv"

	"masroufi/internal/amqp"
	"masroufi/internal/backend"
	"masroufi/internal/config"
	"masroufi/internal/log"
	"masroufi/internal/services"
)

// SetupLogger initializes structured logging and installs it as the
// process default.
func SetupLogger() *log.Logger {
	logger := log.New(log.Config{
		Level:     log.ParseLevel(os.Getenv("LOG_LEVEL")),
		Component: log.ComponentApp,
	})
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

// OpenBackend selects the storage backend per config, degrading to the
// in-memory store when SQLite is unavailable.
func OpenBackend(logger *log.Logger, cfg *config.Config) *backend.Result {
	factory := backend.NewFactory(logger.WithComponent(log.ComponentStorage).Logger)
	result, err := factory.Open(backend.Config{
		Type:         backend.BackendType(cfg.DataBackend),
		SQLiteDBPath: cfg.SQLiteDBPath,
	})
	if err != nil {
		logger.Error("Failed to open storage backend", log.FieldError, err, log.FieldBackend, cfg.DataBackend)
		os.Exit(1)
	}
	return result
}

// NewEventPublisher connects the optional AMQP publisher. A missing
// URL or failed connection disables events rather than failing
// startup.
func NewEventPublisher(logger *log.Logger, cfg *config.Config) services.EventPublisher {
	if cfg.AMQPURL == "" {
		return nil
	}
	client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Warn("Failed to connect AMQP, continuing without events", log.FieldError, err)
		return nil
	}
	logger.Info("Connected AMQP event publisher",
		log.FieldExchange, cfg.AMQPExchange,
		log.FieldQueue, cfg.AMQPQueue)
	return client
}
