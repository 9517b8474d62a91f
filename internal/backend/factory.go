package backend

import (
	"fmt"
	"log/slog"

	"masroufi/internal/log"
	"masroufi/internal/storage"
	"masroufi/internal/storage/memory"
)

// Config holds what the factory needs to select and open a backend.
type Config struct {
	Type BackendType

	// SQLite specific
	SQLiteDBPath string
}

// Factory opens storage backends with graceful degradation: when the
// embedded engine cannot be used, the application falls back to the
// in-memory store instead of failing to start.
type Factory struct {
	logger *slog.Logger
}

// NewFactory creates a backend factory.
func NewFactory(logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{logger: logger}
}

// Open selects and initializes the backend for the given config. For
// the sqlite type this is the capability probe: open, ping and
// migrate; if any step fails the factory logs the degradation and
// hands back the memory store so the application stays usable.
func (f *Factory) Open(config Config) (*Result, error) {
	if !config.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", config.Type)
	}

	switch config.Type {
	case SQLiteBackend:
		return f.openSQLite(config), nil
	case MemoryBackend:
		return f.openMemory(), nil
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}

func (f *Factory) openSQLite(config Config) *Result {
	store, err := storage.NewSQLiteStore(config.SQLiteDBPath)
	if err != nil {
		f.logger.Warn("SQLite unavailable, degrading to in-memory store; data will not survive exit",
			log.FieldPath, config.SQLiteDBPath,
			log.FieldError, err)
		return f.openMemory()
	}

	f.logger.Info("Initialized SQLite backend", log.FieldPath, config.SQLiteDBPath)

	return &Result{
		Store:   store,
		Type:    SQLiteBackend,
		Cleanup: store.Close,
	}
}

func (f *Factory) openMemory() *Result {
	f.logger.Info("Initialized memory backend")

	return &Result{
		Store:   memory.New(),
		Type:    MemoryBackend,
		Cleanup: nil, // nothing to release
	}
}
