package storage

import (
	"fmt"

	"github.com/AFLopez01/ai-execution-coach/internal"
	"github.com/AFLopez01/ai-execution-coach/internal/config"
)

// NewRepository selects a backend from the configuration.
func NewRepository(cfg *config.Config, logger internal.Logger) (LogRepository, error) {
	switch cfg.Storage.Backend {
	case "file":
		return NewFileStorage(cfg.LogsDir, logger)
	case "sqlite":
		return NewSQLiteStorage(cfg.Storage.SQLitePath, logger)
	case "postgres":
		return NewPostgresStorage(cfg.Storage.PostgresDSN, logger)
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", cfg.Storage.Backend)
	}
}
