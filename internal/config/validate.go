package config

import (
	"fmt"
)

// Storage backends.
const (
	StorageFile     = "file"
	StoragePostgres = "postgres"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	switch c.Storage.Backend {
	case StorageFile:
		if c.Storage.Dir == "" {
			return fmt.Errorf("storage.dir is required for the file backend")
		}
	case StoragePostgres:
		if c.Storage.Database.DSN == "" {
			return fmt.Errorf("storage.database.dsn is required for the postgres backend")
		}
	default:
		return fmt.Errorf("storage.backend must be %q or %q (got %q)", StorageFile, StoragePostgres, c.Storage.Backend)
	}

	if c.Study.FilterDebounce < 0 {
		return fmt.Errorf("study.filter_debounce must be >= 0 (got %v)", c.Study.FilterDebounce)
	}

	if c.Deck.MaxImportBytes <= 0 {
		return fmt.Errorf("deck.max_import_bytes must be > 0 (got %d)", c.Deck.MaxImportBytes)
	}

	if c.Speech.Enabled && c.Speech.Command == "" {
		return fmt.Errorf("speech.command is required when speech is enabled")
	}

	return nil
}
