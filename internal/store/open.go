package store

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
)

// Backend names accepted by Open.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

const (
	sqliteFile = "adflow.db"
	jsonFile   = "adflow.json"
)

// Open returns the configured backend rooted at dataDir. When the sqlite
// database cannot be opened it falls back to the JSON file store.
func Open(ctx context.Context, backend, dataDir string, opts ...Option) (Store, error) {
	switch backend {
	case BackendMemory:
		return NewMemoryStore(opts...), nil

	case BackendFile:
		return OpenFile(filepath.Join(dataDir, jsonFile), opts...)

	case "", BackendSQLite:
		s, err := OpenSQLite(ctx, filepath.Join(dataDir, sqliteFile), opts...)
		if err == nil {
			return s, nil
		}
		slog.Warn("sqlite unavailable, falling back to file store", "error", err)
		fs, fileErr := OpenFile(filepath.Join(dataDir, jsonFile), opts...)
		if fileErr != nil {
			return nil, fmt.Errorf("failed to open any store: %w", fileErr)
		}
		return fs, nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
