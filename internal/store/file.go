package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore keeps every collection in one JSON snapshot file. It is the
// fallback used when the sqlite database cannot be opened.
type FileStore struct {
	*MemoryStore
	path string
}

// OpenFile loads (or creates) the snapshot at path.
func OpenFile(path string, opts ...Option) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	mem := NewMemoryStore(opts...)
	fstore := &FileStore{MemoryStore: mem, path: path}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read store file: %w", err)
	case len(data) > 0:
		var state map[string][]Document
		if err := json.Unmarshal(data, &state); err != nil {
			return nil, fmt.Errorf("failed to parse store file %s: %w", path, err)
		}
		mem.load(state)
	}

	mem.persist = fstore.write
	return fstore, nil
}

// Path returns the snapshot file location.
func (s *FileStore) Path() string {
	return s.path
}

// write replaces the snapshot atomically via a temp file and rename.
func (s *FileStore) write(state map[string][]Document) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode store: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".adflow-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace store file: %w", err)
	}
	return nil
}

// Refresh reloads the snapshot from disk, picking up writes made by other
// processes, and pushes it to subscribers.
func (s *FileStore) Refresh(ctx context.Context, collection string) error {
	data, err := os.ReadFile(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to read store file: %w", err)
	}
	if len(data) > 0 {
		var state map[string][]Document
		if err := json.Unmarshal(data, &state); err != nil {
			return fmt.Errorf("failed to parse store file: %w", err)
		}
		s.load(state)
	}
	return s.MemoryStore.Refresh(ctx, collection)
}
