package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps documents in a single sqlite table.
type SQLiteStore struct {
	db     *sql.DB
	hub    *hub
	logger *slog.Logger
}

// OpenSQLite opens (creating when needed) the database at path and runs
// migrations. Use ":memory:" for a throwaway database.
func OpenSQLite(ctx context.Context, path string, opts ...Option) (*SQLiteStore, error) {
	o := buildOptions(opts)

	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		// SQLite retries for this long before returning SQLITE_BUSY
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			o.logger.Error("failed to apply pragma", "pragma", pragma, "error", err)
			closeDB(db, o.logger)
			return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	if err := db.PingContext(ctx); err != nil {
		closeDB(db, o.logger)
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	// single writer connection; this also keeps ":memory:" to one database
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := runMigrations(ctx, db); err != nil {
		closeDB(db, o.logger)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db, hub: newHub(o), logger: o.logger}, nil
}

func closeDB(db *sql.DB, logger *slog.Logger) {
	if err := db.Close(); err != nil {
		logger.Error("error closing db", "error", err)
	}
}

func (s *SQLiteStore) Subscribe(ctx context.Context, collection string, fn Listener) (func(), error) {
	if collection == "" {
		return nil, ErrEmptyCollection
	}
	docs, err := s.List(ctx, collection)
	if err != nil {
		return nil, err
	}
	unsubscribe := s.hub.add(ctx, collection, fn)
	fn(docs)
	return unsubscribe, nil
}

func (s *SQLiteStore) Save(ctx context.Context, collection string, doc Document) (string, error) {
	clean, err := prepare(collection, doc)
	if err != nil {
		return "", err
	}
	id := clean.ID()

	err = withTx(ctx, s.db, func(tx *sql.Tx) error {
		var existing Document
		var data string
		err := tx.QueryRowContext(ctx,
			"SELECT data FROM documents WHERE collection = ? AND id = ?",
			collection, id).Scan(&data)
		switch {
		case errors.Is(err, sql.ErrNoRows):
		case err != nil:
			return fmt.Errorf("failed to read existing document: %w", err)
		default:
			if existing, err = decodeDocument(data); err != nil {
				return err
			}
		}

		encoded, err := encodeDocument(merge(existing, clean))
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO documents (collection, id, data)
			VALUES (?, ?, ?)
			ON CONFLICT (collection, id) DO UPDATE SET
				data = excluded.data,
				updated_at = CURRENT_TIMESTAMP
		`, collection, id, encoded)
		if err != nil {
			return fmt.Errorf("failed to upsert document: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	s.changed(ctx, collection, id)
	return id, nil
}

func (s *SQLiteStore) Delete(ctx context.Context, collection, id string) error {
	if collection == "" {
		return ErrEmptyCollection
	}
	if id == "" {
		return ErrEmptyID
	}

	res, err := s.db.ExecContext(ctx,
		"DELETE FROM documents WHERE collection = ? AND id = ?", collection, id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s/%s", ErrNotFound, collection, id)
	}

	s.changed(ctx, collection, id)
	return nil
}

func (s *SQLiteStore) List(ctx context.Context, collection string) ([]Document, error) {
	if collection == "" {
		return nil, ErrEmptyCollection
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT data FROM documents WHERE collection = ? ORDER BY seq", collection)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", collection, err)
	}
	defer rows.Close()

	docs := []Document{}
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		doc, err := decodeDocument(data)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", collection, err)
	}
	return docs, nil
}

func (s *SQLiteStore) Get(ctx context.Context, collection, id string) (Document, error) {
	if collection == "" {
		return nil, ErrEmptyCollection
	}
	if id == "" {
		return nil, ErrEmptyID
	}

	var data string
	err := s.db.QueryRowContext(ctx,
		"SELECT data FROM documents WHERE collection = ? AND id = ?",
		collection, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, collection, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return decodeDocument(data)
}

// Refresh re-lists a collection (or every subscribed one) for subscribers.
func (s *SQLiteStore) Refresh(ctx context.Context, collection string) error {
	names := []string{collection}
	if collection == "" {
		names = s.hub.collections()
	}
	for _, name := range names {
		if !s.hub.subscribed(name) {
			continue
		}
		docs, err := s.List(ctx, name)
		if err != nil {
			return err
		}
		s.hub.broadcast(name, docs)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// changed pushes the new contents to local subscribers and announces the
// write to other processes.
func (s *SQLiteStore) changed(ctx context.Context, collection, id string) {
	if s.hub.subscribed(collection) {
		docs, err := s.List(ctx, collection)
		if err != nil {
			s.logger.Warn("failed to re-list after write", "collection", collection, "error", err)
		} else {
			s.hub.broadcast(collection, docs)
		}
	}
	s.hub.announce(collection, id)
}
