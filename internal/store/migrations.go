package store

import (
	"context"
	"database/sql"
	"fmt"
)

// runMigrations creates the documents schema if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	return withTx(ctx, db, func(tx *sql.Tx) error {
		statements := []string{
			`CREATE TABLE IF NOT EXISTS documents (
				seq INTEGER PRIMARY KEY AUTOINCREMENT,
				collection TEXT NOT NULL,
				id TEXT NOT NULL,
				data TEXT NOT NULL,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				UNIQUE (collection, id)
			)`,
			`CREATE INDEX IF NOT EXISTS idx_documents_collection
				ON documents(collection, seq)`,
		}
		for _, stmt := range statements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("failed to apply migration: %w", err)
			}
		}
		return nil
	})
}
