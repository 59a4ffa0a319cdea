// Package backup exports and imports the whole adflow workspace.
package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/thenoetrevino/adflow/internal/models"
	"github.com/thenoetrevino/adflow/internal/services/budget"
	"github.com/thenoetrevino/adflow/internal/services/task"
	"github.com/thenoetrevino/adflow/internal/store"
)

// DefaultFileName is the suggested name for exports
const DefaultFileName = "adflow-hub-backup.json"

// backedUp lists the collections a backup must contain
var backedUp = []string{
	models.CollectionCampaigns,
	models.CollectionTasks,
	models.CollectionNotes,
	models.CollectionBudgets,
}

// Service exports and imports documents
type Service struct {
	store   store.Store
	tasks   task.Service
	budgets budget.Service
	logger  *slog.Logger
}

// NewService creates a backup service. CSV rows go through the task and
// budget services so they are validated like any other write.
func NewService(s store.Store, tasks task.Service, budgets budget.Service, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: s, tasks: tasks, budgets: budgets, logger: logger}
}

// Export writes {campaigns,tasks,notes,budgets} as indented JSON.
func (s *Service) Export(ctx context.Context, w io.Writer) error {
	docs := make([][]store.Document, len(backedUp))
	g, gctx := errgroup.WithContext(ctx)
	for i, name := range backedUp {
		g.Go(func() error {
			list, err := s.store.List(gctx, name)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", name, err)
			}
			docs[i] = list
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := make(map[string][]store.Document, len(backedUp))
	for i, name := range backedUp {
		out[name] = docs[i]
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}
	return nil
}

// Counts reports how many documents were written per collection
type Counts map[string]int

// Import upserts every document of a backup. All four collections must be
// present (they may be empty); otherwise nothing is written.
func (s *Service) Import(ctx context.Context, r io.Reader) (Counts, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}

	parsed := make(map[string][]store.Document, len(backedUp))
	for _, name := range backedUp {
		data, ok := raw[name]
		if !ok {
			return nil, fmt.Errorf("%w: missing %q", ErrInvalidBackup, name)
		}
		var docs []store.Document
		if err := json.Unmarshal(data, &docs); err != nil {
			return nil, fmt.Errorf("%w: %s must be an array of objects", ErrInvalidBackup, name)
		}
		parsed[name] = docs
	}

	counts := Counts{}
	for _, name := range backedUp {
		for _, doc := range parsed[name] {
			if _, err := s.store.Save(ctx, name, doc); err != nil {
				return counts, fmt.Errorf("failed to import %s: %w", name, err)
			}
			counts[name]++
		}
	}

	s.logger.Info("backup imported",
		"campaigns", counts[models.CollectionCampaigns],
		"tasks", counts[models.CollectionTasks],
		"notes", counts[models.CollectionNotes],
		"budgets", counts[models.CollectionBudgets])
	return counts, nil
}
