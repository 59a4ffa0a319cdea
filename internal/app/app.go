// Package app wires the store, services and event client together.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/thenoetrevino/adflow/internal/analytics"
	"github.com/thenoetrevino/adflow/internal/backup"
	"github.com/thenoetrevino/adflow/internal/config"
	"github.com/thenoetrevino/adflow/internal/events"
	"github.com/thenoetrevino/adflow/internal/search"
	budgetservice "github.com/thenoetrevino/adflow/internal/services/budget"
	campaignservice "github.com/thenoetrevino/adflow/internal/services/campaign"
	noteservice "github.com/thenoetrevino/adflow/internal/services/note"
	taskservice "github.com/thenoetrevino/adflow/internal/services/task"
	"github.com/thenoetrevino/adflow/internal/store"
)

// App holds all application services and provides dependency injection.
type App struct {
	store       store.Store
	eventClient events.EventPublisher
	logger      *slog.Logger
	config      *config.Config

	CampaignService campaignservice.Service
	TaskService     taskservice.Service
	BudgetService   budgetservice.Service
	NoteService     noteservice.Service
	Backup          *backup.Service
}

// Open builds the container from cfg: it opens the configured store and
// wires every service to it.
func Open(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	o := appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	dataDir, err := cfg.DataDir()
	if err != nil {
		return nil, err
	}
	if cfg.Storage.Backend != config.BackendMemory {
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	storeOpts := []store.Option{store.WithLogger(o.logger)}
	if o.eventClient != nil {
		storeOpts = append(storeOpts, store.WithPublisher(o.eventClient))
	}

	s, err := store.Open(ctx, cfg.Storage.Backend, dataDir, storeOpts...)
	if err != nil {
		return nil, err
	}

	a, err := New(s, cfg, opts...)
	if err != nil {
		_ = s.Close()
		return nil, err
	}
	return a, nil
}

// New wires the services to an already open store.
func New(s store.Store, cfg *config.Config, opts ...Option) (*App, error) {
	o := appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	if cfg == nil {
		cfg = config.Default()
	}

	campaignCols, err := cfg.CampaignColumns()
	if err != nil {
		return nil, err
	}
	taskCols, err := cfg.TaskColumns()
	if err != nil {
		return nil, err
	}

	tasks := taskservice.NewService(s, o.logger, taskservice.WithColumns(taskCols))
	budgets := budgetservice.NewService(s, o.logger)

	return &App{
		store:           s,
		eventClient:     o.eventClient,
		logger:          o.logger,
		config:          cfg,
		CampaignService: campaignservice.NewService(s, o.logger, campaignservice.WithColumns(campaignCols)),
		TaskService:     tasks,
		BudgetService:   budgets,
		NoteService:     noteservice.NewService(s, o.logger),
		Backup:          backup.NewService(s, tasks, budgets, o.logger),
	}, nil
}

// Store returns the document store the services share.
func (a *App) Store() store.Store {
	return a.store
}

// Config returns the configuration the app was built from.
func (a *App) Config() *config.Config {
	return a.config
}

// Logger returns the app logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Snapshot reads campaigns, tasks and budgets in one go.
func (a *App) Snapshot(ctx context.Context) (analytics.Snapshot, error) {
	return analytics.Load(ctx, a.CampaignService, a.TaskService, a.BudgetService)
}

// Dashboard computes the overview tab.
func (a *App) Dashboard(ctx context.Context) (analytics.Dashboard, error) {
	snap, err := a.Snapshot(ctx)
	if err != nil {
		return analytics.Dashboard{}, err
	}
	return analytics.Overview(snap.Campaigns, snap.Tasks, snap.Budgets), nil
}

// Search runs a fuzzy query over campaigns, tasks and notes.
func (a *App) Search(ctx context.Context, query string) ([]search.Result, error) {
	snap, err := a.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	notes, err := a.NoteService.List(ctx)
	if err != nil {
		return nil, err
	}
	return search.Search(search.Index(snap.Campaigns, snap.Tasks, notes), query), nil
}

// Watch keeps the store in sync with changes other processes announce
// through the event daemon. It returns immediately when no event client
// is configured or the store cannot refresh.
func (a *App) Watch(ctx context.Context) error {
	refresher, ok := a.store.(store.Refresher)
	if a.eventClient == nil || !ok {
		return nil
	}
	return store.Watch(ctx, refresher, a.eventClient)
}

// Close releases the store and the event client.
func (a *App) Close() error {
	var errs []error
	if a.eventClient != nil {
		errs = append(errs, a.eventClient.Close())
	}
	errs = append(errs, a.store.Close())
	return errors.Join(errs...)
}
