package app

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/adflow/internal/config"
	"github.com/thenoetrevino/adflow/internal/events"
	campaignservice "github.com/thenoetrevino/adflow/internal/services/campaign"
	noteservice "github.com/thenoetrevino/adflow/internal/services/note"
	taskservice "github.com/thenoetrevino/adflow/internal/services/task"
	"github.com/thenoetrevino/adflow/internal/store"
)

type stubPublisher struct {
	mu     sync.Mutex
	sent   int
	closed bool
	ch     chan events.Event
}

func (p *stubPublisher) Connect(context.Context) error { return nil }
func (p *stubPublisher) SendEvent(events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sent++
	return nil
}
func (p *stubPublisher) Listen(context.Context) (<-chan events.Event, error) { return p.ch, nil }
func (p *stubPublisher) Subscribe(...string) error                         { return nil }
func (p *stubPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}

func newTestApp(t *testing.T, opts ...Option) *App {
	t.Helper()
	a, err := New(store.NewMemoryStore(), config.Default(), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func TestNew(t *testing.T) {
	a := newTestApp(t)

	assert.NotNil(t, a.CampaignService)
	assert.NotNil(t, a.TaskService)
	assert.NotNil(t, a.BudgetService)
	assert.NotNil(t, a.NoteService)
	assert.NotNil(t, a.Backup)
	assert.Equal(t, "Planning", a.CampaignService.Columns().First())
}

func TestNew_RejectsBadColumns(t *testing.T) {
	cfg := config.Default()
	cfg.Boards.TaskColumns = []string{"A", "A"}

	_, err := New(store.NewMemoryStore(), cfg)
	assert.Error(t, err)
}

func TestOpen_Backends(t *testing.T) {
	for _, backend := range []string{config.BackendMemory, config.BackendFile, config.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			t.Setenv("ADFLOW_DATA_DIR", t.TempDir())
			cfg := config.Default()
			cfg.Storage.Backend = backend

			a, err := Open(context.Background(), cfg)
			require.NoError(t, err)
			defer func() { _ = a.Close() }()

			_, err = a.TaskService.Create(context.Background(), taskservice.CreateTaskRequest{Text: "Brief designer"})
			require.NoError(t, err)
			tasks, err := a.TaskService.List(context.Background())
			require.NoError(t, err)
			assert.Len(t, tasks, 1)
		})
	}
}

func TestDashboardAndSearch(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	c, err := a.CampaignService.Create(ctx, campaignservice.CreateCampaignRequest{
		Name:      "Winter Sale",
		Branch:    "Alberton",
		Objective: "Sales",
		StartDate: "2025-06-01",
		Status:    "Live",
	})
	require.NoError(t, err)
	_, err = a.TaskService.Create(ctx, taskservice.CreateTaskRequest{Text: "Shoot winter reel", CampaignID: c.ID})
	require.NoError(t, err)
	_, err = a.NoteService.Create(ctx, noteservice.CreateNoteRequest{Title: "Copy ideas", Content: "Cosy winter"})
	require.NoError(t, err)

	dash, err := a.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, dash.ActiveCampaigns)
	assert.Equal(t, 1, dash.TasksToDo)

	results, err := a.Search(ctx, "winter")
	require.NoError(t, err)
	require.Len(t, results, 3)
	// Equal scores order by title
	assert.Equal(t, "Copy ideas", results[0].Title)
	assert.Equal(t, c.ID, results[2].ID)
}

func TestWatch_NoClient(t *testing.T) {
	a := newTestApp(t)
	assert.NoError(t, a.Watch(context.Background()))
}

func TestWatch_RefreshesUntilCancelled(t *testing.T) {
	pub := &stubPublisher{ch: make(chan events.Event, 1)}
	a := newTestApp(t, WithEventPublisher(pub))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Watch(ctx) }()

	pub.ch <- events.Event{Type: events.EventDocumentChanged, Collection: "tasks"}
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestClose_ClosesEventClient(t *testing.T) {
	pub := &stubPublisher{}
	a, err := New(store.NewMemoryStore(), nil, WithEventPublisher(pub))
	require.NoError(t, err)

	require.NoError(t, a.Close())
	assert.True(t, pub.closed)
}
