package app_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/adflow/internal/models"
	taskservice "github.com/thenoetrevino/adflow/internal/services/task"
	"github.com/thenoetrevino/adflow/internal/testutil"
)

// Two processes sharing a data directory see each other's writes live.
func TestLiveSyncBetweenApps(t *testing.T) {
	socketPath := testutil.StartTestDaemon(t)
	dataDir := t.TempDir()

	writer := testutil.OpenSyncedApp(t, dataDir, socketPath)
	reader := testutil.OpenSyncedApp(t, dataDir, socketPath)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	var seen []models.Task
	unsubscribe, err := reader.TaskService.Subscribe(ctx, func(tasks []models.Task) {
		mu.Lock()
		defer mu.Unlock()
		seen = tasks
	})
	require.NoError(t, err)
	defer unsubscribe()

	created, err := writer.TaskService.Create(ctx, taskservice.CreateTaskRequest{Text: "Book the shoot"})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(seen) == 1 && seen[0].ID == created.ID
	}, 3*time.Second, 20*time.Millisecond)

	// a status change made through the board reaches the other side too
	moved := created.WithStatus(models.TaskInProgress)
	require.NoError(t, writer.TaskService.Save(ctx, moved))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(seen) == 1 && seen[0].Status == models.TaskInProgress
	}, 3*time.Second, 20*time.Millisecond)

	got, err := reader.TaskService.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Book the shoot", got.Text)
}
