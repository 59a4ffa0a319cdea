package task

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/adflow/internal/kanban"
	"github.com/thenoetrevino/adflow/internal/models"
	"github.com/thenoetrevino/adflow/internal/store"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func setupTestService(t *testing.T) (Service, store.Store) {
	t.Helper()
	s, err := store.OpenSQLite(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return NewService(s, nil), s
}

func seedCampaign(t *testing.T, s store.Store, id, name string) {
	t.Helper()
	_, err := s.Save(context.Background(), models.CollectionCampaigns, store.Document{
		"id":     id,
		"name":   name,
		"status": models.CampaignPlanning,
	})
	require.NoError(t, err)
}

func ptr[T any](v T) *T { return &v }

// ============================================================================
// CREATE / UPDATE / DELETE
// ============================================================================

func TestCreate_Defaults(t *testing.T) {
	svc, _ := setupTestService(t)

	task, err := svc.Create(context.Background(), CreateTaskRequest{Text: "  Book photographer "})
	require.NoError(t, err)

	assert.NotEmpty(t, task.ID)
	assert.Equal(t, "Book photographer", task.Text)
	assert.Equal(t, models.PriorityMedium, task.Priority)
	assert.Equal(t, models.TaskToDo, task.Status)
	assert.Equal(t, models.UnassignedCampaign, task.Campaign)
}

func TestCreate_LinksCampaign(t *testing.T) {
	svc, s := setupTestService(t)
	seedCampaign(t, s, "c1", "Winter Sale")

	task, err := svc.Create(context.Background(), CreateTaskRequest{Text: "Write copy", CampaignID: "c1"})
	require.NoError(t, err)
	assert.Equal(t, "c1", task.CampaignID)
	assert.Equal(t, "Winter Sale", task.Campaign)

	_, err = svc.Create(context.Background(), CreateTaskRequest{Text: "Orphan", CampaignID: "nope"})
	assert.ErrorIs(t, err, ErrCampaignNotFound)
}

func TestCreate_Validation(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateTaskRequest{Text: ""})
	assert.ErrorIs(t, err, ErrEmptyText)

	_, err = svc.Create(ctx, CreateTaskRequest{Text: "x", Priority: "Urgent"})
	assert.ErrorIs(t, err, ErrInvalidPriority)

	_, err = svc.Create(ctx, CreateTaskRequest{Text: "x", Status: "Blocked"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdate(t *testing.T) {
	svc, s := setupTestService(t)
	ctx := context.Background()
	seedCampaign(t, s, "c1", "Winter Sale")

	task, err := svc.Create(ctx, CreateTaskRequest{Text: "Write copy", CampaignID: "c1"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, UpdateTaskRequest{ID: task.ID, Priority: ptr(models.PriorityHigh)})
	require.NoError(t, err)
	assert.Equal(t, models.PriorityHigh, updated.Priority)
	assert.Equal(t, "Winter Sale", updated.Campaign)

	updated, err = svc.Update(ctx, UpdateTaskRequest{ID: task.ID, CampaignID: ptr("")})
	require.NoError(t, err)
	assert.Empty(t, updated.CampaignID)
	assert.Equal(t, models.UnassignedCampaign, updated.Campaign)

	stored, err := svc.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.CampaignID)

	_, err = svc.Update(ctx, UpdateTaskRequest{ID: task.ID, Text: ptr(" ")})
	assert.ErrorIs(t, err, ErrEmptyText)
}

func TestDelete(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	task, err := svc.Create(ctx, CreateTaskRequest{Text: "x"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, task.ID))
	assert.ErrorIs(t, svc.Delete(ctx, task.ID), ErrTaskNotFound)
	_, err = svc.Get(ctx, task.ID)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

// ============================================================================
// BOARD
// ============================================================================

func TestKeyboardStepsPersist(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	task, err := svc.Create(ctx, CreateTaskRequest{Text: "Schedule posts"})
	require.NoError(t, err)

	ctrl := kanban.NewController(kanban.NewEngine[models.Task](svc.Columns()), svc, nil, kanban.WithNoun("Task"))

	require.True(t, ctrl.KeyDown(ctx, kanban.KeyEnter, task))
	require.True(t, ctrl.KeyDown(ctx, kanban.KeyRight, task))
	require.True(t, ctrl.KeyDown(ctx, kanban.KeyRight, task))
	require.True(t, ctrl.KeyDown(ctx, kanban.KeyRight, task)) // clamped at Done

	stored, err := svc.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TaskDone, stored.Status)
	assert.Equal(t, "Schedule posts", stored.Text)
}

func TestSave_RejectsUnknownStatus(t *testing.T) {
	svc, _ := setupTestService(t)
	assert.ErrorIs(t, svc.Save(context.Background(), models.Task{ID: "t1", Status: "Later"}), ErrInvalidStatus)
	assert.ErrorIs(t, svc.Save(context.Background(), models.Task{Status: models.TaskDone}), ErrInvalidTaskID)
}

// ============================================================================
// IMPORT
// ============================================================================

func TestImportJSON(t *testing.T) {
	svc, s := setupTestService(t)
	ctx := context.Background()
	seedCampaign(t, s, "c1", "Winter Sale")

	input := `[
		{"text": "Brief designer", "priority": "High", "campaignId": "c1"},
		{"text": "Post recap", "status": "Done", "campaign": "Spring Launch"},
		{"text": "Check invoices"}
	]`

	n, err := svc.ImportJSON(ctx, strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	tasks, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "Winter Sale", tasks[0].Campaign)
	assert.Equal(t, "Spring Launch", tasks[1].Campaign)
	assert.Equal(t, models.TaskDone, tasks[1].Status)
	assert.Equal(t, models.UnassignedCampaign, tasks[2].Campaign)
	assert.Equal(t, models.PriorityMedium, tasks[2].Priority)
}

func TestImportJSON_AllOrNothing(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	n, err := svc.ImportJSON(ctx, strings.NewReader(`[{"text": "ok"}, {"text": ""}]`))
	assert.ErrorIs(t, err, ErrEmptyText)
	assert.Zero(t, n)

	_, err = svc.ImportJSON(ctx, strings.NewReader(`{"text": "not an array"}`))
	assert.ErrorIs(t, err, ErrInvalidImport)

	tasks, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}
