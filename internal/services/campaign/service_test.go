package campaign

import (
	"context"
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

func validRequest() CreateCampaignRequest {
	return CreateCampaignRequest{
		Name:      "Winter Sale",
		Branch:    "Alberton",
		Objective: "Sales",
		StartDate: "2025-06-01",
		EndDate:   "2025-06-30",
	}
}

func ptr[T any](v T) *T { return &v }

// ============================================================================
// CREATE
// ============================================================================

func TestCreate_Defaults(t *testing.T) {
	svc, _ := setupTestService(t)

	c, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, c.ID)
	assert.Equal(t, models.CampaignPlanning, c.Status)
	assert.False(t, c.CreatedAt.IsZero())
	assert.Equal(t, models.Checklist{}, c.Checklist)

	stored, err := svc.Get(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Winter Sale", stored.Name)
	assert.Equal(t, []string{}, stored.Headlines)
}

func TestCreate_DerivesChecklist(t *testing.T) {
	svc, _ := setupTestService(t)

	req := validRequest()
	req.PrimaryText = "Everything must go"
	req.Headlines = []string{"50% off"}
	req.BudgetID = "b1"

	c, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.Checklist{PrimaryText: true, Headlines: true, Budget: true}, c.Checklist)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*CreateCampaignRequest)
		want   error
	}{
		{"empty name", func(r *CreateCampaignRequest) { r.Name = "   " }, ErrEmptyName},
		{"bad branch", func(r *CreateCampaignRequest) { r.Branch = "Durban" }, ErrInvalidBranch},
		{"bad objective", func(r *CreateCampaignRequest) { r.Objective = "Vibes" }, ErrInvalidObjective},
		{"bad status", func(r *CreateCampaignRequest) { r.Status = "Archived" }, ErrInvalidStatus},
		{"bad date", func(r *CreateCampaignRequest) { r.StartDate = "01/06/2025" }, ErrInvalidDate},
		{"end before start", func(r *CreateCampaignRequest) { r.EndDate = "2025-05-01" }, ErrEndBeforeStart},
		{"negative target", func(r *CreateCampaignRequest) { r.TargetValue = -1 }, ErrNegativeTarget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := setupTestService(t)
			req := validRequest()
			tt.modify(&req)

			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// ============================================================================
// UPDATE / DELETE
// ============================================================================

func TestUpdate_PartialFields(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	c, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	updated, err := svc.Update(ctx, UpdateCampaignRequest{
		ID:          c.ID,
		TargetValue: ptr(2500.0),
		Visuals:     models.Visuals{models.FormatStory: "https://cdn.example/story.mp4"},
		Performance: &models.Performance{Spend: 400, Revenue: 1600, Clicks: 200, Conversions: 8},
	})
	require.NoError(t, err)

	assert.Equal(t, "Winter Sale", updated.Name)
	assert.InDelta(t, 2500.0, updated.TargetValue, 0.001)
	assert.True(t, updated.Checklist.Visuals)
	assert.True(t, updated.Checklist.Targeting)

	stored, err := svc.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 200, stored.Performance.Clicks)
	assert.Equal(t, "https://cdn.example/story.mp4", stored.Visuals[models.FormatStory])
}

func TestUpdate_ClearsBudgetLink(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	req := validRequest()
	req.BudgetID = "b1"
	c, err := svc.Create(ctx, req)
	require.NoError(t, err)

	_, err = svc.Update(ctx, UpdateCampaignRequest{ID: c.ID, BudgetID: ptr("")})
	require.NoError(t, err)

	stored, err := svc.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.BudgetID)
	assert.False(t, stored.Checklist.Budget)
}

func TestUpdate_RejectsInvalid(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	c, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	_, err = svc.Update(ctx, UpdateCampaignRequest{ID: c.ID, EndDate: ptr("2024-01-01")})
	assert.ErrorIs(t, err, ErrEndBeforeStart)

	_, err = svc.Update(ctx, UpdateCampaignRequest{ID: "missing"})
	assert.ErrorIs(t, err, ErrCampaignNotFound)
}

func TestDelete(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	c, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, c.ID))
	assert.ErrorIs(t, svc.Delete(ctx, c.ID), ErrCampaignNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, ""), ErrInvalidCampaignID)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

// ============================================================================
// BOARD PERSISTENCE
// ============================================================================

func TestSave_WritesStatusOnly(t *testing.T) {
	svc, s := setupTestService(t)
	ctx := context.Background()

	c, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	// a stale copy must not overwrite the name edited elsewhere
	_, err = svc.Update(ctx, UpdateCampaignRequest{ID: c.ID, Name: ptr("Winter Clearance")})
	require.NoError(t, err)

	require.NoError(t, svc.Save(ctx, c.WithStatus(models.CampaignLive)))

	doc, err := s.Get(ctx, models.CollectionCampaigns, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Live", doc["status"])
	assert.Equal(t, "Winter Clearance", doc["name"])

	assert.ErrorIs(t, svc.Save(ctx, c.WithStatus("Archived")), ErrInvalidStatus)
}

func TestSave_DrivesController(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	c, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	var notices []kanban.Notice
	ctrl := kanban.NewController(
		kanban.NewEngine[models.Campaign](svc.Columns()),
		svc,
		kanban.NotifierFunc(func(n kanban.Notice) { notices = append(notices, n) }),
		kanban.WithNoun("Campaign"),
	)

	ctrl.DragStart(c)
	require.True(t, ctrl.Drop(ctx, models.CampaignLive))

	stored, err := svc.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CampaignLive, stored.Status)
	require.Len(t, notices, 1)
	assert.Equal(t, "Status updated to Live!", notices[0].Message)
}

func TestSubscribe_SeesBoardMoves(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	c, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	var latest []models.Campaign
	unsubscribe, err := svc.Subscribe(ctx, func(cs []models.Campaign) { latest = cs })
	require.NoError(t, err)
	defer unsubscribe()

	require.Len(t, latest, 1)
	require.NoError(t, svc.Save(ctx, c.WithStatus(models.CampaignCompleted)))
	require.Len(t, latest, 1)
	assert.Equal(t, models.CampaignCompleted, latest[0].Status)
}

func TestWithColumns(t *testing.T) {
	cols := kanban.MustColumns("Idea", "Running")
	svc := NewService(store.NewMemoryStore(), nil, WithColumns(cols))

	c, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "Idea", c.Status)
}
