package analytics

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/adflow/internal/models"
)

func TestComputeTotalsAndRows(t *testing.T) {
	campaigns := []models.Campaign{
		{ID: "c1", Name: "Winter Sale", Performance: models.Performance{Spend: 1000, Revenue: 4500, Clicks: 300, Conversions: 12}},
		{ID: "c2", Name: "Brand Refresh", Performance: models.Performance{Spend: 0, Revenue: 0, Clicks: 0}},
		{ID: "c3", Name: "Leads Push", Performance: models.Performance{Spend: 250, Revenue: 100, Clicks: 7, Conversions: 3}},
	}

	assert.Equal(t, Totals{Spend: 1250, Revenue: 4600, Clicks: 307, Conversions: 15}, ComputeTotals(campaigns))

	want := []Row{
		{ID: "c1", Name: "Winter Sale", Spend: 1000, Revenue: 4500, CPC: 3.33, ROAS: 4.5},
		{ID: "c2", Name: "Brand Refresh"},
		{ID: "c3", Name: "Leads Push", Spend: 250, Revenue: 100, CPC: 35.71, ROAS: 0.4},
	}
	if diff := cmp.Diff(want, Rows(campaigns)); diff != "" {
		t.Errorf("Rows() mismatch (-want +got):\n%s", diff)
	}
}

func TestOverview(t *testing.T) {
	var campaigns []models.Campaign
	for i, status := range []string{"Live", "Live", "Planning", "In Progress", "Completed", "Planning", "Live"} {
		campaigns = append(campaigns, models.Campaign{ID: fmt.Sprintf("c%d", i), Status: status})
	}
	tasks := []models.Task{
		{ID: "t1", Status: models.TaskToDo},
		{ID: "t2", Status: models.TaskDone},
		{ID: "t3", Status: models.TaskInProgress},
		{ID: "t4", Status: models.TaskToDo},
	}
	budgets := []models.Budget{{TotalBudget: 1500}, {TotalBudget: 2500.5}}

	d := Overview(campaigns, tasks, budgets)
	assert.Equal(t, 3, d.ActiveCampaigns)
	assert.Equal(t, 3, d.CreativesInProgress)
	assert.Equal(t, 2, d.TasksToDo)
	assert.InDelta(t, 4000.5, d.TotalAllocated, 0.001)
	require.Len(t, d.RecentCampaigns, RecentLimit)
	assert.Equal(t, "c0", d.RecentCampaigns[0].ID)

	var upcoming []string
	for _, task := range d.UpcomingTasks {
		upcoming = append(upcoming, task.ID)
	}
	assert.Equal(t, []string{"t1", "t3", "t4"}, upcoming)
}

func TestOverview_Empty(t *testing.T) {
	d := Overview(nil, nil, nil)
	assert.NotNil(t, d.RecentCampaigns)
	assert.NotNil(t, d.UpcomingTasks)
	assert.Zero(t, d.TotalAllocated)
}

func TestCurrency(t *testing.T) {
	assert.Equal(t, "R 12,345.50", Currency(12345.5))
	assert.Equal(t, "R 0.00", Currency(0))
	assert.Equal(t, "R 1,000,000.00", Currency(1e6))
}

type listFunc[T any] func(ctx context.Context) ([]T, error)

func (f listFunc[T]) List(ctx context.Context) ([]T, error) { return f(ctx) }

func TestLoad(t *testing.T) {
	ctx := context.Background()
	campaigns := listFunc[models.Campaign](func(context.Context) ([]models.Campaign, error) {
		return []models.Campaign{{ID: "c1"}}, nil
	})
	tasks := listFunc[models.Task](func(context.Context) ([]models.Task, error) {
		return []models.Task{{ID: "t1"}, {ID: "t2"}}, nil
	})
	budgets := listFunc[models.Budget](func(context.Context) ([]models.Budget, error) {
		return nil, nil
	})

	snap, err := Load(ctx, campaigns, tasks, budgets)
	require.NoError(t, err)
	assert.Len(t, snap.Campaigns, 1)
	assert.Len(t, snap.Tasks, 2)

	boom := errors.New("store down")
	failing := listFunc[models.Budget](func(context.Context) ([]models.Budget, error) {
		return nil, boom
	})
	_, err = Load(ctx, campaigns, tasks, failing)
	assert.ErrorIs(t, err, boom)
}
