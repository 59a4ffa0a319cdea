package report

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/adflow/internal/models"
	campaignservice "github.com/thenoetrevino/adflow/internal/services/campaign"
	"github.com/thenoetrevino/adflow/internal/testutil"
	"github.com/thenoetrevino/adflow/internal/testutil/clitest"
)

func TestDashboard(t *testing.T) {
	a := clitest.SetupCLITest(t)
	live := testutil.CreateTestCampaign(t, a, "Winter")
	testutil.CreateTestCampaign(t, a, "Spring")
	testutil.CreateTestTask(t, a, "Shoot", live.ID)
	testutil.CreateTestBudget(t, a, "Q3", "Alberton", 1000)

	status := models.CampaignLive
	_, err := a.CampaignService.Update(context.Background(), campaignservice.UpdateCampaignRequest{ID: live.ID, Status: &status})
	require.NoError(t, err)

	res := clitest.ExecuteCLICommand(t, a, DashboardCmd(), "--json")
	require.NoError(t, res.Err, res.Stdout)

	data := clitest.Data(t, res.Stdout)
	assert.Equal(t, float64(1), data["activeCampaigns"])
	assert.Equal(t, float64(1), data["creativesInProgress"])
	assert.Equal(t, float64(1), data["tasksToDo"])
	assert.Equal(t, 1000.0, data["totalAllocated"])

	res = clitest.ExecuteCLICommand(t, a, DashboardCmd())
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stdout, "R 1,000.00")
	assert.Contains(t, res.Stdout, "Shoot")
}

func TestAnalytics(t *testing.T) {
	a := clitest.SetupCLITest(t)
	c := testutil.CreateTestCampaign(t, a, "Winter")
	testutil.CreateTestCampaign(t, a, "Idle")

	_, err := a.CampaignService.Update(context.Background(), campaignservice.UpdateCampaignRequest{
		ID:          c.ID,
		Performance: &models.Performance{Spend: 300, Revenue: 900, Clicks: 120},
	})
	require.NoError(t, err)

	res := clitest.ExecuteCLICommand(t, a, AnalyticsCmd(), "--json")
	require.NoError(t, res.Err, res.Stdout)

	data := clitest.Data(t, res.Stdout)
	totals := data["totals"].(map[string]any)
	assert.Equal(t, 300.0, totals["spend"])
	assert.Equal(t, float64(120), totals["clicks"])

	rows := data["campaigns"].([]any)
	require.Len(t, rows, 2)
	winter := rows[0].(map[string]any)
	assert.Equal(t, 2.5, winter["cpc"])
	assert.Equal(t, 3.0, winter["roas"])
	idle := rows[1].(map[string]any)
	assert.Equal(t, 0.0, idle["cpc"])
	assert.Equal(t, 0.0, idle["roas"])
}

func TestSearch(t *testing.T) {
	a := clitest.SetupCLITest(t)
	c := testutil.CreateTestCampaign(t, a, "Winter Sale")
	testutil.CreateTestNote(t, a, "Unrelated", "Nothing here")

	res := clitest.ExecuteCLICommand(t, a, SearchCmd(), "winter", "sale", "--quiet")
	require.NoError(t, res.Err, res.Stderr)
	ids := strings.Fields(res.Stdout)
	require.NotEmpty(t, ids)
	assert.Equal(t, c.ID, ids[0])

	res = clitest.ExecuteCLICommand(t, a, SearchCmd(), "zzzzqqqq", "--json")
	require.NoError(t, res.Err)
	out := clitest.ParseJSON(t, res.Stdout)
	assert.Empty(t, out["data"])
}
