package campaign

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/adflow/internal/cli"
	"github.com/thenoetrevino/adflow/internal/models"
	"github.com/thenoetrevino/adflow/internal/testutil"
	"github.com/thenoetrevino/adflow/internal/testutil/clitest"
)

func TestCreate(t *testing.T) {
	a := clitest.SetupCLITest(t)

	res := clitest.ExecuteCLICommand(t, a, CampaignCmd(),
		"create", "--name", "Winter Sale", "--branch", "alberton", "--objective", "leads",
		"--text", "Beat the cold", "--headline", "30% off", "--visual", "4:5=https://cdn/x.png",
		"--target", "25000", "--json")
	require.NoError(t, res.Err, res.Stdout)

	data := clitest.Data(t, res.Stdout)
	assert.Equal(t, "Winter Sale", data["name"])
	assert.Equal(t, "Alberton", data["branch"])
	assert.Equal(t, "Leads", data["objective"])
	assert.Equal(t, models.CampaignPlanning, data["status"])

	checklist := data["checklist"].(map[string]any)
	assert.Equal(t, true, checklist["primaryText"])
	assert.Equal(t, true, checklist["headlines"])
	assert.Equal(t, true, checklist["visuals"])
	assert.Equal(t, true, checklist["targeting"])
	assert.Equal(t, false, checklist["budget"])

	campaigns, err := a.CampaignService.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, campaigns, 1)
}

func TestCreateQuietPrintsID(t *testing.T) {
	a := clitest.SetupCLITest(t)

	res := clitest.ExecuteCLICommand(t, a, CampaignCmd(),
		"create", "--name", "X", "--branch", "National", "--quiet")
	require.NoError(t, res.Err)

	campaigns, err := a.CampaignService.List(context.Background())
	require.NoError(t, err)
	require.Len(t, campaigns, 1)
	assert.Equal(t, campaigns[0].ID+"\n", res.Stdout)
}

func TestCreateTextFromStdin(t *testing.T) {
	a := clitest.SetupCLITest(t)

	res := clitest.ExecuteWithInput(t, a, CampaignCmd(), "Long copy from a file",
		"create", "--name", "X", "--branch", "National", "--text", "-", "--json")
	require.NoError(t, res.Err)
	assert.Equal(t, "Long copy from a file", clitest.Data(t, res.Stdout)["primaryText"])
}

func TestCreateValidation(t *testing.T) {
	a := clitest.SetupCLITest(t)

	tests := []struct {
		name string
		args []string
		code int
	}{
		{"unknown branch", []string{"--name", "X", "--branch", "Mars"}, cli.ExitValidation},
		{"unknown objective", []string{"--name", "X", "--branch", "National", "--objective", "Fame"}, cli.ExitValidation},
		{"bad date", []string{"--name", "X", "--branch", "National", "--start", "01/06/2026"}, cli.ExitValidation},
		{"end before start", []string{"--name", "X", "--branch", "National", "--start", "2026-06-10", "--end", "2026-06-01"}, cli.ExitValidation},
		{"unknown format", []string{"--name", "X", "--branch", "National", "--visual", "16:9=https://x"}, cli.ExitValidation},
		{"unknown column", []string{"--name", "X", "--branch", "National", "--status", "Archived"}, cli.ExitValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"create", "--json"}, tt.args...)
			res := clitest.ExecuteCLICommand(t, a, CampaignCmd(), args...)
			require.Error(t, res.Err)
			assert.Equal(t, tt.code, res.ExitCode())

			out := clitest.ParseJSON(t, res.Stdout)
			assert.Equal(t, false, out["success"])
		})
	}

	campaigns, err := a.CampaignService.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, campaigns)
}

func TestListFilters(t *testing.T) {
	a := clitest.SetupCLITest(t)
	ctx := context.Background()

	winter := testutil.CreateTestCampaign(t, a, "Winter")
	testutil.CreateTestCampaign(t, a, "Spring")
	_, err := cli.MoveItem(ctx, winter, a.CampaignService.Columns(), a.CampaignService, "live", "Campaign", a.Logger())
	require.NoError(t, err)

	res := clitest.ExecuteCLICommand(t, a, CampaignCmd(), "list", "--status", "live", "--quiet")
	require.NoError(t, res.Err)
	assert.Equal(t, winter.ID+"\n", res.Stdout)

	res = clitest.ExecuteCLICommand(t, a, CampaignCmd(), "list")
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stdout, "Winter")
	assert.Contains(t, res.Stdout, "Spring")
	assert.Contains(t, res.Stdout, "2 campaign(s)")
}

func TestShowNotFound(t *testing.T) {
	a := clitest.SetupCLITest(t)

	res := clitest.ExecuteCLICommand(t, a, CampaignCmd(), "show", "missing")
	require.Error(t, res.Err)
	assert.Equal(t, cli.ExitNotFound, res.ExitCode())
	assert.Contains(t, res.Stderr, "campaign list")
}

func TestUpdateRecomputesChecklist(t *testing.T) {
	a := clitest.SetupCLITest(t)
	c := testutil.CreateTestCampaign(t, a, "Winter")
	b := testutil.CreateTestBudget(t, a, "Q3", "National", 1000)

	res := clitest.ExecuteCLICommand(t, a, CampaignCmd(),
		"update", c.ID, "--budget", b.ID, "--spend", "120", "--clicks", "40", "--json")
	require.NoError(t, res.Err, res.Stdout)

	got, err := a.CampaignService.Get(context.Background(), c.ID)
	require.NoError(t, err)
	assert.True(t, got.Checklist.Budget)
	assert.Equal(t, 120.0, got.Performance.Spend)
	assert.Equal(t, 40, got.Performance.Clicks)
	assert.Equal(t, "Winter", got.Name)
}

func TestDelete(t *testing.T) {
	a := clitest.SetupCLITest(t)
	c := testutil.CreateTestCampaign(t, a, "Winter")

	t.Run("declined confirmation keeps it", func(t *testing.T) {
		res := clitest.ExecuteWithInput(t, a, CampaignCmd(), "n\n", "delete", c.ID)
		require.NoError(t, res.Err)
		assert.Contains(t, res.Stdout, "Cancelled")

		_, err := a.CampaignService.Get(context.Background(), c.ID)
		assert.NoError(t, err)
	})

	t.Run("confirmed", func(t *testing.T) {
		res := clitest.ExecuteWithInput(t, a, CampaignCmd(), "y\n", "delete", c.ID)
		require.NoError(t, res.Err)
		assert.Contains(t, res.Stdout, "deleted")

		_, err := a.CampaignService.Get(context.Background(), c.ID)
		assert.Error(t, err)
	})
}

func TestMove(t *testing.T) {
	a := clitest.SetupCLITest(t)
	c := testutil.CreateTestCampaign(t, a, "Winter")

	res := clitest.ExecuteCLICommand(t, a, CampaignCmd(), "move", c.ID, "next", "--json")
	require.NoError(t, res.Err)
	data := clitest.Data(t, res.Stdout)
	assert.Equal(t, models.CampaignPlanning, data["from"])
	assert.Equal(t, models.CampaignInProgress, data["to"])
	assert.Equal(t, true, data["moved"])

	res = clitest.ExecuteCLICommand(t, a, CampaignCmd(), "move", c.ID, "Live")
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stdout, "Status updated to Live!")

	res = clitest.ExecuteCLICommand(t, a, CampaignCmd(), "move", c.ID, "prev", "--quiet")
	require.NoError(t, res.Err)
	assert.Equal(t, c.ID+"\n", res.Stdout)

	got, err := a.CampaignService.Get(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CampaignInProgress, got.Status)
}

func TestMovePastFirstColumn(t *testing.T) {
	a := clitest.SetupCLITest(t)
	c := testutil.CreateTestCampaign(t, a, "Winter")

	res := clitest.ExecuteCLICommand(t, a, CampaignCmd(), "move", c.ID, "prev")
	require.Error(t, res.Err)
	assert.Equal(t, cli.ExitValidation, res.ExitCode())
	assert.Contains(t, res.Stderr, "first column")
}
