package backup

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/adflow/internal/cli"
	"github.com/thenoetrevino/adflow/internal/models"
	"github.com/thenoetrevino/adflow/internal/testutil"
	"github.com/thenoetrevino/adflow/internal/testutil/clitest"
)

func TestExportImportRoundTrip(t *testing.T) {
	src := clitest.SetupCLITest(t)
	c := testutil.CreateTestCampaign(t, src, "Winter")
	testutil.CreateTestTask(t, src, "Shoot", c.ID)
	testutil.CreateTestBudget(t, src, "Q3", "Alberton", 1000)
	testutil.CreateTestNote(t, src, "Voice", "Friendly")

	path := filepath.Join(t.TempDir(), "backup.json")
	res := clitest.ExecuteCLICommand(t, src, BackupCmd(), "export", path)
	require.NoError(t, res.Err, res.Stderr)
	assert.Contains(t, res.Stdout, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	dst := clitest.SetupCLITest(t)
	res = clitest.ExecuteWithInput(t, dst, BackupCmd(), string(data), "import", "-", "--json")
	require.NoError(t, res.Err, res.Stdout)

	counts := clitest.Data(t, res.Stdout)
	for _, name := range []string{models.CollectionCampaigns, models.CollectionTasks, models.CollectionBudgets, models.CollectionNotes} {
		assert.Equal(t, float64(1), counts[name], name)
	}

	got, err := dst.CampaignService.Get(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Winter", got.Name)

	// importing again upserts by id
	res = clitest.ExecuteWithInput(t, dst, BackupCmd(), string(data), "import", "-")
	require.NoError(t, res.Err)
	tasks, err := dst.TaskService.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestExportToStdout(t *testing.T) {
	a := clitest.SetupCLITest(t)
	testutil.CreateTestNote(t, a, "Voice", "Friendly")

	res := clitest.ExecuteCLICommand(t, a, BackupCmd(), "export", "-")
	require.NoError(t, res.Err)

	out := clitest.ParseJSON(t, res.Stdout)
	assert.Len(t, out[models.CollectionNotes], 1)
	assert.Empty(t, out[models.CollectionCampaigns])
}

func TestImportRejectsPartialBackup(t *testing.T) {
	a := clitest.SetupCLITest(t)

	res := clitest.ExecuteWithInput(t, a, BackupCmd(), `{"campaigns": []}`, "import", "-")
	assert.Equal(t, cli.ExitDataErr, res.ExitCode())
	assert.Contains(t, res.Stderr, "Hint")

	res = clitest.ExecuteCLICommand(t, a, BackupCmd(), "import", filepath.Join(t.TempDir(), "missing.json"))
	assert.Equal(t, cli.ExitFailure, res.ExitCode())
}

func TestImportCSV(t *testing.T) {
	a := clitest.SetupCLITest(t)
	c := testutil.CreateTestCampaign(t, a, "Winter")

	tasks := "Text,Campaign ID,Priority\nShoot,," + "Low\nApprove," + c.ID + ",High\n"
	res := clitest.ExecuteWithInput(t, a, BackupCmd(), tasks, "import-csv", "tasks", "-", "--json")
	require.NoError(t, res.Err, res.Stdout)
	assert.Equal(t, float64(2), clitest.Data(t, res.Stdout)["imported"])

	list, err := a.TaskService.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Winter", list[1].Campaign)

	analytics := "campaign_id,date,impressions,clicks,spend\n" + c.ID + ",2026-05-01,\"1,200\",40,350.50\n"
	res = clitest.ExecuteWithInput(t, a, BackupCmd(), analytics, "import-csv", "analytics", "-")
	require.NoError(t, res.Err, res.Stderr)
	assert.Contains(t, res.Stdout, "1")
}

func TestImportCSVErrors(t *testing.T) {
	a := clitest.SetupCLITest(t)

	res := clitest.ExecuteWithInput(t, a, BackupCmd(), "name,total_budget\nQ3,100\n", "import-csv", "budgets", "-")
	assert.Equal(t, cli.ExitDataErr, res.ExitCode())
	assert.Contains(t, res.Stderr, "branch")

	res = clitest.ExecuteWithInput(t, a, BackupCmd(), "text\nx\n", "import-csv", "notes", "-")
	assert.Equal(t, cli.ExitDataErr, res.ExitCode())

	rows := strings.Join([]string{
		"name,branch,total_budget",
		"Q3,Alberton,100",
		"Q4,Nowhere,100",
	}, "\n")
	res = clitest.ExecuteWithInput(t, a, BackupCmd(), rows, "import-csv", "budgets", "-")
	assert.Equal(t, cli.ExitValidation, res.ExitCode())

	budgets, err := a.BudgetService.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, budgets, 1)
}
