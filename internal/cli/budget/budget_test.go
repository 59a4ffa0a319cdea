package budget

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/adflow/internal/cli"
	"github.com/thenoetrevino/adflow/internal/models"
	"github.com/thenoetrevino/adflow/internal/testutil"
	"github.com/thenoetrevino/adflow/internal/testutil/clitest"
)

func TestCreateDefaults(t *testing.T) {
	a := clitest.SetupCLITest(t)

	res := clitest.ExecuteCLICommand(t, a, BudgetCmd(),
		"create", "--name", "Q3", "--branch", "vanderbijlpark", "--total", "50000", "--json")
	require.NoError(t, res.Err, res.Stdout)

	data := clitest.Data(t, res.Stdout)
	assert.Equal(t, "Vanderbijlpark", data["branch"])
	assert.Equal(t, models.DefaultBudgetStatus, data["status"])
	assert.Equal(t, models.Today(), data["startDate"])
	assert.Equal(t, 50000.0, data["totalBudget"])
}

func TestCreateRejects(t *testing.T) {
	a := clitest.SetupCLITest(t)

	long := strings.Repeat("x", models.MaxBudgetNameLength+1)
	res := clitest.ExecuteCLICommand(t, a, BudgetCmd(), "create", "--name", long, "--branch", "National")
	assert.Equal(t, cli.ExitValidation, res.ExitCode())

	res = clitest.ExecuteCLICommand(t, a, BudgetCmd(), "create", "--name", "Q3", "--branch", "National", "--total", "-5")
	assert.Equal(t, cli.ExitValidation, res.ExitCode())
}

func TestUpdateAndStats(t *testing.T) {
	a := clitest.SetupCLITest(t)
	alberton := testutil.CreateTestBudget(t, a, "A", "Alberton", 1000)
	testutil.CreateTestBudget(t, a, "B", "Sasolburg", 500)

	res := clitest.ExecuteCLICommand(t, a, BudgetCmd(),
		"update", alberton.ID, "--spent", "250", "--status", "Live", "--daily", "40")
	require.NoError(t, res.Err, res.Stderr)

	res = clitest.ExecuteCLICommand(t, a, BudgetCmd(), "stats", "--json")
	require.NoError(t, res.Err)
	data := clitest.Data(t, res.Stdout)
	assert.Equal(t, float64(2), data["count"])
	assert.Equal(t, 1500.0, data["total"])
	assert.Equal(t, 250.0, data["spent"])
	assert.Equal(t, 1250.0, data["remaining"])
	assert.Equal(t, 40.0, data["daily"])
	assert.Equal(t, 250.0, data["spentByBranch"].(map[string]any)["Alberton"])

	res = clitest.ExecuteCLICommand(t, a, BudgetCmd(), "stats")
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stdout, "R 1,250.00")
}

func TestListAndDelete(t *testing.T) {
	a := clitest.SetupCLITest(t)
	b := testutil.CreateTestBudget(t, a, "A", "Alberton", 1000)
	testutil.CreateTestBudget(t, a, "B", "Sasolburg", 500)

	res := clitest.ExecuteCLICommand(t, a, BudgetCmd(), "list", "--branch", "alberton", "--quiet")
	require.NoError(t, res.Err)
	assert.Equal(t, b.ID+"\n", res.Stdout)

	res = clitest.ExecuteCLICommand(t, a, BudgetCmd(), "delete", b.ID, "--quiet")
	require.NoError(t, res.Err)
	assert.Empty(t, res.Stdout)

	budgets, err := a.BudgetService.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, budgets, 1)
}
