package budget

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/adflow/internal/analytics"
	"github.com/thenoetrevino/adflow/internal/cli"
	budgetservice "github.com/thenoetrevino/adflow/internal/services/budget"
)

// CreateCmd returns the budget create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a budget",
		Long: `Create a budget for a branch. The start date defaults to today and the
status to Planning.

Examples:
  adflow budget create --name="Q3 Alberton" --branch=Alberton --total=50000 --daily=800
  adflow budget create --name="Launch" --branch=National --total=120000 --status=Live --quiet
`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("name", "", "Budget name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	cmd.Flags().String("branch", "", "Branch (required)")
	if err := cmd.MarkFlagRequired("branch"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	addAmountFlags(cmd)

	cli.AddOutputFlags(cmd)
	return cmd
}

// addAmountFlags registers the flags shared by create and update
func addAmountFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("total", 0, "Total budget")
	cmd.Flags().Float64("daily", 0, "Daily budget")
	cmd.Flags().Float64("spent", 0, "Amount spent so far")
	cmd.Flags().String("status", "", "Status, e.g. Planning, Live, Paused")
	cmd.Flags().String("start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().String("end", "", "End date (YYYY-MM-DD)")
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	name, _ := cmd.Flags().GetString("name")
	branchFlag, _ := cmd.Flags().GetString("branch")
	total, _ := cmd.Flags().GetFloat64("total")
	daily, _ := cmd.Flags().GetFloat64("daily")
	spent, _ := cmd.Flags().GetFloat64("spent")
	status, _ := cmd.Flags().GetString("status")
	start, _ := cmd.Flags().GetString("start")
	end, _ := cmd.Flags().GetString("end")

	branch, err := cli.ParseBranch(branchFlag)
	if err != nil {
		return formatter.Fail(err, "")
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}
	defer cli.CloseQuietly(cliInstance)

	budget, err := cliInstance.App.BudgetService.Create(ctx, budgetservice.CreateBudgetRequest{
		Name:        name,
		Branch:      branch,
		TotalBudget: total,
		DailyBudget: daily,
		Spent:       spent,
		Status:      status,
		StartDate:   start,
		EndDate:     end,
	})
	if err != nil {
		return formatter.Fail(err, "")
	}

	return formatter.Success(budget, func(w io.Writer) {
		fmt.Fprintf(w, "✓ Budget '%s' created (ID: %s)\n", budget.Name, budget.ID)
		fmt.Fprintf(w, "  Total: %s\n", analytics.Currency(budget.TotalBudget))
		fmt.Fprintf(w, "  Status: %s\n", budget.Status)
	})
}
