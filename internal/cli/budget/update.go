package budget

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/adflow/internal/analytics"
	"github.com/thenoetrevino/adflow/internal/cli"
	budgetservice "github.com/thenoetrevino/adflow/internal/services/budget"
)

// UpdateCmd returns the budget update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a budget",
		Long: `Update a budget. Only flags that are given change.

Examples:
  adflow budget update b12c --spent=14250.50
  adflow budget update b12c --status=Live --daily=900
`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().String("name", "", "Budget name")
	cmd.Flags().String("branch", "", "Branch")
	addAmountFlags(cmd)

	cli.AddOutputFlags(cmd)
	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	flags := cmd.Flags()

	req := budgetservice.UpdateBudgetRequest{ID: args[0]}
	req.Name = changedString(cmd, "name")
	req.Status = changedString(cmd, "status")
	req.StartDate = changedString(cmd, "start")
	req.EndDate = changedString(cmd, "end")
	req.TotalBudget = changedFloat(cmd, "total")
	req.DailyBudget = changedFloat(cmd, "daily")
	req.Spent = changedFloat(cmd, "spent")
	if flags.Changed("branch") {
		v, _ := flags.GetString("branch")
		branch, err := cli.ParseBranch(v)
		if err != nil {
			return formatter.Fail(err, "")
		}
		req.Branch = &branch
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}
	defer cli.CloseQuietly(cliInstance)

	budget, err := cliInstance.App.BudgetService.Update(ctx, req)
	if err != nil {
		return formatter.Fail(err, "")
	}

	return formatter.Success(budget, func(w io.Writer) {
		fmt.Fprintf(w, "✓ Budget '%s' updated\n", budget.Name)
		fmt.Fprintf(w, "  Remaining: %s\n", analytics.Currency(budget.Remaining()))
	})
}

func changedString(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

func changedFloat(cmd *cobra.Command, name string) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetFloat64(name)
	return &v
}
