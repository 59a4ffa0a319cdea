package budget

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/adflow/internal/cli"
	"github.com/thenoetrevino/adflow/internal/models"
)

// ListCmd returns the budget list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List budgets",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	cmd.Flags().String("branch", "", "Only budgets for this branch")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	branchFlag, _ := cmd.Flags().GetString("branch")
	var branch string
	if branchFlag != "" {
		var err error
		if branch, err = cli.ParseBranch(branchFlag); err != nil {
			return formatter.Fail(err, "")
		}
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}
	defer cli.CloseQuietly(cliInstance)

	budgets, err := cliInstance.App.BudgetService.List(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}

	filtered := make([]models.Budget, 0, len(budgets))
	for _, b := range budgets {
		if branch == "" || b.Branch == branch {
			filtered = append(filtered, b)
		}
	}

	return cli.SuccessList(formatter, filtered, func(w io.Writer) {
		printBudgets(w, filtered)
	})
}
