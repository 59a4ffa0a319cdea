package budget

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/adflow/internal/cli"
)

// DeleteCmd returns the budget delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a budget",
		Long:  "Delete a budget by ID (requires confirmation unless --force, --json or --quiet).",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}

	cmd.Flags().Bool("force", false, "Skip confirmation")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}
	defer cli.CloseQuietly(cliInstance)

	service := cliInstance.App.BudgetService
	budget, err := service.Get(ctx, args[0])
	if err != nil {
		return formatter.Fail(err, "Use 'adflow budget list' to see available budgets")
	}

	if !cli.SkipConfirm(cmd) && !cli.Confirm(cmd, fmt.Sprintf("Delete budget '%s'?", budget.Name)) {
		fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
		return nil
	}

	if err := service.Delete(ctx, budget.ID); err != nil {
		return formatter.Fail(err, "")
	}

	if formatter.Quiet {
		return nil
	}
	return formatter.Success(map[string]string{"id": budget.ID}, func(w io.Writer) {
		fmt.Fprintf(w, "✓ Budget '%s' deleted\n", budget.Name)
	})
}
