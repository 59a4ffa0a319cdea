package budget

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/adflow/internal/cli"
)

// StatsCmd returns the budget stats subcommand
func StatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show totals across all budgets",
		Long:  "Show allocated, spent and remaining totals, the daily spend of Live budgets and spend per branch.",
		Args:  cobra.NoArgs,
		RunE:  runStats,
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}
	defer cli.CloseQuietly(cliInstance)

	stats, err := cliInstance.App.BudgetService.Stats(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}

	return formatter.Success(stats, func(w io.Writer) {
		printStats(w, stats)
	})
}
