package backup

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/adflow/internal/cli"
	"github.com/thenoetrevino/adflow/internal/models"
)

// ImportCSVCmd returns the backup import-csv subcommand
func ImportCSVCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import-csv <tasks|budgets|analytics> <file|->",
		Short: "Import rows from a CSV file",
		Long: `Create one document per CSV row. The header row names the fields.

  tasks      text (required), campaign_id, priority, status
  budgets    name, branch (required), total_budget, daily_budget, spent, status, start_date, end_date
  analytics  campaign_id, date (required), impressions, clicks, spend

Rows before a failing row stay imported.

Examples:
  adflow backup import-csv tasks tasks.csv
  adflow backup import-csv analytics meta-export.csv --json
`,
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{models.CollectionTasks, models.CollectionBudgets, models.CollectionAnalytics},
		RunE:      runImportCSV,
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runImportCSV(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	collection := args[0]

	in, err := cli.OpenInput(cmd, args[1])
	if err != nil {
		return formatter.Fail(err, "")
	}
	defer in.Close()

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}
	defer cli.CloseQuietly(cliInstance)

	n, err := cliInstance.App.Backup.ImportCSV(ctx, collection, in)
	if err != nil {
		if n > 0 {
			err = fmt.Errorf("%w (%d row(s) imported before the error)", err, n)
		}
		return formatter.Fail(err, "")
	}

	return formatter.Success(map[string]any{"collection": collection, "imported": n}, func(w io.Writer) {
		fmt.Fprintf(w, "✓ Imported %d %s row(s)\n", n, collection)
	})
}
