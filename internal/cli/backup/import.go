package backup

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/adflow/internal/cli"
)

// ImportCmd returns the backup import subcommand
func ImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file|->",
		Short: "Restore a JSON backup",
		Long: `Upsert every document of a backup written by "adflow backup export".
Documents keep their IDs, so importing twice is harmless. All four
collections must be present or nothing is written.
`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	in, err := cli.OpenInput(cmd, args[0])
	if err != nil {
		return formatter.Fail(err, "")
	}
	defer in.Close()

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}
	defer cli.CloseQuietly(cliInstance)

	counts, err := cliInstance.App.Backup.Import(ctx, in)
	if err != nil {
		return formatter.Fail(err, "Backups must contain campaigns, tasks, notes and budgets arrays")
	}

	return formatter.Success(counts, func(w io.Writer) {
		names := make([]string, 0, len(counts))
		for name := range counts {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Fprintln(w, "✓ Backup imported")
		for _, name := range names {
			fmt.Fprintf(w, "  %s: %d\n", name, counts[name])
		}
	})
}
