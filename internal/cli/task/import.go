package task

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/adflow/internal/cli"
)

// ImportCmd returns the task import subcommand
func ImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file.json|->",
		Short: "Import tasks from a JSON array",
		Long: `Create one task per entry of a JSON array. Every entry is validated
before anything is written.

Each entry has "text" and optionally "campaignId" or "campaign",
"priority" and "status".

Examples:
  adflow task import tasks.json
  cat tasks.json | adflow task import - --json
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

	n, err := cliInstance.App.TaskService.ImportJSON(ctx, in)
	if err != nil {
		return formatter.Fail(err, "")
	}

	return formatter.Success(map[string]int{"imported": n}, func(w io.Writer) {
		fmt.Fprintf(w, "✓ Imported %d task(s)\n", n)
	})
}
