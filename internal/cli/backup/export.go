package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/adflow/internal/cli"
)

// ExportCmd returns the backup export subcommand
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [file|-]",
		Short: "Write every campaign, task, note and budget to a JSON file",
		Long: `Write a full backup as indented JSON with one array per collection.
The file defaults to ` + DefaultFile + `; "-" writes to stdout.

Examples:
  adflow backup export
  adflow backup export ~/backups/adflow-$(date +%F).json
  adflow backup export - | gzip > adflow.json.gz
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runExport,
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	path := DefaultFile
	if len(args) == 1 {
		path = args[0]
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}
	defer cli.CloseQuietly(cliInstance)

	if path == "-" {
		if err := cliInstance.App.Backup.Export(ctx, cmd.OutOrStdout()); err != nil {
			return formatter.Fail(err, "")
		}
		return nil
	}

	if err := writeFile(path, func(w io.Writer) error {
		return cliInstance.App.Backup.Export(ctx, w)
	}); err != nil {
		return formatter.Fail(err, "")
	}

	if formatter.Quiet {
		return nil
	}
	return formatter.Success(map[string]string{"file": path}, func(w io.Writer) {
		fmt.Fprintf(w, "✓ Backup written to %s\n", path)
	})
}

// writeFile writes through a temp file in the same directory so a failed
// export never leaves a truncated backup behind.
func writeFile(path string, write func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".adflow-backup-*")
	if err != nil {
		return fmt.Errorf("failed to create backup file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}
	return os.Rename(tmp.Name(), path)
}
