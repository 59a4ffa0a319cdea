package note

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/adflow/internal/cli"
)

// DeleteCmd returns the note delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a note",
		Long:  "Delete a note by ID (requires confirmation unless --force, --json or --quiet).",
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

	service := cliInstance.App.NoteService
	note, err := service.Get(ctx, args[0])
	if err != nil {
		return formatter.Fail(err, "Use 'adflow note list' to see available notes")
	}

	if !cli.SkipConfirm(cmd) && !cli.Confirm(cmd, fmt.Sprintf("Delete note '%s'?", note.Title)) {
		fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
		return nil
	}

	if err := service.Delete(ctx, note.ID); err != nil {
		return formatter.Fail(err, "")
	}

	if formatter.Quiet {
		return nil
	}
	return formatter.Success(map[string]string{"id": note.ID}, func(w io.Writer) {
		fmt.Fprintln(w, "✓ Note deleted.")
	})
}
