package note

import (
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/adflow/internal/cli"
	"github.com/thenoetrevino/adflow/internal/models"
)

// ListCmd returns the note list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	cmd.Flags().String("tag", "", "Only notes with this tag")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	tag, _ := cmd.Flags().GetString("tag")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}
	defer cli.CloseQuietly(cliInstance)

	notes, err := cliInstance.App.NoteService.List(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}

	filtered := make([]models.Note, 0, len(notes))
	for _, n := range notes {
		if tag == "" || slices.Contains(n.Tags, tag) {
			filtered = append(filtered, n)
		}
	}

	return cli.SuccessList(formatter, filtered, func(w io.Writer) {
		printNotes(w, filtered)
	})
}
