package note

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/adflow/internal/cli"
	noteservice "github.com/thenoetrevino/adflow/internal/services/note"
)

// UpdateCmd returns the note update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a note",
		Long: `Update a note. Only flags that are given change; --tags="" clears tags.

Examples:
  adflow note update 5d2e --title="Brand voice v2"
  cat voice.md | adflow note update 5d2e --content=-
`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().String("title", "", "Note title")
	cmd.Flags().String("content", "", "Markdown content (use - for stdin)")
	cmd.Flags().String("tags", "", "Comma separated tags")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	flags := cmd.Flags()

	req := noteservice.UpdateNoteRequest{ID: args[0]}
	if flags.Changed("title") {
		title, _ := flags.GetString("title")
		req.Title = &title
	}
	if flags.Changed("content") {
		v, _ := flags.GetString("content")
		content, err := cli.ReadText(cmd, v)
		if err != nil {
			return formatter.Fail(err, "")
		}
		req.Content = &content
	}
	if flags.Changed("tags") {
		v, _ := flags.GetString("tags")
		tags := cli.SplitList(v)
		req.Tags = &tags
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}
	defer cli.CloseQuietly(cliInstance)

	note, err := cliInstance.App.NoteService.Update(ctx, req)
	if err != nil {
		return formatter.Fail(err, "")
	}

	return formatter.Success(note, func(w io.Writer) {
		fmt.Fprintf(w, "✓ Note '%s' updated\n", note.Title)
	})
}
