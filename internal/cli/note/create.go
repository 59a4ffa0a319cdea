package note

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/adflow/internal/cli"
	noteservice "github.com/thenoetrevino/adflow/internal/services/note"
)

// CreateCmd returns the note create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a markdown note",
		Long: `Create a note. Content is markdown.

Examples:
  adflow note create --title="Brand voice" --content="# Tone\nFriendly, local." --tags=brand,copy
  cat meeting.md | adflow note create --title="Kickoff" --content=-
`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("title", "", "Note title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	cmd.Flags().String("content", "", "Markdown content, use - for stdin (required)")
	if err := cmd.MarkFlagRequired("content"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	cmd.Flags().String("tags", "", "Comma separated tags")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	title, _ := cmd.Flags().GetString("title")
	contentFlag, _ := cmd.Flags().GetString("content")
	tags, _ := cmd.Flags().GetString("tags")

	content, err := cli.ReadText(cmd, contentFlag)
	if err != nil {
		return formatter.Fail(err, "")
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}
	defer cli.CloseQuietly(cliInstance)

	note, err := cliInstance.App.NoteService.Create(ctx, noteservice.CreateNoteRequest{
		Title:   title,
		Content: content,
		Tags:    cli.SplitList(tags),
	})
	if err != nil {
		return formatter.Fail(err, "")
	}

	return formatter.Success(note, func(w io.Writer) {
		fmt.Fprintf(w, "✓ Note '%s' created (ID: %s)\n", note.Title, note.ID)
	})
}
