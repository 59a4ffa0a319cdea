package note

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/adflow/internal/cli"
	"github.com/thenoetrevino/adflow/internal/cli/styles"
)

// ShowCmd returns the note show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Render a note in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	cmd.Flags().Int("width", 80, "Wrap width")
	cmd.Flags().Bool("raw", false, "Print the markdown source")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	width, _ := cmd.Flags().GetInt("width")
	raw, _ := cmd.Flags().GetBool("raw")

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
	if formatter.JSON || formatter.Quiet || raw {
		return formatter.Success(note, func(w io.Writer) {
			fmt.Fprintln(w, note.Content)
		})
	}

	rendered, err := service.RenderMarkdown(ctx, note.ID, width)
	if err != nil {
		return formatter.Fail(err, "Use --raw to print the markdown source")
	}
	fmt.Fprintln(formatter.Out, styles.TitleStyle.Render(note.Title))
	fmt.Fprintln(formatter.Out, rendered)
	return nil
}
