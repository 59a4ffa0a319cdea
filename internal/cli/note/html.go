package note

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/adflow/internal/cli"
)

// HTMLCmd returns the note html subcommand
func HTMLCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "html <id>",
		Short: "Export a note as an HTML fragment",
		Long: `Convert a note's markdown to HTML, for pasting into a CMS or email.

Examples:
  adflow note html 5d2e > voice.html
  adflow note html 5d2e --out=voice.html
`,
		Args: cobra.ExactArgs(1),
		RunE: runHTML,
	}

	cmd.Flags().String("out", "", "Write to a file instead of stdout")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runHTML(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	out, _ := cmd.Flags().GetString("out")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}
	defer cli.CloseQuietly(cliInstance)

	html, err := cliInstance.App.NoteService.RenderHTML(ctx, args[0])
	if err != nil {
		return formatter.Fail(err, "")
	}

	if out != "" {
		if err := os.WriteFile(out, []byte(html), 0o644); err != nil {
			return formatter.Fail(err, "")
		}
		if formatter.Quiet {
			return nil
		}
		return formatter.Success(map[string]string{"id": args[0], "file": out}, func(w io.Writer) {
			fmt.Fprintf(w, "✓ Wrote %s\n", out)
		})
	}

	if formatter.JSON {
		return formatter.Success(map[string]string{"id": args[0], "html": html}, nil)
	}
	_, err = fmt.Fprint(formatter.Out, html)
	return err
}
