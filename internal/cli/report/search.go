package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/adflow/internal/cli"
	"github.com/thenoetrevino/adflow/internal/cli/styles"
)

// SearchCmd returns the search command
func SearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Fuzzy search campaigns, tasks and notes",
		Long: `Fuzzy search across campaign names, task text and note titles and tags.
Typos are tolerated; results are ordered best match first.

Examples:
  adflow search "wintr sale"
  adflow search heaters --json
`,
		Args: cobra.MinimumNArgs(1),
		RunE: runSearch,
	}

	cmd.Flags().Int("limit", 10, "Maximum number of results (0 for all)")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	limit, _ := cmd.Flags().GetInt("limit")
	query := strings.Join(args, " ")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}
	defer cli.CloseQuietly(cliInstance)

	results, err := cliInstance.App.Search(ctx, query)
	if err != nil {
		return formatter.Fail(err, "")
	}
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	return cli.SuccessList(formatter, results, func(w io.Writer) {
		if len(results) == 0 {
			fmt.Fprintf(w, "No results for %q\n", query)
			return
		}
		for _, r := range results {
			fmt.Fprintf(w, "%-9s %s  %s\n",
				styles.LabelStyle.Render(string(r.Kind)),
				r.Title,
				styles.SubtitleStyle.Render(r.ID))
		}
	})
}
