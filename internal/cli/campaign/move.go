package campaign

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/adflow/internal/cli"
)

// MoveCmd returns the campaign move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <id> <next|prev|column>",
		Short: "Move a campaign to another board column",
		Long: `Move a campaign by direction or column name. The move goes through the
same board controller as the TUI, so only the status is written.

Examples:
  # Step one column right or left
  adflow campaign move 7f3c next
  adflow campaign move 7f3c prev

  # Jump to a column by name (case-insensitive)
  adflow campaign move 7f3c live
  adflow campaign move 7f3c "in progress" --json
`,
		Args: cobra.ExactArgs(2),
		RunE: runMove,
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}
	defer cli.CloseQuietly(cliInstance)

	service := cliInstance.App.CampaignService
	campaign, err := service.Get(ctx, args[0])
	if err != nil {
		return formatter.Fail(err, "Use 'adflow campaign list' to see available campaigns")
	}

	result, err := cli.MoveItem(ctx, campaign, service.Columns(), service, args[1], "Campaign", cliInstance.App.Logger())
	if err != nil {
		return formatter.Fail(err, "")
	}

	return formatter.Success(result, func(w io.Writer) {
		if !result.Moved {
			fmt.Fprintln(w, result.Message)
			return
		}
		fmt.Fprintf(w, "✓ %s (%s → %s)\n", result.Message, result.From, result.To)
	})
}
