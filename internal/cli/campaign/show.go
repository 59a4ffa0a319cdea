package campaign

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/adflow/internal/cli"
)

// ShowCmd returns the campaign show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a campaign's brief, checklist and performance",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}
	defer cli.CloseQuietly(cliInstance)

	campaign, err := cliInstance.App.CampaignService.Get(ctx, args[0])
	if err != nil {
		return formatter.Fail(err, "Use 'adflow campaign list' to see available campaigns")
	}

	return formatter.Success(campaign, func(w io.Writer) {
		printCampaign(w, campaign)
	})
}
