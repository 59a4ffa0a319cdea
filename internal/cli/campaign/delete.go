package campaign

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/adflow/internal/cli"
)

// DeleteCmd returns the campaign delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a campaign",
		Long:  "Delete a campaign by ID (requires confirmation unless --force, --json or --quiet). Linked tasks keep the campaign name.",
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

	service := cliInstance.App.CampaignService
	campaign, err := service.Get(ctx, args[0])
	if err != nil {
		return formatter.Fail(err, "Use 'adflow campaign list' to see available campaigns")
	}

	if !cli.SkipConfirm(cmd) && !cli.Confirm(cmd, fmt.Sprintf("Delete campaign '%s'?", campaign.Name)) {
		fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
		return nil
	}

	if err := service.Delete(ctx, campaign.ID); err != nil {
		return formatter.Fail(err, "")
	}

	if formatter.Quiet {
		return nil
	}
	return formatter.Success(map[string]string{"id": campaign.ID}, func(w io.Writer) {
		fmt.Fprintf(w, "✓ Campaign '%s' deleted\n", campaign.Name)
	})
}
