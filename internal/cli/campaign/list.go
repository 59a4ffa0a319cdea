package campaign

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/adflow/internal/cli"
	"github.com/thenoetrevino/adflow/internal/models"
)

// ListCmd returns the campaign list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List campaigns",
		Long: `List campaigns, optionally filtered by board column or branch.

Examples:
  adflow campaign list
  adflow campaign list --status=live --branch=Sasolburg
  adflow campaign list --quiet   # one ID per line
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().String("status", "", "Only campaigns in this column")
	cmd.Flags().String("branch", "", "Only campaigns for this branch")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	statusFlag, _ := cmd.Flags().GetString("status")
	branchFlag, _ := cmd.Flags().GetString("branch")

	var branch string
	if branchFlag != "" {
		var err error
		if branch, err = cli.ParseBranch(branchFlag); err != nil {
			return formatter.Fail(err, "")
		}
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}
	defer cli.CloseQuietly(cliInstance)

	service := cliInstance.App.CampaignService
	var status string
	if statusFlag != "" {
		if status, err = cli.ResolveStatus(service.Columns(), statusFlag); err != nil {
			return formatter.Fail(err, "")
		}
	}

	campaigns, err := service.List(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}

	filtered := make([]models.Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		if status != "" && c.Status != status {
			continue
		}
		if branch != "" && c.Branch != branch {
			continue
		}
		filtered = append(filtered, c)
	}

	return cli.SuccessList(formatter, filtered, func(w io.Writer) {
		printCampaigns(w, filtered)
	})
}
