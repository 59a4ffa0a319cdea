package campaign

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/adflow/internal/cli"
	"github.com/thenoetrevino/adflow/internal/models"
	campaignservice "github.com/thenoetrevino/adflow/internal/services/campaign"
)

// CreateCmd returns the campaign create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new campaign",
		Long: `Create a new campaign. It starts in the first column of the campaign board.

Examples:
  # Minimal campaign
  adflow campaign create --name="Winter Sale" --branch=Alberton --objective=Sales

  # Full creative brief
  adflow campaign create \
    --name="Winter Sale" --branch=Alberton --objective=Sales \
    --start=2026-06-01 --end=2026-06-30 \
    --text="Beat the cold with 30% off" \
    --headline="30% off heaters" --headline="Winter deals" \
    --visual=1:1=https://cdn.example.com/square.png \
    --target=25000

  # Primary text from stdin, ID only
  echo "Long copy" | adflow campaign create --name=X --branch=National --objective=Leads --text=- --quiet
`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("name", "", "Campaign name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	cmd.Flags().String("branch", "", "Branch: Alberton, Vanderbijlpark, Sasolburg, National (required)")
	if err := cmd.MarkFlagRequired("branch"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	// Optional flags
	addBriefFlags(cmd)
	cmd.Flags().String("status", "", "Board column (defaults to the first column)")

	cli.AddOutputFlags(cmd)
	return cmd
}

// addBriefFlags registers the flags shared by create and update
func addBriefFlags(cmd *cobra.Command) {
	cmd.Flags().String("objective", "Sales", "Objective: Sales, Leads, Brand Awareness, Engagement")
	cmd.Flags().String("start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().String("end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().String("text", "", "Primary ad text (use - for stdin)")
	cmd.Flags().StringArray("headline", nil, "Headline (repeatable)")
	cmd.Flags().StringToString("visual", nil, "Visual URL per format, e.g. 4:5=https://... (repeatable)")
	cmd.Flags().Float64("target", 0, "Target value in rand")
	cmd.Flags().String("budget", "", "Linked budget ID")
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	name, _ := cmd.Flags().GetString("name")
	branchFlag, _ := cmd.Flags().GetString("branch")
	objectiveFlag, _ := cmd.Flags().GetString("objective")
	start, _ := cmd.Flags().GetString("start")
	end, _ := cmd.Flags().GetString("end")
	textFlag, _ := cmd.Flags().GetString("text")
	headlines, _ := cmd.Flags().GetStringArray("headline")
	visuals, _ := cmd.Flags().GetStringToString("visual")
	target, _ := cmd.Flags().GetFloat64("target")
	budgetID, _ := cmd.Flags().GetString("budget")
	statusFlag, _ := cmd.Flags().GetString("status")

	branch, err := cli.ParseBranch(branchFlag)
	if err != nil {
		return formatter.Fail(err, "")
	}
	objective, err := cli.ParseObjective(objectiveFlag)
	if err != nil {
		return formatter.Fail(err, "")
	}
	if err := checkFormats(visuals); err != nil {
		return formatter.Fail(err, "")
	}
	text, err := cli.ReadText(cmd, textFlag)
	if err != nil {
		return formatter.Fail(err, "")
	}

	// Initialize CLI
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

	campaign, err := service.Create(ctx, campaignservice.CreateCampaignRequest{
		Name:        name,
		Branch:      branch,
		Objective:   objective,
		StartDate:   start,
		EndDate:     end,
		PrimaryText: text,
		Headlines:   headlines,
		Visuals:     visuals,
		TargetValue: target,
		BudgetID:    budgetID,
		Status:      status,
	})
	if err != nil {
		return formatter.Fail(err, "")
	}

	return formatter.Success(campaign, func(w io.Writer) {
		fmt.Fprintf(w, "✓ Campaign '%s' created (ID: %s)\n", campaign.Name, campaign.ID)
		fmt.Fprintf(w, "  Status: %s\n", campaign.Status)
		done, total := campaign.Checklist.Done()
		fmt.Fprintf(w, "  Checklist: %d/%d\n", done, total)
	})
}

// checkFormats rejects visuals for unknown ad formats
func checkFormats(visuals map[string]string) error {
	for format := range visuals {
		if !models.Contains(models.AdFormats, format) {
			return fmt.Errorf("%w: format '%s' (must be: 1:1, 4:5, 9:16)", cli.ErrInvalidOption, format)
		}
	}
	return nil
}
