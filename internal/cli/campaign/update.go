package campaign

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/adflow/internal/cli"
	campaignservice "github.com/thenoetrevino/adflow/internal/services/campaign"
)

// UpdateCmd returns the campaign update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a campaign",
		Long: `Update the fields of a campaign. Only flags that are given change.
The creative checklist is recomputed on every update.

Examples:
  adflow campaign update 7f3c --text="New copy" --headline="Fresh" --headline="Deals"
  adflow campaign update 7f3c --visual=9:16=https://cdn.example.com/story.png
  adflow campaign update 7f3c --spend=1200 --revenue=4800 --clicks=300 --conversions=12
`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().String("name", "", "Campaign name")
	cmd.Flags().String("branch", "", "Branch")
	addBriefFlags(cmd)

	// Reported performance
	cmd.Flags().Float64("spend", 0, "Reported spend")
	cmd.Flags().Float64("revenue", 0, "Reported revenue")
	cmd.Flags().Int("clicks", 0, "Reported clicks")
	cmd.Flags().Int("conversions", 0, "Reported conversions")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	flags := cmd.Flags()

	req := campaignservice.UpdateCampaignRequest{ID: args[0]}

	if flags.Changed("name") {
		name, _ := flags.GetString("name")
		req.Name = &name
	}
	if flags.Changed("branch") {
		v, _ := flags.GetString("branch")
		branch, err := cli.ParseBranch(v)
		if err != nil {
			return formatter.Fail(err, "")
		}
		req.Branch = &branch
	}
	if flags.Changed("objective") {
		v, _ := flags.GetString("objective")
		objective, err := cli.ParseObjective(v)
		if err != nil {
			return formatter.Fail(err, "")
		}
		req.Objective = &objective
	}
	if flags.Changed("start") {
		start, _ := flags.GetString("start")
		req.StartDate = &start
	}
	if flags.Changed("end") {
		end, _ := flags.GetString("end")
		req.EndDate = &end
	}
	if flags.Changed("text") {
		v, _ := flags.GetString("text")
		text, err := cli.ReadText(cmd, v)
		if err != nil {
			return formatter.Fail(err, "")
		}
		req.PrimaryText = &text
	}
	if flags.Changed("headline") {
		headlines, _ := flags.GetStringArray("headline")
		req.Headlines = &headlines
	}
	if flags.Changed("visual") {
		visuals, _ := flags.GetStringToString("visual")
		if err := checkFormats(visuals); err != nil {
			return formatter.Fail(err, "")
		}
		req.Visuals = visuals
	}
	if flags.Changed("target") {
		target, _ := flags.GetFloat64("target")
		req.TargetValue = &target
	}
	if flags.Changed("budget") {
		budgetID, _ := flags.GetString("budget")
		req.BudgetID = &budgetID
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}
	defer cli.CloseQuietly(cliInstance)

	service := cliInstance.App.CampaignService

	if flags.Changed("spend") || flags.Changed("revenue") || flags.Changed("clicks") || flags.Changed("conversions") {
		current, err := service.Get(ctx, req.ID)
		if err != nil {
			return formatter.Fail(err, "")
		}
		perf := current.Performance
		if flags.Changed("spend") {
			perf.Spend, _ = flags.GetFloat64("spend")
		}
		if flags.Changed("revenue") {
			perf.Revenue, _ = flags.GetFloat64("revenue")
		}
		if flags.Changed("clicks") {
			perf.Clicks, _ = flags.GetInt("clicks")
		}
		if flags.Changed("conversions") {
			perf.Conversions, _ = flags.GetInt("conversions")
		}
		req.Performance = &perf
	}

	campaign, err := service.Update(ctx, req)
	if err != nil {
		return formatter.Fail(err, "")
	}

	return formatter.Success(campaign, func(w io.Writer) {
		fmt.Fprintf(w, "✓ Campaign '%s' updated\n", campaign.Name)
		done, total := campaign.Checklist.Done()
		fmt.Fprintf(w, "  Checklist: %d/%d\n", done, total)
	})
}
