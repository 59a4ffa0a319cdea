package report

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/adflow/internal/analytics"
	"github.com/thenoetrevino/adflow/internal/cli"
	"github.com/thenoetrevino/adflow/internal/cli/styles"
)

// AnalyticsReport is the analytics command's output
type AnalyticsReport struct {
	Totals    analytics.Totals `json:"totals"`
	Campaigns []analytics.Row  `json:"campaigns"`
}

// AnalyticsCmd returns the analytics command
func AnalyticsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Show campaign performance with CPC and ROAS",
		Args:  cobra.NoArgs,
		RunE:  runAnalytics,
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runAnalytics(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}
	defer cli.CloseQuietly(cliInstance)

	campaigns, err := cliInstance.App.CampaignService.List(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}
	report := AnalyticsReport{
		Totals:    analytics.ComputeTotals(campaigns),
		Campaigns: analytics.Rows(campaigns),
	}

	return formatter.Success(report, func(w io.Writer) {
		printAnalytics(w, report)
	})
}

func printAnalytics(w io.Writer, r AnalyticsReport) {
	fmt.Fprintln(w, styles.TitleStyle.Render("Performance"))
	fmt.Fprintln(w, styles.Field("Spend", analytics.Currency(r.Totals.Spend)))
	fmt.Fprintln(w, styles.Field("Revenue", analytics.Currency(r.Totals.Revenue)))
	fmt.Fprintln(w, styles.Field("Clicks", fmt.Sprint(r.Totals.Clicks)))
	fmt.Fprintln(w, styles.Field("Conversions", fmt.Sprint(r.Totals.Conversions)))

	if len(r.Campaigns) == 0 {
		return
	}
	t := styles.Table("Campaign", "Spend", "Revenue", "CPC", "ROAS")
	for _, row := range r.Campaigns {
		t.Row(row.Name,
			analytics.Currency(row.Spend),
			analytics.Currency(row.Revenue),
			analytics.Currency(row.CPC),
			fmt.Sprintf("%.2fx", row.ROAS))
	}
	fmt.Fprintln(w, t.Render())
}
