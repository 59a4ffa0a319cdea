// Package report implements the read-only reporting commands: dashboard,
// analytics and search.
package report

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/adflow/internal/analytics"
	"github.com/thenoetrevino/adflow/internal/cli"
	"github.com/thenoetrevino/adflow/internal/cli/styles"
)

// DashboardCmd returns the dashboard command
func DashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the overview: active campaigns, open tasks and budget",
		Args:  cobra.NoArgs,
		RunE:  runDashboard,
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runDashboard(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}
	defer cli.CloseQuietly(cliInstance)

	dash, err := cliInstance.App.Dashboard(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}

	return formatter.Success(dash, func(w io.Writer) {
		printDashboard(w, dash)
	})
}

func printDashboard(w io.Writer, d analytics.Dashboard) {
	fmt.Fprintln(w, styles.TitleStyle.Render("Dashboard"))
	fmt.Fprintln(w, styles.Field("Active campaigns", fmt.Sprint(d.ActiveCampaigns)))
	fmt.Fprintln(w, styles.Field("Tasks to do", fmt.Sprint(d.TasksToDo)))
	fmt.Fprintln(w, styles.Field("Total allocated", analytics.Currency(d.TotalAllocated)))
	fmt.Fprintln(w, styles.Field("Creatives in progress", fmt.Sprint(d.CreativesInProgress)))

	if len(d.RecentCampaigns) > 0 {
		fmt.Fprintln(w, styles.SectionStyle.Render("Recent campaigns"))
		for _, c := range d.RecentCampaigns {
			fmt.Fprintf(w, "  %s  %s\n", c.Name, styles.SubtitleStyle.Render(c.Status))
		}
	}
	if len(d.UpcomingTasks) > 0 {
		fmt.Fprintln(w, styles.SectionStyle.Render("Upcoming tasks"))
		for _, t := range d.UpcomingTasks {
			fmt.Fprintf(w, "  %s  %s\n", t.Text, styles.PriorityText(t.Priority))
		}
	}
}
