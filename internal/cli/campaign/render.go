package campaign

import (
	"fmt"
	"io"
	"strings"

	"github.com/thenoetrevino/adflow/internal/analytics"
	"github.com/thenoetrevino/adflow/internal/cli/styles"
	"github.com/thenoetrevino/adflow/internal/models"
)

func printCampaign(w io.Writer, c models.Campaign) {
	lines := []string{
		styles.TitleStyle.Render(c.Name),
		styles.SubtitleStyle.Render(c.ID),
		"",
		styles.Field("Status", c.Status),
		styles.Field("Branch", c.Branch),
		styles.Field("Objective", c.Objective),
	}
	if c.StartDate != "" || c.EndDate != "" {
		lines = append(lines, styles.Field("Runs", fmt.Sprintf("%s → %s", orDash(c.StartDate), orDash(c.EndDate))))
	}
	if c.TargetValue > 0 {
		lines = append(lines, styles.Field("Target", analytics.Currency(c.TargetValue)))
	}
	if c.BudgetID != "" {
		lines = append(lines, styles.Field("Budget", c.BudgetID))
	}
	lines = append(lines, styles.Field("Checklist", styles.Checklist(c.Checklist)))

	if c.PrimaryText != "" {
		lines = append(lines, styles.SectionStyle.Render("Primary text"), c.PrimaryText)
	}
	if len(c.Headlines) > 0 {
		lines = append(lines, styles.SectionStyle.Render("Headlines"))
		for _, h := range c.Headlines {
			lines = append(lines, "• "+h)
		}
	}
	if c.Visuals.Any() {
		lines = append(lines, styles.SectionStyle.Render("Visuals"))
		for _, format := range models.AdFormats {
			if url := c.Visuals[format]; url != "" {
				lines = append(lines, styles.Field(format, url))
			}
		}
	}

	p := c.Performance
	if p != (models.Performance{}) {
		lines = append(lines, styles.SectionStyle.Render("Performance"),
			styles.Field("Spend", analytics.Currency(p.Spend)),
			styles.Field("Revenue", analytics.Currency(p.Revenue)),
			styles.Field("Clicks", fmt.Sprint(p.Clicks)),
			styles.Field("Conversions", fmt.Sprint(p.Conversions)))
	}

	fmt.Fprintln(w, styles.RenderCard(strings.Join(lines, "\n")))
}

func printCampaigns(w io.Writer, campaigns []models.Campaign) {
	if len(campaigns) == 0 {
		fmt.Fprintln(w, "No campaigns found")
		return
	}
	t := styles.Table("ID", "Name", "Branch", "Objective", "Status", "Checklist")
	for _, c := range campaigns {
		done, total := c.Checklist.Done()
		t.Row(c.ID, c.Name, c.Branch, c.Objective, c.Status, fmt.Sprintf("%d/%d", done, total))
	}
	fmt.Fprintln(w, t.Render())
	fmt.Fprintf(w, "%d campaign(s)\n", len(campaigns))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
