// Package styles holds the lipgloss styles for human-readable CLI output.
package styles

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/thenoetrevino/adflow/internal/config/colors"
	"github.com/thenoetrevino/adflow/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 72

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Branch:", "Status:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Headlines", "Checklist"

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style

	scheme colors.ColorScheme
)

func init() {
	Init(*colors.Default())
}

// Init initializes all CLI styles with the given color scheme
func Init(c colors.ColorScheme) {
	scheme = c

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Accent)).
		Bold(true).
		MarginTop(1)

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.InfoFg)).
		Background(lipgloss.Color(c.InfoBg)).
		Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.ErrorFg)).
		Background(lipgloss.Color(c.ErrorBg)).
		Padding(0, 1)

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.WarningFg)).
		Background(lipgloss.Color(c.WarningBg)).
		Padding(0, 1)
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// Field renders "Label: value" on one line
func Field(label, value string) string {
	return LabelStyle.Render(label+":") + " " + ValueStyle.Render(value)
}

// PriorityText renders a task priority in its color
func PriorityText(priority string) string {
	color := scheme.Medium
	switch priority {
	case models.PriorityHigh:
		color = scheme.High
	case models.PriorityLow:
		color = scheme.Low
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true).Render(priority)
}

// Checklist renders a campaign's creative checklist as ticks and crosses
func Checklist(c models.Checklist) string {
	tick := func(ok bool, name string) string {
		if ok {
			return lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Low)).Render("✓ " + name)
		}
		return SubtitleStyle.Render("✗ " + name)
	}
	done, total := c.Done()
	return strings.Join([]string{
		tick(c.PrimaryText, "copy"),
		tick(c.Headlines, "headlines"),
		tick(c.Visuals, "visuals"),
		tick(c.Targeting, "targeting"),
		tick(c.Budget, "budget"),
		SubtitleStyle.Render(fmt.Sprintf("(%d/%d)", done, total)),
	}, "  ")
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}

// Table returns a bordered table with a bold header row
func Table(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Subtle))).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return style.Bold(true).Foreground(lipgloss.Color(scheme.Accent))
			}
			return style.Foreground(lipgloss.Color(scheme.Normal))
		})
}
