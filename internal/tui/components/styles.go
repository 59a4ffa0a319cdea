// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/adflow/internal/config/colors"
	"github.com/thenoetrevino/adflow/internal/tui/theme"
)

var (
	// compared to the defaults, these feel like
	// they take up less space
	activeTabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      " ",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┘",
		BottomRight: "└",
	}

	tabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      "─",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┴",
		BottomRight: "┴",
	}

	TabStyle       lipgloss.Style
	ActiveTabStyle lipgloss.Style
	TabGapStyle    lipgloss.Style

	// ColumnStyle frames a board column
	ColumnStyle lipgloss.Style

	// CardStyle frames a card on a board
	CardStyle lipgloss.Style

	TitleStyle  lipgloss.Style
	SubtleStyle lipgloss.Style

	// Dialog boxes, colored by intent
	CreateBoxStyle lipgloss.Style
	EditBoxStyle   lipgloss.Style
	DeleteBoxStyle lipgloss.Style
	HelpBoxStyle   lipgloss.Style
	SearchBoxStyle lipgloss.Style

	// PanelStyle frames dashboard and list panels
	PanelStyle lipgloss.Style

	IndicatorStyle lipgloss.Style
)

// InitStyles initializes all styles with the given color scheme
func InitStyles(c colors.ColorScheme) {
	theme.Init(c)

	TabStyle = lipgloss.NewStyle().
		Border(tabBorder, true).
		BorderForeground(lipgloss.Color(theme.Highlight)).
		Padding(0, 1)
	ActiveTabStyle = TabStyle.Border(activeTabBorder, true).Bold(true)
	TabGapStyle = TabStyle.
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false)

	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.ColumnBorder)).
		Background(lipgloss.Color(c.ColumnBackground)).
		Padding(0, 1).
		Width(ColumnWidth)

	CardStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(c.CardBorder)).
		BorderBackground(lipgloss.Color(c.CardBackground)).
		Background(lipgloss.Color(c.CardBackground)).
		Width(ColumnWidth - 4)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.Title))
	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Subtle))

	dialog := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	CreateBoxStyle = dialog.BorderForeground(lipgloss.Color(c.Create))
	EditBoxStyle = dialog.BorderForeground(lipgloss.Color(c.Edit))
	DeleteBoxStyle = dialog.BorderForeground(lipgloss.Color(c.Delete))
	HelpBoxStyle = dialog.BorderForeground(lipgloss.Color(c.Edit))
	SearchBoxStyle = dialog.BorderForeground(lipgloss.Color(c.Accent)).Padding(0, 1)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.ColumnBorder)).
		Padding(0, 1)

	IndicatorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Align(lipgloss.Center)
}
