package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/adflow/internal/tui/theme"
)

// StatusBarProps configures the footer line
type StatusBarProps struct {
	Width int
	Hint  string // left side, usually the active keyboard mode
	Live  bool   // connected to the event daemon
}

// RenderStatusBar renders a footer with left and right aligned text
func RenderStatusBar(props StatusBarProps) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	left := "adflow"
	if props.Hint != "" {
		left += " · " + props.Hint
	}
	right := "press ? for help"
	if props.Live {
		right = "● live  " + right
	}

	leftRendered := style.Render(left)
	rightRendered := style.Render(right)
	gap := max(props.Width-lipgloss.Width(leftRendered)-lipgloss.Width(rightRendered), 1)

	return leftRendered + strings.Repeat(" ", gap) + rightRendered
}
