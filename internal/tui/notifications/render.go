package notifications

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/adflow/internal/tui/state"
)

// maxToastWidth keeps long messages from spanning the whole screen
const maxToastWidth = 48

// Render renders a toast based on severity level
func Render(severity Severity, message string) string {
	style := severity.style()

	header := style.icon + " " + style.title
	width := min(max(lipgloss.Width(header), lipgloss.Width(message)), maxToastWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Bold(true).
		Width(width)

	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Width(width).
		Render(message)

	content := lipgloss.JoinVertical(lipgloss.Left, headerStyle.Render(header), body)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(style.borderForeground)).
		Background(lipgloss.Color(style.background)).
		Padding(0, 1).
		Render(content)
}

// RenderFromState renders a toast from a state.Notification
func RenderFromState(n state.Notification) string {
	return Render(severityOf(n.Level), n.Message)
}

// RenderInline renders a compact single-line notification (for the tab bar)
func RenderInline(severity Severity, message string) string {
	style := severity.style()
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Background(lipgloss.Color(style.background)).
		Padding(0, 1).
		Render(style.icon + " " + message)
}

func severityOf(level state.NotificationLevel) Severity {
	switch level {
	case state.LevelWarning:
		return Warning
	case state.LevelError:
		return Error
	default:
		return Info
	}
}
