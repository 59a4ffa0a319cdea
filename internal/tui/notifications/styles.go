package notifications

import "github.com/thenoetrevino/adflow/internal/tui/theme"

type style struct {
	icon             string
	title            string
	foreground       string
	background       string
	borderForeground string
}

func (s Severity) style() style {
	switch s {
	case Warning:
		return style{"⚠", "Heads up", theme.WarningFg, theme.WarningBg, theme.WarningBg}
	case Error:
		return style{"✕", "Error", theme.ErrorFg, theme.ErrorBg, theme.ErrorBg}
	default:
		return style{"✓", "Done", theme.InfoFg, theme.InfoBg, theme.InfoBg}
	}
}
