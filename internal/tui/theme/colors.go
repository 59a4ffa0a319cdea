package theme

import "github.com/thenoetrevino/adflow/internal/config/colors"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight      string
	Background     string
	Subtle         string
	Normal         string
	Create         string
	SelectedBorder string
	SelectedBg     string
	PickedBorder   string
	CardBg         string
	InfoFg         string
	InfoBg         string
	WarningFg      string
	WarningBg      string
	ErrorFg        string
	ErrorBg        string
	High           string
	Medium         string
	Low            string
)

// Init initializes the theme colors from the given color scheme
func Init(c colors.ColorScheme) {
	Highlight = c.Accent
	Background = c.Background
	Subtle = c.Subtle
	Normal = c.Normal
	Create = c.Create
	SelectedBorder = c.SelectedBorder
	SelectedBg = c.SelectedBg
	PickedBorder = c.PickedBorder
	CardBg = c.CardBackground
	InfoFg = c.InfoFg
	InfoBg = c.InfoBg
	WarningFg = c.WarningFg
	WarningBg = c.WarningBg
	ErrorFg = c.ErrorFg
	ErrorBg = c.ErrorBg
	High = c.High
	Medium = c.Medium
	Low = c.Low
}

// Priority returns the color for a task priority
func Priority(p string) string {
	switch p {
	case "High":
		return High
	case "Low":
		return Low
	default:
		return Medium
	}
}
