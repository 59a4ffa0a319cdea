// Package huhforms builds the huh forms used to create, edit and delete
// campaigns, tasks, budgets and notes.
package huhforms

import (
	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/adflow/internal/config/colors"
)

// CreateTheme builds a huh theme from the adflow color scheme
func CreateTheme(scheme colors.ColorScheme) huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)

		accent := lipgloss.Color(scheme.Accent)
		create := lipgloss.Color(scheme.Create)
		subtle := lipgloss.Color(scheme.Subtle)
		normal := lipgloss.Color(scheme.Normal)
		danger := lipgloss.Color(scheme.Delete)

		f := &t.Focused
		f.Base = f.Base.BorderForeground(accent)
		f.Title = f.Title.Foreground(lipgloss.Color(scheme.Title)).Bold(true)
		f.Description = f.Description.Foreground(subtle)
		f.ErrorIndicator = f.ErrorIndicator.Foreground(danger)
		f.ErrorMessage = f.ErrorMessage.Foreground(danger)
		f.SelectSelector = f.SelectSelector.Foreground(accent)
		f.SelectedOption = f.SelectedOption.Foreground(create)
		f.UnselectedOption = f.UnselectedOption.Foreground(normal)
		f.FocusedButton = f.FocusedButton.
			Foreground(lipgloss.Color(scheme.Background)).
			Background(accent).
			Bold(true)
		f.BlurredButton = f.BlurredButton.Foreground(normal).Background(subtle)
		f.TextInput.Cursor = f.TextInput.Cursor.Foreground(accent)
		f.TextInput.Placeholder = f.TextInput.Placeholder.Foreground(subtle)
		f.TextInput.Prompt = f.TextInput.Prompt.Foreground(accent)

		// blurred fields look like focused ones without the border
		t.Blurred = t.Focused
		t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
		t.Blurred.Title = t.Blurred.Title.Foreground(subtle)

		return t
	})
}
