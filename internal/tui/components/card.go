package components

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/adflow/internal/tui/theme"
)

// Card is the presentational form of a board item
type Card struct {
	ID    string
	Title string
	Meta  string // second line: branch, objective, campaign, priority...
	Tag   string // small colored marker before the meta line
	TagFg string

	Focused bool // cursor is on it
	Picked  bool // held by the keyboard or the pointer
	Pending bool // a save is in flight
}

// RenderCard renders a single card with a fixed height
//
//	┏━━━━━━━━━━━━━━━━━━━━━━━━━━┓
//	┃ {Title}                  ┃
//	┃ {tag} {meta}             ┃
//	┗━━━━━━━━━━━━━━━━━━━━━━━━━━┛
func RenderCard(card Card) string {
	bg := theme.CardBg
	if card.Focused {
		bg = theme.SelectedBg
	}
	bgColor := lipgloss.Color(bg)

	title := Truncate(card.Title, cardInnerWidth)
	if card.Pending {
		title = Truncate(card.Title, cardInnerWidth-2) + " …"
	}
	titleLine := lipgloss.NewStyle().Bold(true).Background(bgColor).Render(" " + title)

	meta := ""
	if card.Tag != "" {
		meta = lipgloss.NewStyle().
			Foreground(lipgloss.Color(card.TagFg)).
			Background(bgColor).
			Render("● "+card.Tag) + " "
	}
	meta += lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Background(bgColor).
		Render(Truncate(card.Meta, cardInnerWidth-lipgloss.Width(meta)))

	style := CardStyle.
		BorderBackground(bgColor).
		Background(bgColor)
	switch {
	case card.Picked:
		style = style.BorderForeground(lipgloss.Color(theme.PickedBorder))
	case card.Focused:
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}

	return style.Render(titleLine + "\n " + meta)
}

// Truncate shortens s to width cells, marking the cut with an ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
