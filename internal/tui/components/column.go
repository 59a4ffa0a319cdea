package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/adflow/internal/tui/theme"
)

// ColumnProps describes one board column
type ColumnProps struct {
	Title      string
	Cards      []Card
	Focused    bool // the cursor is in this column
	DropTarget bool // a dragged card hovers over it
	Height     int  // total height including borders
	Scroll     int  // index of the first visible card
	EmptyText  string
}

// VisibleCards returns how many cards fit in a column of the given height
func VisibleCards(height int) int {
	return max((height-ColumnHeaderLines-columnFooterLines)/CardHeight, 1)
}

// RenderColumn renders a column with its title and visible cards
//
// Layout:
//
//	{Column Name} ({count})
//	▲ more above
//	{Card 1}
//	{Card 2}
//	▼ more below
func RenderColumn(p ColumnProps) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(fmt.Sprintf("%s (%d)", p.Title, len(p.Cards))))
	b.WriteString("\n")

	visible := VisibleCards(p.Height)
	scroll := max(min(p.Scroll, len(p.Cards)-visible), 0)
	end := min(scroll+visible, len(p.Cards))

	if scroll > 0 {
		b.WriteString(IndicatorStyle.Render("▲ more above"))
	}
	b.WriteString("\n")

	if len(p.Cards) == 0 {
		empty := p.EmptyText
		if empty == "" {
			empty = "Nothing here"
		}
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Italic(true).
			Render(empty))
	}

	for _, card := range p.Cards[scroll:end] {
		b.WriteString(RenderCard(card))
		b.WriteString("\n")
	}

	content := strings.TrimSuffix(b.String(), "\n")
	if end < len(p.Cards) {
		used := lipgloss.Height(content)
		inner := p.Height - 2
		if pad := inner - used - 1; pad > 0 {
			content += strings.Repeat("\n", pad)
		}
		content += "\n" + IndicatorStyle.Render("▼ more below")
	}

	style := ColumnStyle
	switch {
	case p.DropTarget:
		style = style.BorderForeground(lipgloss.Color(theme.PickedBorder))
	case p.Focused:
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	if p.Height > 0 {
		style = style.Height(p.Height)
	}
	return style.Render(content)
}
