package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// RenderTabs renders a tab bar with the given tab names
// selectedIdx indicates which tab is active (0-indexed)
// width is the total width to fill with the tab gap
//
// Layout:
//
//	╭──────╮ ╭──────╮                      [status]
//	│ Tab1 │ │ Tab2 │──────────────────────
func RenderTabs(tabs []string, selectedIdx int, width int, trailing string) string {
	rendered := make([]string, 0, len(tabs))
	for i, name := range tabs {
		if i == selectedIdx {
			rendered = append(rendered, ActiveTabStyle.Render(name))
		} else {
			rendered = append(rendered, TabStyle.Render(name))
		}
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)

	gapWidth := max(width-lipgloss.Width(row)-lipgloss.Width(trailing)-2, 0)
	gap := TabGapStyle.Render(strings.Repeat(" ", gapWidth))

	if trailing != "" {
		return lipgloss.JoinHorizontal(lipgloss.Bottom, row, gap, trailing)
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, row, gap)
}

// TabAt returns the tab under screen column x in a bar rendered by
// RenderTabs, or -1.
func TabAt(tabs []string, x int) int {
	left := 0
	for i, name := range tabs {
		w := lipgloss.Width(TabStyle.Render(name))
		if x >= left && x < left+w {
			return i
		}
		left += w
	}
	return -1
}
