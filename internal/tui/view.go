package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/thenoetrevino/adflow/internal/analytics"
	"github.com/thenoetrevino/adflow/internal/search"
	budgetservice "github.com/thenoetrevino/adflow/internal/services/budget"
	"github.com/thenoetrevino/adflow/internal/tui/components"
	"github.com/thenoetrevino/adflow/internal/tui/layers"
	"github.com/thenoetrevino/adflow/internal/tui/notifications"
	"github.com/thenoetrevino/adflow/internal/tui/state"
	"github.com/thenoetrevino/adflow/internal/tui/theme"
)

// View renders the base screen with the mode's overlay and the toasts
// stacked above it.
func (m Model) View() tea.View {
	var content string
	if m.UiState.Width() == 0 {
		content = "Loading..."
	} else {
		stack := []*lipgloss.Layer{lipgloss.NewLayer(m.viewBase()).Z(layers.ZBase)}
		if overlay := m.viewOverlay(); overlay != nil {
			stack = append(stack, overlay)
		}
		stack = append(stack, m.NotificationState.GetLayers(notifications.RenderFromState)...)
		content = lipgloss.NewCanvas(stack...).Render()
	}

	view := tea.NewView(content)
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion
	view.BackgroundColor = lipgloss.Color(theme.Background)
	return view
}

func (m Model) viewBase() string {
	width, height := m.UiState.Width(), m.UiState.ContentHeight()

	trailing := ""
	if board := m.activeBoard(); board != nil {
		if title, ok := board.pickedTitle(); ok {
			trailing = notifications.RenderInline(notifications.Info, "Moving "+components.Truncate(title, 24))
		}
	}
	tabs := components.RenderTabs(state.TabNames, int(m.UiState.Tab()), width, trailing)

	var screen string
	switch m.UiState.Tab() {
	case state.TabDashboard:
		screen = m.viewDashboard()
	case state.TabCampaigns, state.TabTasks:
		screen = m.activeBoard().view(height)
	case state.TabBudgets:
		screen = m.viewBudgets()
	case state.TabNotes:
		screen = m.viewNotes(height)
	}
	screen = lipgloss.NewStyle().Height(height).MaxHeight(height).MaxWidth(width).Render(screen)

	footer := components.RenderStatusBar(components.StatusBarProps{
		Width: width,
		Hint:  m.hint(),
		Live:  m.ConnectionState.Status() == state.Connected,
	})

	return lipgloss.JoinVertical(lipgloss.Left, tabs, screen, footer)
}

// hint is the status bar text for the current mode and tab.
func (m Model) hint() string {
	switch m.UiState.Mode() {
	case state.FormMode, state.DeleteConfirmMode:
		return "ctrl+s save · esc cancel"
	case state.SearchMode:
		return "↑/↓ choose · enter open · esc close"
	case state.NoteViewMode:
		return "j/k scroll · esc close"
	}
	if board := m.activeBoard(); board != nil {
		if _, ok := board.pickedTitle(); ok {
			return "←/→ move card · enter drop · esc cancel"
		}
		return "enter pick up · drag with the mouse"
	}
	return ""
}

func (m Model) viewOverlay() *lipgloss.Layer {
	width, height := m.UiState.Width(), m.UiState.Height()

	var content string
	switch m.UiState.Mode() {
	case state.FormMode, state.DeleteConfirmMode:
		if m.form == nil {
			return nil
		}
		content = m.form.box.Render(
			components.TitleStyle.Render(m.form.title) + "\n\n" + m.form.form.View())
	case state.HelpMode:
		content = components.HelpBoxStyle.Render(
			components.TitleStyle.Render("Keys") + "\n\n" + m.help.View(m.keys))
	case state.SearchMode:
		content = m.viewSearch()
	case state.NoteViewMode:
		content = m.viewNote()
	default:
		return nil
	}
	return layers.CreateCenteredLayer(content, width, height)
}

// ============================================================================
// SCREENS
// ============================================================================

func (m Model) viewDashboard() string {
	d := m.Dashboard()

	stat := func(label, value string) string {
		return components.PanelStyle.Width(22).Render(
			components.SubtleStyle.Render(label) + "\n" + components.TitleStyle.Render(value))
	}
	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		stat("Active campaigns", fmt.Sprint(d.ActiveCampaigns)),
		stat("Tasks to do", fmt.Sprint(d.TasksToDo)),
		stat("Allocated", analytics.Currency(d.TotalAllocated)),
		stat("Creatives in progress", fmt.Sprint(d.CreativesInProgress)),
	)

	var recent strings.Builder
	recent.WriteString(components.TitleStyle.Render("Recent campaigns"))
	if len(d.RecentCampaigns) == 0 {
		recent.WriteString("\n" + components.SubtleStyle.Render("No campaigns yet"))
	}
	for _, c := range d.RecentCampaigns {
		fmt.Fprintf(&recent, "\n%s %s", components.Truncate(c.Name, 30),
			components.SubtleStyle.Render(c.Status))
	}

	var upcoming strings.Builder
	upcoming.WriteString(components.TitleStyle.Render("Open tasks"))
	if len(d.UpcomingTasks) == 0 {
		upcoming.WriteString("\n" + components.SubtleStyle.Render("Nothing to do"))
	}
	for _, t := range d.UpcomingTasks {
		priority := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Priority(t.Priority))).Render("●")
		fmt.Fprintf(&upcoming, "\n%s %s", priority, components.Truncate(t.Text, 34))
	}

	lists := lipgloss.JoinHorizontal(lipgloss.Top,
		components.PanelStyle.Width(46).Render(recent.String()),
		components.PanelStyle.Width(46).Render(upcoming.String()),
	)
	return lipgloss.JoinVertical(lipgloss.Left, stats, lists)
}

func (m Model) viewBudgets() string {
	stats := budgetservice.Summarise(m.data.budgets)
	header := fmt.Sprintf("%s allocated · %s spent · %s remaining · %s/day live",
		analytics.Currency(stats.Total),
		analytics.Currency(stats.Spent),
		analytics.Currency(stats.Remaining),
		analytics.Currency(stats.Daily))

	if len(m.data.budgets) == 0 {
		return components.SubtleStyle.Render(header) + "\n\n" +
			components.SubtleStyle.Render("No budgets. Press "+m.cfg.KeyMappings.AddItem+" to add one.")
	}

	rows := make([][]string, 0, len(m.data.budgets))
	for _, b := range m.data.budgets {
		rows = append(rows, []string{
			components.Truncate(b.Name, 24),
			b.Branch,
			b.Status,
			analytics.Currency(b.TotalBudget),
			analytics.Currency(b.DailyBudget),
			analytics.Currency(b.Spent),
			analytics.Currency(b.Remaining()),
			fmt.Sprintf("%.0f%%", b.Utilisation()*100),
		})
	}

	cursor := m.data.budgetCursor
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))).
		Headers("Name", "Branch", "Status", "Total", "Daily", "Spent", "Remaining", "Used").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return style.Bold(true).Foreground(lipgloss.Color(theme.Highlight))
			case row == cursor:
				return style.Foreground(lipgloss.Color(theme.Normal)).Background(lipgloss.Color(theme.SelectedBg))
			}
			return style.Foreground(lipgloss.Color(theme.Normal))
		})

	return components.SubtleStyle.Render(header) + "\n" + t.Render()
}

func (m Model) viewNotes(height int) string {
	if len(m.data.notes) == 0 {
		return components.SubtleStyle.Render("No notes. Press " + m.cfg.KeyMappings.AddItem + " to add one.")
	}

	listHeight := max(height-2, 1)
	start := max(0, m.data.noteCursor-listHeight+1)

	var list strings.Builder
	for i := start; i < len(m.data.notes) && i < start+listHeight; i++ {
		title := components.Truncate(m.data.notes[i].Title, 28)
		if i == m.data.noteCursor {
			title = components.TitleStyle.Render("> " + title)
		} else {
			title = "  " + title
		}
		if i > start {
			list.WriteString("\n")
		}
		list.WriteString(title)
	}

	var preview string
	if n, ok := m.currentNote(); ok {
		tags := ""
		if len(n.Tags) > 0 {
			tags = components.SubtleStyle.Render("#"+strings.Join(n.Tags, " #")) + "\n"
		}
		previewWidth := max(m.UiState.Width()-40, 20)
		preview = components.TitleStyle.Render(n.Title) + "\n" + tags + "\n" +
			lipgloss.NewStyle().Width(previewWidth-4).MaxHeight(max(height-6, 1)).Render(n.Content) + "\n\n" +
			components.SubtleStyle.Render("Press "+m.cfg.KeyMappings.ViewItem+" to read")
		preview = components.PanelStyle.Width(previewWidth).Render(preview)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		components.PanelStyle.Width(34).Render(list.String()),
		preview,
	)
}

func (m Model) viewSearch() string {
	s := m.SearchState
	width, height := layers.OverlaySize(len(s.Results), m.UiState.Width(), m.UiState.Height())
	inner := width - 4

	var b strings.Builder
	b.WriteString(s.Input.View())
	b.WriteString("\n\n")

	switch {
	case s.Query() == "":
		b.WriteString(components.SubtleStyle.Render("Type to search"))
	case len(s.Results) == 0:
		b.WriteString(components.SubtleStyle.Render("No matches"))
	}

	visible := max(height-layers.OverlayChromeHeight, 1)
	for i, r := range s.Results {
		if i >= visible {
			break
		}
		line := fmt.Sprintf("%-8s %s", kindLabel(r.Kind), components.Truncate(r.Title, inner-10))
		if i == s.Cursor {
			line = components.TitleStyle.Render(line)
		}
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(line)
		if r.Subtitle != "" && i == s.Cursor {
			b.WriteString("\n         " + components.SubtleStyle.Render(components.Truncate(r.Subtitle, inner-10)))
		}
	}

	return components.SearchBoxStyle.Width(width).Render(b.String())
}

func kindLabel(k search.Kind) string {
	switch k {
	case search.KindCampaign:
		return "Campaign"
	case search.KindTask:
		return "Task"
	default:
		return "Note"
	}
}

func (m Model) viewNote() string {
	v := m.noteView
	if v == nil {
		return ""
	}

	var body string
	switch {
	case v.err != nil:
		body = notifications.RenderInline(notifications.Error, "Could not render note: "+v.err.Error())
	case v.rendered == "":
		body = components.SubtleStyle.Render("Rendering...")
	default:
		lines := v.lines()
		start := min(v.scroll, len(lines))
		end := min(start+max(m.noteViewHeight(), 1), len(lines))
		body = strings.Join(lines[start:end], "\n")
	}

	return components.PanelStyle.Width(m.noteWidth() + 4).Render(
		components.TitleStyle.Render(v.title) + "\n\n" + body)
}
