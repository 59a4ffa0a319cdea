package tui

import (
	"context"
	"strconv"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/adflow/internal/kanban"
	"github.com/thenoetrevino/adflow/internal/search"
	"github.com/thenoetrevino/adflow/internal/tui/components"
	"github.com/thenoetrevino/adflow/internal/tui/state"
)

// boardView is the part of a board the update loop drives, independent of
// the item type.
type boardView interface {
	key(ctx context.Context, k kanban.Key) (bool, tea.Cmd)
	press(l layout, x, y int) bool
	motion(l layout, x int)
	release(ctx context.Context, l layout, x int) tea.Cmd
	moveColumn(delta int)
	moveRow(delta int)
	view(height int) string
	pickedTitle() (string, bool)
}

func (m Model) activeBoard() boardView {
	switch m.UiState.Tab() {
	case state.TabCampaigns:
		return m.campaigns
	case state.TabTasks:
		return m.tasks
	}
	return nil
}

// Update handles every message for the TUI.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetSize(msg.Width, msg.Height)
		m.NotificationState.SetWindowSize(msg.Width, msg.Height)
		m.help.SetWidth(msg.Width)
		return m, nil

	case campaignsMsg:
		m.data.campaigns = msg
		m.campaigns.setItems(msg)
		m.refreshSearch()
		return m, m.listenUpdates()
	case tasksMsg:
		m.data.tasks = msg
		m.tasks.setItems(msg)
		m.refreshSearch()
		return m, m.listenUpdates()
	case budgetsMsg:
		m.data.budgets = msg
		m.data.budgetCursor = clamp(m.data.budgetCursor, len(msg))
		return m, m.listenUpdates()
	case notesMsg:
		m.data.notes = msg
		m.data.noteCursor = clamp(m.data.noteCursor, len(msg))
		m.refreshSearch()
		return m, m.listenUpdates()

	case noticeMsg:
		m.NotificationState.AddNotice(kanban.Notice(msg))
		return m, m.listenNotices()

	case moveDoneMsg:
		// the notice and the store push carry the outcome
		return m, nil

	case opResultMsg:
		return m.handleResult(msg), nil

	case noteRenderedMsg:
		return m.handleNoteRendered(msg), nil

	case toastTickMsg:
		m.NotificationState.Expire()
		return m, toastTick(m.NotificationState.TTL() / 3)
	}

	switch m.UiState.Mode() {
	case state.FormMode, state.DeleteConfirmMode:
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	case tea.MouseClickMsg:
		return m.handleClick(msg.Mouse())
	case tea.MouseMotionMsg:
		if board := m.activeBoard(); board != nil && m.UiState.Mode() == state.NormalMode {
			board.motion(m.boardLayout(), msg.Mouse().X)
		}
		return m, nil
	case tea.MouseReleaseMsg:
		if board := m.activeBoard(); board != nil && m.UiState.Mode() == state.NormalMode {
			return m, board.release(m.ctx, m.boardLayout(), msg.Mouse().X)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch m.UiState.Mode() {
	case state.SearchMode:
		return m.handleSearchKey(msg)
	case state.HelpMode:
		if msg.String() == "esc" || key.Matches(msg, m.keys.Help, m.keys.Quit) {
			m.UiState.SetMode(state.NormalMode)
		}
		return m, nil
	case state.NoteViewMode:
		return m.handleNoteViewKey(msg), nil
	}
	return m.handleNormalKey(msg)
}

func (m Model) handleNormalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	board := m.activeBoard()

	// enter, space, esc and the arrows belong to the board controller
	if board != nil {
		if consumed, cmd := board.key(m.ctx, kanban.ParseKey(msg.String())); consumed {
			return m, cmd
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.UiState.SetMode(state.HelpMode)
		return m, nil
	case key.Matches(msg, m.keys.Search):
		return m.openSearch()
	case key.Matches(msg, m.keys.NextTab):
		m.UiState.CycleTab(1)
		return m, nil
	case key.Matches(msg, m.keys.PrevTab):
		m.UiState.CycleTab(-1)
		return m, nil
	case key.Matches(msg, m.keys.Add):
		return m.openCreateForm()
	case key.Matches(msg, m.keys.Edit):
		return m.openEditForm()
	case key.Matches(msg, m.keys.Delete):
		return m.openDeleteForm()
	case key.Matches(msg, m.keys.View):
		return m.openNoteView()
	}

	if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= len(state.TabNames) {
		m.UiState.SetTab(state.Tab(n - 1))
		return m, nil
	}

	m.navigate(board, msg)
	return m, nil
}

// navigate moves the cursor of the active board or list. The arrow keys
// reach here only when no card is picked.
func (m Model) navigate(board boardView, msg tea.KeyPressMsg) {
	prevCol := key.Matches(msg, m.keys.PrevColumn) || msg.String() == "left"
	nextCol := key.Matches(msg, m.keys.NextColumn) || msg.String() == "right"
	prevRow := key.Matches(msg, m.keys.PrevItem)
	nextRow := key.Matches(msg, m.keys.NextItem)

	if board != nil {
		switch {
		case prevCol:
			board.moveColumn(-1)
		case nextCol:
			board.moveColumn(1)
		case prevRow:
			board.moveRow(-1)
		case nextRow:
			board.moveRow(1)
		}
		return
	}

	delta := 0
	if prevRow {
		delta = -1
	} else if nextRow {
		delta = 1
	}
	switch m.UiState.Tab() {
	case state.TabBudgets:
		m.data.budgetCursor = clamp(m.data.budgetCursor+delta, len(m.data.budgets))
	case state.TabNotes:
		m.data.noteCursor = clamp(m.data.noteCursor+delta, len(m.data.notes))
	}
}

// handleClick switches tabs from the tab bar and starts drags on boards.
func (m Model) handleClick(mouse tea.Mouse) (tea.Model, tea.Cmd) {
	if mouse.Button != tea.MouseLeft || m.UiState.Mode() != state.NormalMode {
		return m, nil
	}

	if mouse.Y < components.TabBarHeight {
		if i := components.TabAt(state.TabNames, mouse.X); i >= 0 {
			m.UiState.SetTab(state.Tab(i))
		}
		return m, nil
	}

	if board := m.activeBoard(); board != nil {
		board.press(m.boardLayout(), mouse.X, mouse.Y)
	}
	return m, nil
}

// ============================================================================
// SEARCH
// ============================================================================

func (m Model) openSearch() (tea.Model, tea.Cmd) {
	m.SearchState.Reset()
	m.UiState.SetMode(state.SearchMode)
	return m, m.SearchState.Input.Focus()
}

func (m Model) closeSearch() {
	m.SearchState.Input.Blur()
	m.SearchState.Reset()
	m.UiState.SetMode(state.NormalMode)
}

func (m Model) handleSearchKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeSearch()
		return m, nil
	case "up", "ctrl+p":
		m.SearchState.Move(-1)
		return m, nil
	case "down", "ctrl+n":
		m.SearchState.Move(1)
		return m, nil
	case "enter":
		if result, ok := m.SearchState.Selected(); ok {
			m.jumpTo(result)
		}
		m.closeSearch()
		return m, nil
	}

	var cmd tea.Cmd
	m.SearchState.Input, cmd = m.SearchState.Input.Update(msg)
	m.refreshSearch()
	return m, cmd
}

// refreshSearch reruns the open query against the latest data.
func (m Model) refreshSearch() {
	if m.UiState.Mode() != state.SearchMode {
		return
	}
	index := search.Index(m.data.campaigns, m.data.tasks, m.data.notes)
	m.SearchState.SetResults(search.Search(index, m.SearchState.Query()))
}

// jumpTo opens the tab holding result and puts the cursor on it.
func (m Model) jumpTo(result search.Result) {
	switch result.Kind {
	case search.KindCampaign:
		m.UiState.SetTab(state.TabCampaigns)
		m.campaigns.focus(result.ID)
	case search.KindTask:
		m.UiState.SetTab(state.TabTasks)
		m.tasks.focus(result.ID)
	case search.KindNote:
		m.UiState.SetTab(state.TabNotes)
		for i, n := range m.data.notes {
			if n.ID == result.ID {
				m.data.noteCursor = i
			}
		}
	}
}

// clamp keeps a list cursor inside [0, n).
func clamp(i, n int) int {
	return max(0, min(i, n-1))
}
