package tui

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/adflow/internal/tui/state"
)

// noteView is the open markdown viewer.
type noteView struct {
	id       string
	title    string
	rendered string
	err      error
	scroll   int
}

func (v *noteView) lines() []string {
	return strings.Split(v.rendered, "\n")
}

// openNoteView renders the note under the cursor with glamour off the UI
// goroutine.
func (m Model) openNoteView() (tea.Model, tea.Cmd) {
	if m.UiState.Tab() != state.TabNotes {
		return m, nil
	}
	n, ok := m.currentNote()
	if !ok {
		return m, nil
	}

	m.noteView = &noteView{id: n.ID, title: n.Title}
	m.UiState.SetMode(state.NoteViewMode)

	ctx, svc, width := m.ctx, m.app.NoteService, m.noteWidth()
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, opTimeout)
		defer cancel()
		out, err := svc.RenderMarkdown(ctx, n.ID, width)
		return noteRenderedMsg{ID: n.ID, Rendered: out, Err: err}
	}
}

func (m Model) noteWidth() int {
	return max(min(m.UiState.Width()-8, 100), 20)
}

func (m Model) handleNoteRendered(msg noteRenderedMsg) Model {
	// a late render for a closed or replaced viewer is dropped
	if m.noteView == nil || m.noteView.id != msg.ID {
		return m
	}
	if msg.Err != nil {
		m.logger.Error("failed to render note", "note_id", msg.ID, "error", msg.Err)
	}
	m.noteView.rendered = strings.TrimRight(msg.Rendered, "\n")
	m.noteView.err = msg.Err
	return m
}

func (m Model) handleNoteViewKey(msg tea.KeyPressMsg) Model {
	v := m.noteView
	if v == nil {
		m.UiState.SetMode(state.NormalMode)
		return m
	}

	page := max(m.noteViewHeight(), 1)
	last := max(len(v.lines())-page, 0)

	switch msg.String() {
	case "esc", "q", m.cfg.KeyMappings.ViewItem:
		m.noteView = nil
		m.UiState.SetMode(state.NormalMode)
	case "down", m.cfg.KeyMappings.NextItem:
		v.scroll = min(v.scroll+1, last)
	case "up", m.cfg.KeyMappings.PrevItem:
		v.scroll = max(v.scroll-1, 0)
	case "pgdown", "space":
		v.scroll = min(v.scroll+page, last)
	case "pgup":
		v.scroll = max(v.scroll-page, 0)
	case "g", "home":
		v.scroll = 0
	case "G", "end":
		v.scroll = last
	}
	return m
}

// noteViewHeight is the number of rendered lines visible in the viewer.
func (m Model) noteViewHeight() int {
	return m.UiState.Height()*3/4 - 6
}
