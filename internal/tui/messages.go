package tui

import (
	"context"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/adflow/internal/kanban"
	"github.com/thenoetrevino/adflow/internal/models"
)

// Store pushes, bridged from subscription callbacks
type (
	campaignsMsg []models.Campaign
	tasksMsg     []models.Task
	budgetsMsg   []models.Budget
	notesMsg     []models.Note
)

// noticeMsg carries a board controller notice to the UI goroutine
type noticeMsg kanban.Notice

// moveDoneMsg reports that a board move finished persisting
type moveDoneMsg struct {
	ID string
	OK bool
}

// opResultMsg reports a create/update/delete run off the UI goroutine
type opResultMsg struct {
	Message string
	Err     error
}

// noteRenderedMsg carries a glamour-rendered note
type noteRenderedMsg struct {
	ID       string
	Rendered string
	Err      error
}

// toastTickMsg expires toasts
type toastTickMsg time.Time

// listen waits for the next message on ch.
func listen[T any](ctx context.Context, ch <-chan T, wrap func(T) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		select {
		case v := <-ch:
			return wrap(v)
		case <-ctx.Done():
			return nil
		}
	}
}

func toastTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return toastTickMsg(t) })
}

// channelNotifier forwards controller notices to the UI. Moves commit on
// command goroutines, so Notify must not touch the model directly. Selection
// notices are sent from the UI goroutine itself, so a full queue drops the
// toast instead of blocking.
type channelNotifier struct {
	ch chan<- kanban.Notice
}

func (n channelNotifier) Notify(notice kanban.Notice) {
	select {
	case n.ch <- notice:
	default:
		slog.Debug("dropping toast, notice queue full", "kind", notice.Kind.String(), "item_id", notice.ItemID)
	}
}
