package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/thenoetrevino/adflow/internal/kanban"
)

// ErrNoStep is returned when next/prev would leave the board
var ErrNoStep = errors.New("no column in that direction")

// MoveResult is what the move commands print
type MoveResult struct {
	ID      string `json:"id"`
	From    string `json:"from"`
	To      string `json:"to"`
	Moved   bool   `json:"moved"`
	Message string `json:"message,omitempty"`
}

// GetID returns the moved item's ID
func (r MoveResult) GetID() string { return r.ID }

// noticeLog keeps the last move outcome the controller reported
type noticeLog struct {
	mu   sync.Mutex
	last kanban.Notice
}

func (l *noticeLog) Notify(n kanban.Notice) {
	if n.Kind != kanban.NoticeMoved && n.Kind != kanban.NoticeMoveFailed {
		return
	}
	l.mu.Lock()
	l.last = n
	l.mu.Unlock()
}

func (l *noticeLog) get() kanban.Notice {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.last
}

// MoveItem moves item on a board with columns cols and persists it through
// saver, the same way the TUI does. target is "next", "prev" or a column
// name. "next" and "prev" pick the item with the keyboard and step it; a
// column name drags it there.
func MoveItem[T kanban.Item[T]](ctx context.Context, item T, cols kanban.Columns, saver kanban.Saver[T], target, noun string, logger *slog.Logger) (MoveResult, error) {
	notices := &noticeLog{}
	ctrl := kanban.NewController(kanban.NewEngine[T](cols), saver, notices,
		kanban.WithLogger(logger),
		kanban.WithNoun(noun))

	result := MoveResult{ID: item.GetID(), From: item.GetStatus(), To: item.GetStatus()}

	var move *kanban.Move[T]
	switch strings.ToLower(strings.TrimSpace(target)) {
	case "next", "prev":
		key := kanban.KeyRight
		if strings.EqualFold(strings.TrimSpace(target), "prev") {
			key = kanban.KeyLeft
		}
		if !cols.Contains(item.GetStatus()) {
			return result, fmt.Errorf("%w: %q", kanban.ErrUnknownStatus, item.GetStatus())
		}
		ctrl.PrepareKey(kanban.KeyEnter, item)
		_, move = ctrl.PrepareKey(key, item)
		if move == nil {
			edge := "last"
			if key == kanban.KeyLeft {
				edge = "first"
			}
			return result, fmt.Errorf("%w: already in the %s column (%s)", ErrNoStep, edge, item.GetStatus())
		}

	default:
		status, err := ResolveStatus(cols, target)
		if err != nil {
			return result, err
		}
		ctrl.DragStart(item)
		move = ctrl.PrepareDrop(status)
		if move == nil {
			result.Message = fmt.Sprintf("Already in %s.", status)
			return result, nil
		}
	}

	ok := move.Commit(ctx)
	notice := notices.get()
	result.Message = notice.Message
	if !ok {
		return result, fmt.Errorf("%s %w", notice.Message, notice.Err)
	}
	result.To = move.Item.GetStatus()
	result.Moved = true
	return result, nil
}
