package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/adflow/internal/kanban"
	"github.com/thenoetrevino/adflow/internal/tui/components"
)

// board is the view state of one kanban board: the items grouped by
// column, the keyboard cursor and the drag hover. Moves go through the
// board's controller.
type board[T kanban.Item[T]] struct {
	ctrl    *kanban.Controller[T]
	present func(T) components.Card
	empty   string

	grouped map[string][]T
	orphans []T

	col, row int
	scroll   []int
	hover    int // column under a dragged card, -1 when none
}

func newBoard[T kanban.Item[T]](ctrl *kanban.Controller[T], present func(T) components.Card, empty string) *board[T] {
	cols := ctrl.Engine().Columns()
	b := &board[T]{
		ctrl:    ctrl,
		present: present,
		empty:   empty,
		scroll:  make([]int, cols.Len()),
		hover:   -1,
	}
	b.grouped, _ = ctrl.Engine().Group(nil)
	return b
}

func (b *board[T]) columns() kanban.Columns {
	return b.ctrl.Engine().Columns()
}

func (b *board[T]) column(i int) []T {
	return b.grouped[b.columns().At(i)]
}

// setItems regroups the board after a store push. A keyboard-picked card
// keeps the cursor, wherever its new status put it.
func (b *board[T]) setItems(items []T) {
	b.grouped, b.orphans = b.ctrl.Engine().Group(items)

	if picked, ok := b.ctrl.Selection().Item(); ok && b.ctrl.Selection().Mode() == kanban.ModeKeyboard {
		if b.focus(picked.GetID()) {
			return
		}
	}
	b.clampCursor()
}

// focus puts the cursor on id and reports whether it was found.
func (b *board[T]) focus(id string) bool {
	for c := 0; c < b.columns().Len(); c++ {
		for r, item := range b.column(c) {
			if item.GetID() == id {
				b.col, b.row = c, r
				return true
			}
		}
	}
	return false
}

func (b *board[T]) clampCursor() {
	b.col = max(0, min(b.col, b.columns().Len()-1))
	b.row = max(0, min(b.row, len(b.column(b.col))-1))
}

// current returns the card under the cursor.
func (b *board[T]) current() (T, bool) {
	items := b.column(b.col)
	if b.row < 0 || b.row >= len(items) {
		var zero T
		return zero, false
	}
	return items[b.row], true
}

// moveColumn and moveRow shift the cursor, clamped to the board.
func (b *board[T]) moveColumn(delta int) {
	b.col = max(0, min(b.col+delta, b.columns().Len()-1))
	b.row = min(b.row, max(len(b.column(b.col))-1, 0))
}

func (b *board[T]) moveRow(delta int) {
	b.row = max(0, min(b.row+delta, len(b.column(b.col))-1))
}

// picked reports whether a card is held by the keyboard.
func (b *board[T]) picked() bool {
	return b.ctrl.Selection().Mode() == kanban.ModeKeyboard
}

// pickedTitle is the title of the keyboard-held card.
func (b *board[T]) pickedTitle() (string, bool) {
	item, ok := b.ctrl.Selection().Item()
	if !ok || !b.picked() {
		return "", false
	}
	return b.present(item).Title, true
}

// key forwards a board key to the controller for the card under the
// cursor. The returned command persists a resulting move off the UI
// goroutine.
func (b *board[T]) key(ctx context.Context, k kanban.Key) (bool, tea.Cmd) {
	if k == kanban.KeyOther {
		return false, nil
	}

	item, ok := b.current()
	if k == kanban.KeyLeft || k == kanban.KeyRight || k == kanban.KeyEscape {
		// arrows and escape act on the held card even if the cursor drifted;
		// enter and space pick whatever is under the cursor
		if picked, holding := b.ctrl.Selection().Item(); holding && b.picked() {
			item, ok = picked, true
		}
	}
	if !ok {
		return false, nil
	}

	consumed, move := b.ctrl.PrepareKey(k, item)
	return consumed, commit(ctx, move)
}

// layout measures the rendered geometry used for mouse hit testing.
type layout struct {
	top        int // screen row of the column's top border
	colWidth   int
	cardHeight int
	height     int
}

func measure(top, height int) layout {
	return layout{
		top:        top,
		colWidth:   lipgloss.Width(components.RenderColumn(components.ColumnProps{Height: height})),
		cardHeight: lipgloss.Height(components.RenderCard(components.Card{})),
		height:     height,
	}
}

// columnAt returns the column index under x, or -1.
func (b *board[T]) columnAt(l layout, x int) int {
	if l.colWidth <= 0 || x < 0 {
		return -1
	}
	c := x / l.colWidth
	if c >= b.columns().Len() {
		return -1
	}
	return c
}

// cardAt returns the column and row of the card under (x, y).
func (b *board[T]) cardAt(l layout, x, y int) (int, int, bool) {
	c := b.columnAt(l, x)
	if c < 0 {
		return 0, 0, false
	}
	offset := y - l.top - components.ColumnHeaderLines
	if offset < 0 || l.cardHeight <= 0 {
		return 0, 0, false
	}
	slot := offset / l.cardHeight
	if slot >= components.VisibleCards(l.height) {
		return 0, 0, false
	}
	r := b.scroll[c] + slot
	if r >= len(b.column(c)) {
		return 0, 0, false
	}
	return c, r, true
}

// press starts a drag on the card under the pointer.
func (b *board[T]) press(l layout, x, y int) bool {
	c, r, ok := b.cardAt(l, x, y)
	if !ok {
		return false
	}
	b.col, b.row = c, r
	b.ctrl.DragStart(b.column(c)[r])
	b.hover = c
	return true
}

// motion tracks the column a dragged card hovers over.
func (b *board[T]) motion(l layout, x int) {
	if b.ctrl.Selection().Mode() != kanban.ModeDragging {
		return
	}
	b.hover = b.columnAt(l, x)
}

// release drops a dragged card on the column under the pointer. Releasing
// outside every column abandons the drag.
func (b *board[T]) release(ctx context.Context, l layout, x int) tea.Cmd {
	b.hover = -1
	if b.ctrl.Selection().Mode() != kanban.ModeDragging {
		return nil
	}
	c := b.columnAt(l, x)
	if c < 0 {
		b.ctrl.DragEnd()
		return nil
	}
	return commit(ctx, b.ctrl.PrepareDrop(b.columns().At(c)))
}

func commit[T kanban.Item[T]](ctx context.Context, move *kanban.Move[T]) tea.Cmd {
	if move == nil {
		return nil
	}
	return func() tea.Msg {
		ok := move.Commit(ctx)
		return moveDoneMsg{ID: move.Item.GetID(), OK: ok}
	}
}

// view renders the columns side by side, height rows tall.
func (b *board[T]) view(height int) string {
	selection := b.ctrl.Selection()
	visible := components.VisibleCards(height)

	rendered := make([]string, 0, b.columns().Len())
	for c := 0; c < b.columns().Len(); c++ {
		items := b.column(c)

		// keep the cursor row on screen
		if c == b.col {
			if b.row < b.scroll[c] {
				b.scroll[c] = b.row
			} else if b.row >= b.scroll[c]+visible {
				b.scroll[c] = b.row - visible + 1
			}
		}
		b.scroll[c] = max(0, min(b.scroll[c], len(items)-visible))

		cards := make([]components.Card, len(items))
		for r, item := range items {
			card := b.present(item)
			card.ID = item.GetID()
			card.Focused = c == b.col && r == b.row
			card.Picked = selection.Holds(kanban.ModeKeyboard, item.GetID()) ||
				selection.Holds(kanban.ModeDragging, item.GetID())
			card.Pending = b.ctrl.InFlight(item.GetID())
			cards[r] = card
		}

		rendered = append(rendered, components.RenderColumn(components.ColumnProps{
			Title:      b.columns().At(c),
			Cards:      cards,
			Focused:    c == b.col,
			DropTarget: c == b.hover,
			Height:     height,
			Scroll:     b.scroll[c],
			EmptyText:  b.empty,
		}))
	}

	out := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	if len(b.orphans) > 0 {
		out += "\n" + components.SubtleStyle.Render(
			pluralise(len(b.orphans), "card has", "cards have")+" a status that is not a column")
	}
	return out
}
