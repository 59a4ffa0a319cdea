package kanban

import (
	"context"
	"log/slog"
	"sync"
)

// Saver persists an item whose status changed.
type Saver[T any] interface {
	Save(ctx context.Context, item T) error
}

// SaverFunc adapts a function to Saver.
type SaverFunc[T any] func(ctx context.Context, item T) error

// Save calls f(ctx, item).
func (f SaverFunc[T]) Save(ctx context.Context, item T) error {
	return f(ctx, item)
}

// Origin records which interaction produced a move.
type Origin int

const (
	OriginDrag Origin = iota
	OriginKeyboard
)

// Controller turns drag and keyboard events into engine calls, persists
// the result through the injected Saver and reports the outcome through
// the injected Notifier.
//
// Persistence failures never escape the controller: they are logged and
// turned into a NoticeMoveFailed. While a save for an item is pending,
// further moves of that item are dropped.
type Controller[T Item[T]] struct {
	engine   *Engine[T]
	saver    Saver[T]
	notifier Notifier
	logger   *slog.Logger
	noun     string

	mu        sync.Mutex
	selection Selection[T]
	inFlight  map[string]struct{}
}

// ControllerOption configures a Controller.
type ControllerOption func(*controllerConfig)

type controllerConfig struct {
	logger *slog.Logger
	noun   string
}

// WithLogger sets the logger used for persistence failures and dropped moves.
func WithLogger(logger *slog.Logger) ControllerOption {
	return func(cfg *controllerConfig) {
		cfg.logger = logger
	}
}

// WithNoun sets the singular item name used in selection notices ("Campaign").
func WithNoun(noun string) ControllerOption {
	return func(cfg *controllerConfig) {
		cfg.noun = noun
	}
}

// NewController wires a controller for one board.
func NewController[T Item[T]](engine *Engine[T], saver Saver[T], notifier Notifier, opts ...ControllerOption) *Controller[T] {
	cfg := controllerConfig{
		logger: slog.Default(),
		noun:   "Item",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if notifier == nil {
		notifier = NotifierFunc(func(Notice) {})
	}

	return &Controller[T]{
		engine:   engine,
		saver:    saver,
		notifier: notifier,
		logger:   cfg.logger,
		noun:     cfg.noun,
		inFlight: make(map[string]struct{}),
	}
}

// Engine returns the controller's transition engine.
func (c *Controller[T]) Engine() *Engine[T] {
	return c.engine
}

// Selection returns a snapshot of the current selection.
func (c *Controller[T]) Selection() Selection[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selection
}

// InFlight reports whether a save for id is pending.
func (c *Controller[T]) InFlight(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, pending := c.inFlight[id]
	return pending
}

// DragStart grabs item with the pointer, replacing any keyboard pick.
func (c *Controller[T]) DragStart(item T) DropEffect {
	c.mu.Lock()
	c.selection = Dragging(item)
	c.mu.Unlock()
	return EffectMove
}

// DragEnd abandons a drag without dropping.
func (c *Controller[T]) DragEnd() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selection.Mode() == ModeDragging {
		c.selection = NoSelection[T]()
	}
}

// Drop drops the dragged item on target and waits for the save.
// It reports whether a move was persisted.
func (c *Controller[T]) Drop(ctx context.Context, target string) bool {
	move := c.PrepareDrop(target)
	if move == nil {
		return false
	}
	return move.Commit(ctx)
}

// KeyDown handles a key pressed on item and waits for any resulting save.
// It reports whether the key was consumed by the board.
func (c *Controller[T]) KeyDown(ctx context.Context, key Key, item T) bool {
	consumed, move := c.PrepareKey(key, item)
	if move != nil {
		move.Commit(ctx)
	}
	return consumed
}

// PrepareDrop resolves a drop synchronously and returns the pending move,
// or nil when there is nothing to persist. The drag selection is cleared
// in every case.
func (c *Controller[T]) PrepareDrop(target string) *Move[T] {
	c.mu.Lock()
	defer c.mu.Unlock()

	dragged, holding := c.selection.Item()
	if !holding || c.selection.Mode() != ModeDragging {
		return nil
	}
	c.selection = NoSelection[T]()

	updated, changed := c.engine.ComputeDrop(dragged, target)
	if !changed {
		return nil
	}
	return c.beginLocked(dragged, updated, OriginDrag)
}

// PrepareKey resolves a key press synchronously. Selection notices are
// emitted before it returns; a step that needs persisting is returned as
// a pending move.
func (c *Controller[T]) PrepareKey(key Key, item T) (bool, *Move[T]) {
	switch key {
	case KeyEnter, KeySpace:
		c.toggle(item)
		return true, nil

	case KeyEscape:
		return c.cancel(), nil

	case KeyLeft, KeyRight:
		dir := Forward
		if key == KeyLeft {
			dir = Backward
		}
		return c.step(item, dir)

	default:
		return false, nil
	}
}

func (c *Controller[T]) toggle(item T) {
	c.mu.Lock()
	var notice Notice
	if c.selection.Holds(ModeKeyboard, item.GetID()) {
		c.selection = NoSelection[T]()
		notice = deselectedNotice(c.noun, item.GetID())
	} else {
		c.selection = Picked(item)
		notice = selectedNotice(c.noun, item.GetID())
	}
	c.mu.Unlock()

	c.notifier.Notify(notice)
}

func (c *Controller[T]) cancel() bool {
	c.mu.Lock()
	picked, holding := c.selection.Item()
	if !holding || c.selection.Mode() != ModeKeyboard {
		c.mu.Unlock()
		return false
	}
	c.selection = NoSelection[T]()
	c.mu.Unlock()

	c.notifier.Notify(cancelledNotice(picked.GetID()))
	return true
}

func (c *Controller[T]) step(item T, dir Direction) (bool, *Move[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// keys fired on a card other than the picked one are stale
	if !c.selection.Holds(ModeKeyboard, item.GetID()) {
		return false, nil
	}
	picked, _ := c.selection.Item()

	updated, changed, err := c.engine.ComputeStep(picked, dir)
	if err != nil {
		c.logger.Warn("ignoring step for item with unknown status",
			"item_id", picked.GetID(),
			"status", picked.GetStatus(),
			"direction", dir.String(),
			"error", err)
		return true, nil
	}
	if !changed {
		return true, nil
	}
	return true, c.beginLocked(picked, updated, OriginKeyboard)
}

// beginLocked registers an in-flight save. Callers hold c.mu.
func (c *Controller[T]) beginLocked(from, to T, origin Origin) *Move[T] {
	id := to.GetID()
	if _, pending := c.inFlight[id]; pending {
		c.logger.Debug("dropping move while previous save is pending",
			"item_id", id,
			"target_status", to.GetStatus())
		return nil
	}
	c.inFlight[id] = struct{}{}

	return &Move[T]{
		Item:   to,
		From:   from.GetStatus(),
		Origin: origin,
		ctrl:   c,
	}
}

// finish clears the in-flight flag and, for successful keyboard moves,
// refreshes the picked item's cached status.
func (c *Controller[T]) finish(m *Move[T], err error) {
	c.mu.Lock()
	delete(c.inFlight, m.Item.GetID())
	if err == nil && m.Origin == OriginKeyboard && c.selection.Holds(ModeKeyboard, m.Item.GetID()) {
		c.selection = Picked(m.Item)
	}
	c.mu.Unlock()

	if err != nil {
		c.logger.Error("failed to update status",
			"item_id", m.Item.GetID(),
			"from", m.From,
			"to", m.Item.GetStatus(),
			"error", err)
		c.notifier.Notify(moveFailedNotice(m.Item.GetID(), m.Item.GetStatus(), err))
		return
	}

	c.notifier.Notify(movedNotice(m.Item.GetID(), m.Item.GetStatus()))
}

// Move is a computed status change waiting to be persisted.
type Move[T Item[T]] struct {
	Item   T
	From   string
	Origin Origin

	ctrl *Controller[T]
	once sync.Once
	ok   bool
}

// Commit saves the move and reports the outcome through the notifier.
// It is safe to call from any goroutine; only the first call saves.
func (m *Move[T]) Commit(ctx context.Context) bool {
	m.once.Do(func() {
		err := m.ctrl.saver.Save(ctx, m.Item)
		m.ctrl.finish(m, err)
		m.ok = err == nil
	})
	return m.ok
}
