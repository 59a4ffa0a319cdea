// Package kanban implements the status transition engine and the
// interaction controller shared by every board (campaigns, tasks).
package kanban

import "fmt"

// Item is anything that can sit on a board: it has a stable id and a
// status drawn from the board's column list. WithStatus must return a
// copy that differs from the receiver only in its status.
type Item[T any] interface {
	GetID() string
	GetStatus() string
	WithStatus(status string) T
}

// Direction is a keyboard step across columns.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Engine computes status transitions for one column list.
// It holds no state besides the columns and never persists anything.
type Engine[T Item[T]] struct {
	columns Columns
}

// NewEngine creates an engine bound to the given columns.
func NewEngine[T Item[T]](columns Columns) *Engine[T] {
	return &Engine[T]{columns: columns}
}

// Columns returns the engine's column list.
func (e *Engine[T]) Columns() Columns {
	return e.columns
}

// ComputeDrop moves item to target. The second result is false when the
// target is not a column or is already the item's status; the item is
// then returned unchanged and nothing should be persisted.
func (e *Engine[T]) ComputeDrop(item T, target string) (T, bool) {
	if !e.columns.Contains(target) || item.GetStatus() == target {
		return item, false
	}
	return item.WithStatus(target), true
}

// ComputeStep moves item one column in dir, clamped to the board edges.
// A clamped step returns the item unchanged with false.
func (e *Engine[T]) ComputeStep(item T, dir Direction) (T, bool, error) {
	index := e.columns.Index(item.GetStatus())
	if index < 0 {
		return item, false, fmt.Errorf("%q: %w", item.GetStatus(), ErrUnknownStatus)
	}

	next := index + 1
	if dir == Backward {
		next = index - 1
	}
	next = max(0, min(next, e.columns.Len()-1))

	if next == index {
		return item, false, nil
	}
	return item.WithStatus(e.columns.At(next)), true, nil
}

// Group buckets items by status in column order. Items whose status is not
// a column are returned separately so callers can surface them.
func (e *Engine[T]) Group(items []T) (map[string][]T, []T) {
	grouped := make(map[string][]T, e.columns.Len())
	for _, label := range e.columns.labels {
		grouped[label] = []T{}
	}

	var orphans []T
	for _, item := range items {
		if !e.columns.Contains(item.GetStatus()) {
			orphans = append(orphans, item)
			continue
		}
		grouped[item.GetStatus()] = append(grouped[item.GetStatus()], item)
	}
	return grouped, orphans
}
