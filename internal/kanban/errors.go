package kanban

import "errors"

// Board configuration errors
var (
	ErrNoColumns       = errors.New("column list cannot be empty")
	ErrEmptyColumn     = errors.New("column label cannot be empty")
	ErrDuplicateColumn = errors.New("column label appears more than once")
)

// Transition errors
var (
	// ErrUnknownStatus indicates an item whose status is not part of the
	// board's column list. Callers must only hand the engine items with
	// statuses drawn from the column list.
	ErrUnknownStatus = errors.New("status is not in the column list")
)
