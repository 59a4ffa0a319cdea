package note

import "errors"

// Domain errors for note service
var (
	ErrEmptyTitle    = errors.New("note title cannot be empty")
	ErrEmptyContent  = errors.New("note content cannot be empty")
	ErrInvalidNoteID = errors.New("invalid note ID")

	ErrNoteNotFound = errors.New("note not found")
)
