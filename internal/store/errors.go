package store

import "errors"

var (
	// ErrNotFound is returned when a document does not exist
	ErrNotFound = errors.New("document not found")

	// ErrEmptyCollection is returned when no collection name is given
	ErrEmptyCollection = errors.New("collection name cannot be empty")

	// ErrEmptyID is returned by Delete and Get when no id is given
	ErrEmptyID = errors.New("document id cannot be empty")

	// ErrInvalidID is returned when a document's id field is not a string
	ErrInvalidID = errors.New("document id must be a string")

	// ErrClosed is returned after Close
	ErrClosed = errors.New("store is closed")
)
