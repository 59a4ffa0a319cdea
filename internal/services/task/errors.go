package task

import "errors"

// Domain errors for task service
var (
	// Validation errors
	ErrEmptyText       = errors.New("task text cannot be empty")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidStatus   = errors.New("invalid task status")
	ErrInvalidTaskID   = errors.New("invalid task ID")
	ErrInvalidImport   = errors.New("import must be a JSON array of tasks")

	// Business logic errors
	ErrTaskNotFound     = errors.New("task not found")
	ErrCampaignNotFound = errors.New("linked campaign not found")
)
