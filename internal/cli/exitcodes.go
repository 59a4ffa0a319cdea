package cli

import (
	"errors"

	"github.com/thenoetrevino/adflow/internal/backup"
	"github.com/thenoetrevino/adflow/internal/kanban"
	budgetservice "github.com/thenoetrevino/adflow/internal/services/budget"
	campaignservice "github.com/thenoetrevino/adflow/internal/services/campaign"
	noteservice "github.com/thenoetrevino/adflow/internal/services/note"
	taskservice "github.com/thenoetrevino/adflow/internal/services/task"
	"github.com/thenoetrevino/adflow/internal/store"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitFailure indicates a general error occurred.
	// Use for: Store errors, daemon errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitFailure = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, unknown flags or a wrong argument count.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Campaign, task, budget or note IDs that don't exist.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Broken backup files, CSV without required columns, bad JSON input.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Invalid branch, priority or status values, bad dates,
	// or a move past the first or last column.
	ExitValidation = 5
)

// ErrUsage marks a command line the user has to fix.
var ErrUsage = errors.New("invalid usage")

// ErrInvalidOption is returned for a flag value outside its fixed list.
var ErrInvalidOption = errors.New("invalid option")

var notFoundErrors = []error{
	store.ErrNotFound,
	campaignservice.ErrCampaignNotFound,
	taskservice.ErrTaskNotFound,
	taskservice.ErrCampaignNotFound,
	budgetservice.ErrBudgetNotFound,
	noteservice.ErrNoteNotFound,
}

var dataErrors = []error{
	backup.ErrInvalidBackup,
	backup.ErrMissingColumn,
	backup.ErrUnsupportedCollection,
	taskservice.ErrInvalidImport,
}

var validationErrors = []error{
	ErrNoStep,
	ErrInvalidOption,
	kanban.ErrUnknownStatus,
	campaignservice.ErrEmptyName,
	campaignservice.ErrInvalidBranch,
	campaignservice.ErrInvalidObjective,
	campaignservice.ErrInvalidStatus,
	campaignservice.ErrInvalidDate,
	campaignservice.ErrEndBeforeStart,
	campaignservice.ErrNegativeTarget,
	campaignservice.ErrInvalidCampaignID,
	taskservice.ErrEmptyText,
	taskservice.ErrInvalidPriority,
	taskservice.ErrInvalidStatus,
	taskservice.ErrInvalidTaskID,
	budgetservice.ErrEmptyName,
	budgetservice.ErrNameTooLong,
	budgetservice.ErrInvalidBranch,
	budgetservice.ErrNegativeAmount,
	budgetservice.ErrInvalidDate,
	budgetservice.ErrEndBeforeStart,
	budgetservice.ErrInvalidBudgetID,
	noteservice.ErrEmptyTitle,
	noteservice.ErrEmptyContent,
	noteservice.ErrInvalidNoteID,
}

// ExitCodeFor maps an error returned by a command to its exit code.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	switch {
	case errors.Is(err, ErrUsage):
		return ExitUsage
	case isAny(err, notFoundErrors):
		return ExitNotFound
	case isAny(err, dataErrors):
		return ExitDataErr
	case isAny(err, validationErrors):
		return ExitValidation
	default:
		return ExitFailure
	}
}

// errorCode is the machine-readable code printed in JSON error output
func errorCode(exit int) string {
	switch exit {
	case ExitUsage:
		return "USAGE_ERROR"
	case ExitNotFound:
		return "NOT_FOUND"
	case ExitDataErr:
		return "DATA_ERROR"
	case ExitValidation:
		return "VALIDATION_ERROR"
	default:
		return "ERROR"
	}
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// ExitError is an error that has already been shown to the user and
// carries the exit code the process should end with.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}
