package budget

import "errors"

// Domain errors for budget service
var (
	ErrEmptyName       = errors.New("budget name cannot be empty")
	ErrNameTooLong     = errors.New("budget name cannot exceed 100 characters")
	ErrInvalidBranch   = errors.New("invalid branch")
	ErrNegativeAmount  = errors.New("budget amounts cannot be negative")
	ErrInvalidDate     = errors.New("dates must use YYYY-MM-DD")
	ErrEndBeforeStart  = errors.New("end date cannot be before start date")
	ErrInvalidBudgetID = errors.New("invalid budget ID")

	ErrBudgetNotFound = errors.New("budget not found")
)
