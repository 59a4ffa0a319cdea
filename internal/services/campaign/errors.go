package campaign

import "errors"

// Domain errors for campaign service
var (
	// Validation errors
	ErrEmptyName         = errors.New("campaign name cannot be empty")
	ErrInvalidBranch     = errors.New("invalid branch")
	ErrInvalidObjective  = errors.New("invalid objective")
	ErrInvalidStatus     = errors.New("invalid campaign status")
	ErrInvalidDate       = errors.New("dates must use YYYY-MM-DD")
	ErrEndBeforeStart    = errors.New("end date cannot be before start date")
	ErrNegativeTarget    = errors.New("target value cannot be negative")
	ErrInvalidCampaignID = errors.New("invalid campaign ID")

	// Business logic errors
	ErrCampaignNotFound = errors.New("campaign not found")
)
