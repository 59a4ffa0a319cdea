package backup

import "errors"

var (
	// ErrInvalidBackup is returned when a backup lacks one of the collections
	ErrInvalidBackup = errors.New("invalid backup file format")

	// ErrUnsupportedCollection is returned for CSV imports into other collections
	ErrUnsupportedCollection = errors.New("csv import supports tasks, budgets and analytics")

	// ErrMissingColumn is returned when a CSV lacks a required header
	ErrMissingColumn = errors.New("csv is missing a required column")
)
