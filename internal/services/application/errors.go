package application

import "errors"

// Application-related errors
var (
	// Validation errors
	ErrInvalidApplicationID = errors.New("invalid application ID")
	ErrEmptyCompany         = errors.New("company cannot be empty")
	ErrCompanyTooLong       = errors.New("company cannot exceed 255 characters")
	ErrEmptyRole            = errors.New("role cannot be empty")
	ErrRoleTooLong          = errors.New("role cannot exceed 255 characters")
	ErrInvalidStatus        = errors.New("invalid status")

	// Business logic errors
	ErrApplicationNotFound = errors.New("application not found")
)
