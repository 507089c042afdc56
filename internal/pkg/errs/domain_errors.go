package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Inventory errors
	ErrEventNotFound       = errors.New("event not found")
	ErrInsufficientTickets = errors.New("insufficient tickets")
	ErrInvalidQuantity     = errors.New("invalid ticket quantity")

	// Assistant errors
	ErrResolverUnavailable = errors.New("intent resolver unavailable")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
