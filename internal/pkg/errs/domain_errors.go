package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Request errors
	ErrRequestNotFound = errors.New("request not found")
	ErrEmptyLines      = errors.New("request needs at least one medication line")
	ErrUnknownLine     = errors.New("medication is not part of the request")

	// Order errors
	ErrOrderNotFound       = errors.New("order not found")
	ErrEmptySelection      = errors.New("order needs at least one selected line")
	ErrInvalidSelection    = errors.New("selected line is not available from this pharmacy")
	ErrDuplicateOrder      = errors.New("pharmacy already has an order for this request")
	ErrInvalidTransition   = errors.New("invalid order status transition")
	ErrConcurrencyConflict = errors.New("record was modified concurrently")

	// Catalog errors
	ErrMedicationNotFound = errors.New("medication not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
