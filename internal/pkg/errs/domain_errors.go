package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Draft errors
	ErrNoDraft      = errors.New("no booking draft")
	ErrInvalidDraft = errors.New("invalid booking draft")

	// Pricing errors
	ErrUnpriceableItem = errors.New("item has no usable base rate")

	// Confirmation errors
	ErrConfirmationNotFound = errors.New("booking confirmation not found")

	// Payment errors
	ErrPaymentDeclined = errors.New("payment declined")

	// Idempotency errors
	ErrIdempotencyKeyRequired = errors.New("idempotency key required")
	ErrIdempotencyInProgress  = errors.New("idempotency in progress")
	ErrIdempotencyCheckFailed = errors.New("idempotency check failed")
	ErrDuplicateConfirmation  = errors.New("duplicate confirmation request")

	// Catalog errors
	ErrCatalogUnavailable = errors.New("catalog unavailable")

	// Operation errors
	ErrStoreOperationFailed = errors.New("store operation failed")
)
