package model

import (
	"errors"
	"fmt"
)

var (
	// ErrItemNotFound is returned when no inventory record matches the lookup
	ErrItemNotFound = errors.New("inventory item not found")

	// ErrMovementNotFound is returned when a movement id does not exist
	ErrMovementNotFound = errors.New("stock movement not found")

	// ErrItemAlreadyExists is returned on duplicate (sku, location) creation
	ErrItemAlreadyExists = errors.New("inventory item already exists for this sku and location")

	// ErrBadInput is returned for malformed or out-of-domain parameters
	ErrBadInput = errors.New("bad input")

	// ErrValidation is returned when a request fails semantic validation
	ErrValidation = errors.New("validation failed")

	// ErrInsufficientStock is returned when available stock cannot cover the operation
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrInsufficientReservation is returned when releasing or committing more than is reserved
	ErrInsufficientReservation = errors.New("insufficient reservation")

	// ErrConflict is returned on optimistic lock version mismatch
	ErrConflict = errors.New("conflict: inventory item was modified by another transaction")
)

// NewBadInputError creates a bad input error with detail
func NewBadInputError(msg string) error {
	return fmt.Errorf("%w: %s", ErrBadInput, msg)
}

// NewValidationError creates a validation error with detail
func NewValidationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

// NewInsufficientStockError creates an error carrying stock numbers
func NewInsufficientStockError(requested, available int64) error {
	return fmt.Errorf("%w: requested=%d, available=%d", ErrInsufficientStock, requested, available)
}

// NewInsufficientReservationError creates an error carrying reservation numbers
func NewInsufficientReservationError(requested, reserved int64) error {
	return fmt.Errorf("%w: requested=%d, reserved=%d", ErrInsufficientReservation, requested, reserved)
}

// NewConflictError creates a conflict error with version details
func NewConflictError(expectedVersion, actualVersion int64) error {
	return fmt.Errorf("%w: expected version %d, got %d", ErrConflict, expectedVersion, actualVersion)
}

// IsNotFoundError checks if error is a not found error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrItemNotFound) || errors.Is(err, ErrMovementNotFound)
}

// IsBadInputError checks if error is a bad input error
func IsBadInputError(err error) bool {
	return errors.Is(err, ErrBadInput)
}

// IsValidationError checks if error is a validation error, including
// duplicate creation attempts
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation) || errors.Is(err, ErrItemAlreadyExists)
}

// IsInsufficientStockError checks if error is insufficient stock
func IsInsufficientStockError(err error) bool {
	return errors.Is(err, ErrInsufficientStock)
}

// IsInsufficientReservationError checks if error is insufficient reservation
func IsInsufficientReservationError(err error) bool {
	return errors.Is(err, ErrInsufficientReservation)
}

// IsConflictError checks if error is an optimistic lock conflict
func IsConflictError(err error) bool {
	return errors.Is(err, ErrConflict)
}
