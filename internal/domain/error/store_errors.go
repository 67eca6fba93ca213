// Package error defines domain-specific errors for the Finanzas application.
package error

import "errors"

// Store domain errors.
var (
	// ErrSlotNotFound is returned when a slot has never been written.
	// Callers treat it as "use the typed default", not as a failure.
	ErrSlotNotFound = errors.New("slot not found")

	// ErrSlotWriteFailed is returned when persisting a slot fails.
	// Write failures always propagate; they are never swallowed.
	ErrSlotWriteFailed = errors.New("slot write failed")
)

// StoreErrorCode defines error codes for store errors.
// Format: STO-XXYYYY where XX is category and YYYY is specific error.
type StoreErrorCode string

const (
	ErrCodeSlotNotFound    StoreErrorCode = "STO-010001"
	ErrCodeSlotWriteFailed StoreErrorCode = "STO-020001"
	ErrCodeSlotDecode      StoreErrorCode = "STO-020002"
)

// StoreError represents a store error with code and message.
type StoreError struct {
	Code    StoreErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given code and message.
func NewStoreError(code StoreErrorCode, message string, err error) *StoreError {
	return &StoreError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
