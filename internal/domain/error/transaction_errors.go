// Package error defines domain-specific errors for the Finanzas application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the ledger.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidTransactionAmount is returned when the amount is zero or negative.
	ErrInvalidTransactionAmount = errors.New("invalid transaction amount")

	// ErrInvalidTransactionCurrency is returned when the currency is not ARS or USD.
	ErrInvalidTransactionCurrency = errors.New("invalid transaction currency")

	// ErrEmptyTransactionDescription is returned when the description is blank.
	ErrEmptyTransactionDescription = errors.New("transaction description is required")

	// ErrDescriptionTooLong is returned when the description exceeds the maximum length.
	ErrDescriptionTooLong = errors.New("description too long")

	// ErrCategoryNotFoundForTransaction is returned when the referenced category does not exist.
	ErrCategoryNotFoundForTransaction = errors.New("category not found")

	// ErrCategoryTypeMismatch is returned when the category type does not match the transaction type.
	ErrCategoryTypeMismatch = errors.New("category type does not match transaction type")

	// ErrGoalNotFoundForTransaction is returned when the referenced goal does not exist.
	ErrGoalNotFoundForTransaction = errors.New("goal not found")

	// ErrGoalLinkNotAllowed is returned when a goal is linked to a non-saving transaction.
	ErrGoalLinkNotAllowed = errors.New("goal can only be linked to saving transactions")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType     TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionAmount   TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidTransactionCurrency TransactionErrorCode = "TXN-010003"
	ErrCodeTransactionNotFound        TransactionErrorCode = "TXN-010004"
	ErrCodeTxnCategoryNotFound        TransactionErrorCode = "TXN-010005"
	ErrCodeCategoryTypeMismatch       TransactionErrorCode = "TXN-010006"
	ErrCodeEmptyDescription           TransactionErrorCode = "TXN-010007"
	ErrCodeDescriptionTooLong         TransactionErrorCode = "TXN-010008"
	ErrCodeTxnGoalNotFound            TransactionErrorCode = "TXN-010009"
	ErrCodeGoalLinkNotAllowed         TransactionErrorCode = "TXN-010010"
	ErrCodeMissingTransactionFields   TransactionErrorCode = "TXN-010011"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
