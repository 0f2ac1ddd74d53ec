// Package apperrors defines the typed errors every engine returns across its
// boundary. Each error carries a stable machine-readable code; callers match
// with errors.As or the Code helper rather than string comparison.
package apperrors

import (
	"errors"
	"fmt"
)

// ErrCode is a stable machine-readable error code
type ErrCode string

const (
	CodeNotFound             ErrCode = "not_found"
	CodeUnauthorized         ErrCode = "unauthorized"
	CodeDuplicateTransaction ErrCode = "duplicate_transaction"
	CodeSelfTransaction      ErrCode = "self_transaction"
	CodeInvalidStatus        ErrCode = "invalid_status"
	CodeNoBillingAddress     ErrCode = "no_billing_address"
	CodeConflict             ErrCode = "conflict"
	CodeStore                ErrCode = "store_error"
)

// AppError is a business-rule violation surfaced to the caller
type AppError struct {
	ErrCode ErrCode
	Message string
	cause   error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.ErrCode, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.ErrCode, e.Message)
}

// Unwrap exposes the underlying cause for errors.Is/As chains
func (e *AppError) Unwrap() error {
	return e.cause
}

// Retryable reports whether the caller should retry the operation once after
// re-fetching state. Only losing a concurrent race qualifies.
func (e *AppError) Retryable() bool {
	return e.ErrCode == CodeConflict
}

// NotFound reports an unknown entity id
func NotFound(entity string) *AppError {
	return &AppError{ErrCode: CodeNotFound, Message: entity + " not found"}
}

// Unauthorized reports a caller lacking the required role or relationship
func Unauthorized(msg string) *AppError {
	return &AppError{ErrCode: CodeUnauthorized, Message: msg}
}

// DuplicateTransaction reports a repeated (listing, buyer) transaction attempt
func DuplicateTransaction() *AppError {
	return &AppError{ErrCode: CodeDuplicateTransaction, Message: "transaction already exists for this listing and buyer"}
}

// SelfTransaction reports a buyer transacting against their own listing
func SelfTransaction() *AppError {
	return &AppError{ErrCode: CodeSelfTransaction, Message: "cannot transact against your own listing"}
}

// InvalidStatus reports a status value outside the allowed set
func InvalidStatus(value string) *AppError {
	return &AppError{ErrCode: CodeInvalidStatus, Message: fmt.Sprintf("invalid status %q", value)}
}

// NoBillingAddress reports a missing user record during account provisioning
func NoBillingAddress() *AppError {
	return &AppError{ErrCode: CodeNoBillingAddress, Message: "no billing address on file for user"}
}

// Conflict reports a lost race on listing availability; retryable
func Conflict(msg string) *AppError {
	return &AppError{ErrCode: CodeConflict, Message: msg}
}

// Store wraps an underlying persistence failure. The cause is kept for logs
// but the message surfaced to callers stays generic.
func Store(cause error) *AppError {
	return &AppError{ErrCode: CodeStore, Message: "storage operation failed", cause: cause}
}

// Code extracts the machine code from err, or store_error for unknown errors
func Code(err error) ErrCode {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.ErrCode
	}
	return CodeStore
}

// Is reports whether err carries the given code
func Is(err error, code ErrCode) bool {
	return Code(err) == code
}

// Retryable reports whether err is worth retrying after re-fetching state.
// Unknown errors are not retryable.
func Retryable(err error) bool {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Retryable()
	}
	return false
}
