package shared

import "errors"

// Error codes. Every failure surfaced by the ledger carries exactly one of these.
const (
	CodeNotFound     = "NOT_FOUND"
	CodeInvalidState = "INVALID_STATE"
	CodeValidation   = "VALIDATION_ERROR"
	CodeConflict     = "CONFLICT"
	CodeInternal     = "INTERNAL_ERROR"
)

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	cause   error
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any
func (e *DomainError) Unwrap() error {
	return e.cause
}

// Is reports whether target is a DomainError with the same code, so that
// errors.Is(err, shared.ErrNotFound) matches every NOT_FOUND error.
func (e *DomainError) Is(target error) bool {
	var t *DomainError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewNotFoundError reports a missing entity, e.g. NewNotFoundError("Partner").
func NewNotFoundError(entity string) *DomainError {
	return NewDomainError(CodeNotFound, entity+" not found")
}

// NewInvalidStateError reports a failed business precondition.
func NewInvalidStateError(message string) *DomainError {
	return NewDomainError(CodeInvalidState, message)
}

// NewValidationError reports malformed or out-of-range input.
func NewValidationError(message string) *DomainError {
	return NewDomainError(CodeValidation, message)
}

// NewConflictError reports a concurrent modification.
func NewConflictError(message string) *DomainError {
	return NewDomainError(CodeConflict, message)
}

// NewInternalError wraps an unexpected failure.
func NewInternalError(message string, cause error) *DomainError {
	return &DomainError{
		Code:    CodeInternal,
		Message: message,
		cause:   cause,
	}
}

// Common domain errors
var (
	ErrNotFound     = NewDomainError(CodeNotFound, "Resource not found")
	ErrInvalidState = NewDomainError(CodeInvalidState, "Operation not allowed in current state")
	ErrValidation   = NewDomainError(CodeValidation, "Invalid input provided")
	ErrConflict     = NewDomainError(CodeConflict, "Resource was modified by another process")
	ErrInternal     = NewDomainError(CodeInternal, "Internal error")
)

// CodeOf returns the domain error code carried by err, or CodeInternal for
// errors that are not domain errors.
func CodeOf(err error) string {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return CodeInternal
}

// IsRetryable reports whether the caller may safely retry the operation unchanged.
func IsRetryable(err error) bool {
	return err != nil && CodeOf(err) == CodeConflict
}
