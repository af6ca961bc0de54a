package dto

import (
	"net/http"

	"github.com/erp/installment/internal/domain/shared"
)

// Error codes returned in ErrorInfo.Code. Domain codes are surfaced verbatim.
const (
	ErrCodeNotFound     = shared.CodeNotFound
	ErrCodeInvalidState = shared.CodeInvalidState
	ErrCodeValidation   = shared.CodeValidation
	ErrCodeConflict     = shared.CodeConflict
	ErrCodeInternal     = shared.CodeInternal

	// ErrCodeBadRequest is used when the body cannot be decoded
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeDuplicateRequest is used when an Idempotency-Key was already accepted
	ErrCodeDuplicateRequest = "DUPLICATE_REQUEST"
	// ErrCodeRequestTooLarge is used when the body exceeds the configured limit
	ErrCodeRequestTooLarge = "REQUEST_TOO_LARGE"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeNotFound:         http.StatusNotFound,
	ErrCodeInvalidState:     http.StatusUnprocessableEntity,
	ErrCodeValidation:       http.StatusBadRequest,
	ErrCodeConflict:         http.StatusConflict,
	ErrCodeInternal:         http.StatusInternalServerError,
	ErrCodeBadRequest:       http.StatusBadRequest,
	ErrCodeDuplicateRequest: http.StatusConflict,
	ErrCodeRequestTooLarge:  http.StatusRequestEntityTooLarge,
}

// GetHTTPStatus returns the HTTP status for an error code, 500 when unknown
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
