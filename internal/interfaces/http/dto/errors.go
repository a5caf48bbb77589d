package dto

import "net/http"

// General error codes
const (
	ErrCodeUnknown      = "ERR_UNKNOWN"
	ErrCodeInternal     = "ERR_INTERNAL"
	ErrCodeBadRequest   = "ERR_BAD_REQUEST"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
)

// domainErrorStatus maps domain error codes to HTTP status codes.
// Codes not listed here fall back to 500.
var domainErrorStatus = map[string]int{
	// Generic
	ErrCodeUnknown:      http.StatusInternalServerError,
	ErrCodeInternal:     http.StatusInternalServerError,
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeNotFound:     http.StatusNotFound,
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,

	// Validation -> 400 Bad Request
	"INVALID_NAME":        http.StatusBadRequest,
	"INVALID_EMAIL":       http.StatusBadRequest,
	"INVALID_CATEGORY":    http.StatusBadRequest,
	"INVALID_STOCK":       http.StatusBadRequest,
	"INVALID_PRICE":       http.StatusBadRequest,
	"INVALID_PRODUCT":     http.StatusBadRequest,
	"INVALID_QUANTITY":    http.StatusBadRequest,
	"INVALID_CUSTOMER":    http.StatusBadRequest,
	"INVALID_DEVICE":      http.StatusBadRequest,
	"INVALID_COST":        http.StatusBadRequest,
	"INVALID_DATE":        http.StatusBadRequest,
	"INVALID_DESCRIPTION": http.StatusBadRequest,
	"INVALID_AMOUNT":      http.StatusBadRequest,
	"WEAK_PASSWORD":       http.StatusBadRequest,
	"EMPTY_SALE":          http.StatusBadRequest,

	// Authentication
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"OTP_INVALID":         http.StatusUnauthorized,
	"OTP_EXPIRED":         http.StatusUnauthorized,
	"OTP_THROTTLED":       http.StatusTooManyRequests,
	"ACCOUNT_DISABLED":    http.StatusForbidden,

	// Conflicts -> 409
	"EMAIL_TAKEN":          http.StatusConflict,
	"CATEGORY_EXISTS":      http.StatusConflict,
	"CATEGORY_IN_USE":      http.StatusConflict,
	"ALREADY_EXISTS":       http.StatusConflict,
	"CONCURRENCY_CONFLICT": http.StatusConflict,

	// Input
	"INVALID_INPUT": http.StatusBadRequest,
	"INVALID_STATE": http.StatusUnprocessableEntity,

	// Business rules -> 422 Unprocessable Entity
	"INSUFFICIENT_STOCK": http.StatusUnprocessableEntity,
	"REPAIR_DELIVERED":   http.StatusUnprocessableEntity,
	"REPAIR_NOT_DECIDED": http.StatusUnprocessableEntity,
}

// GetHTTPStatus returns the HTTP status code for a domain error code.
// Unknown codes map to 500 Internal Server Error.
func GetHTTPStatus(code string) int {
	if status, ok := domainErrorStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
