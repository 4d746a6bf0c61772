package errors

import (
	stderrors "errors"
	"net/http"
	"strings"
)

// Error codes
const (
	ErrCodeValidation = "VALIDATION_ERROR"
	ErrCodeConflict   = "CONFLICT"
	ErrCodeNotFound   = "NOT_FOUND"
	ErrCodeCreate     = "CREATE_ERROR"
	ErrCodeInternal   = "INTERNAL_ERROR"
)

// FieldError describes a single invalid input field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError represents a classified service error
type APIError struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError creates a new APIError
func NewAPIError(code, message string) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
	}
}

// Validation creates a validation error. When field errors are given and message
// is empty, the field messages are joined into the error message.
func Validation(message string, fields ...FieldError) *APIError {
	if message == "" {
		parts := make([]string, 0, len(fields))
		for _, f := range fields {
			parts = append(parts, f.Message)
		}
		message = strings.Join(parts, ", ")
	}
	if message == "" {
		message = "Invalid request"
	}
	return &APIError{
		Code:    ErrCodeValidation,
		Message: message,
		Fields:  fields,
	}
}

// Conflict creates a conflict error
func Conflict(message string) *APIError {
	if message == "" {
		message = "Resource conflict"
	}
	return NewAPIError(ErrCodeConflict, message)
}

// NotFound creates a not found error
func NotFound(message string) *APIError {
	if message == "" {
		message = "Resource not found"
	}
	return NewAPIError(ErrCodeNotFound, message)
}

// CreateFailed creates the legacy create error
func CreateFailed(message string) *APIError {
	if message == "" {
		message = "Create Error"
	}
	return NewAPIError(ErrCodeCreate, message)
}

// Internal creates an internal error
func Internal(message string) *APIError {
	if message == "" {
		message = "Internal server error"
	}
	return NewAPIError(ErrCodeInternal, message)
}

// As finds the first APIError in err's chain
func As(err error) (*APIError, bool) {
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// StatusCode maps an error to its HTTP status
func StatusCode(err error) int {
	apiErr, ok := As(err)
	if !ok {
		return http.StatusInternalServerError
	}

	switch apiErr.Code {
	case ErrCodeValidation, ErrCodeConflict:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeCreate:
		return http.StatusPaymentRequired
	default:
		return http.StatusInternalServerError
	}
}
