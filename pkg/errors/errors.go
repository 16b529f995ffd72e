package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Error codes
const (
	CodeAPIError   = "API_ERROR"
	CodeValidation = "VALIDATION_ERROR"
	CodeService    = "SERVICE_ERROR"
)

type ClientError struct {
	Message    string
	Code       string
	StatusCode int
	Context    map[string]any
	Cause      error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

func (e *ClientError) WithCause(cause error) *ClientError {
	e.Cause = cause
	return e
}

// APIError is a non-2xx answer from the backend. The raw response body is kept
// byte-for-byte so callers can branch on it.
type APIError struct {
	*ClientError
	body []byte
}

func NewAPIError(message string, statusCode int, context map[string]any) *APIError {
	return &APIError{
		ClientError: &ClientError{
			Message:    message,
			Code:       CodeAPIError,
			StatusCode: statusCode,
			Context:    context,
		},
	}
}

// NewHTTPStatusError builds an APIError for a response with the given status and body.
func NewHTTPStatusError(method, url string, statusCode int, body []byte) *APIError {
	e := NewAPIError(
		fmt.Sprintf("%s %s: %d %s", method, url, statusCode, http.StatusText(statusCode)),
		statusCode,
		map[string]any{
			"method": method,
			"url":    url,
			"body":   string(body),
		},
	)
	e.body = body
	return e
}

// Body returns the raw response body.
func (e *APIError) Body() []byte {
	return e.body
}

type ValidationError struct {
	*ClientError
	Field string
	Value interface{}
}

func NewValidationError(message, field string, value interface{}) *ValidationError {
	return &ValidationError{
		ClientError: &ClientError{
			Message:    message,
			Code:       CodeValidation,
			StatusCode: 400,
			Context: map[string]any{
				"field": field,
				"value": value,
			},
		},
		Field: field,
		Value: value,
	}
}

type ServiceError struct {
	*ClientError
	Service   string
	Operation string
}

func NewServiceError(message, service, operation string, cause error) *ServiceError {
	return &ServiceError{
		ClientError: &ClientError{
			Message:    message,
			Code:       CodeService,
			StatusCode: 500,
			Context: map[string]any{
				"service":   service,
				"operation": operation,
			},
			Cause: cause,
		},
		Service:   service,
		Operation: operation,
	}
}

// StatusCode reports the HTTP status carried by err, or 0 when err is not an APIError.
func StatusCode(err error) int {
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

func IsUnauthorized(err error) bool {
	code := StatusCode(err)
	return code == http.StatusUnauthorized || code == http.StatusForbidden
}
