// Package errs defines the error types returned to API clients.
//
// Handlers and services return *HTTPError (possibly wrapped) and the
// router's error funnel serializes it as the response body, so clients
// always receive a consistent error shape.
package errs

import "strings"

// FieldError represents a field-level validation error.
type FieldError struct {
	// Field is the field name the error relates to (e.g. "email").
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the error type rendered to API clients.
//
// It implements the error interface and is serialized directly to JSON.
type HTTPError struct {
	// Code is a machine-friendly error code (e.g. "BAD_REQUEST").
	Code string `json:"code"`

	// Message is a human-friendly message.
	Message string `json:"message"`

	// Status is the HTTP status code of the response.
	Status int `json:"status"`

	// Errors holds field-level validation errors, if any.
	Errors []FieldError `json:"errors,omitempty"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also a *HTTPError, so callers can use
// errors.Is(err, &errs.HTTPError{}) to detect the type without asserting.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of the error with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:    e.Code,
		Message: message,
		Status:  e.Status,
		Errors:  e.Errors,
	}
}

// MakeUpperCaseWithUnderscores converts "Bad Request" into "BAD_REQUEST".
// Used to derive stable machine-readable codes from HTTP status text.
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
