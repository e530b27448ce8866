package errs

import "net/http"

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// errors may carry field-level validation failures; it is nil for plain
// malformed-request cases.
func NewBadRequestError(message string, errors []FieldError) *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest)),
		Message: message,
		Status:  http.StatusBadRequest,
		Errors:  errors,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string) *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound)),
		Message: message,
		Status:  http.StatusNotFound,
	}
}

// NewConflictError creates a 409 Conflict HTTPError.
func NewConflictError(message string) *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusConflict)),
		Message: message,
		Status:  http.StatusConflict,
	}
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// The message is the generic status text, never the underlying error:
// internals are logged server-side, not shipped to clients.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message: http.StatusText(http.StatusInternalServerError),
		Status:  http.StatusInternalServerError,
	}
}

// ValidationError converts a generic validation error into a 400 HTTPError.
func ValidationError(err error) *HTTPError {
	return NewBadRequestError("Validation failed: "+err.Error(), nil)
}
