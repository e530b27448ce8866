// Package validation decodes and validates request payloads.
//
// Rules live as validator struct tags on request types (plus custom
// checks via CustomValidationErrors); failures are translated into
// field-level errors the client can act on.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/DharaniDJ/zero2prod/internal/errs"
)

// validate is the shared validator instance reading struct tags.
var validate = validator.New()

// Validatable is implemented by request payload types that know how to
// validate themselves, typically by calling Struct on themselves and
// adding custom checks.
type Validatable interface {
	Validate() error
}

// Struct runs tag-based validation on v.
func Struct(v any) error {
	return validate.Struct(v)
}

// CustomValidationError represents a validation issue that cannot be
// expressed via validator tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that
// satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// DecodeAndValidate decodes the JSON request body into payload and
// validates it. It returns a *errs.HTTPError (400) with field-level
// errors when decoding or validation fails. payload must be a pointer.
func DecodeAndValidate(r *http.Request, payload Validatable) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(payload); err != nil {
		if errors.Is(err, io.EOF) {
			return errs.NewBadRequestError("Request body is required", nil)
		}
		return errs.NewBadRequestError("Invalid request body", nil)
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewBadRequestError(msg, fieldErrors)
	}
	return nil
}

func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	var customErrors CustomValidationErrors
	if errors.As(err, &customErrors) {
		for _, ce := range customErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: ce.Field,
				Error: ce.Message,
			})
		}
		return "Validation failed", fieldErrors
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a structured validation failure; report it as a single
		// unnamed field error rather than dropping it.
		return "Validation failed", []errs.FieldError{{Field: "", Error: err.Error()}}
	}

	for _, ve := range validationErrors {
		field := strings.ToLower(ve.Field())
		var msg string

		switch ve.Tag() {
		case "required":
			msg = "is required"
		case "min":
			if ve.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", ve.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", ve.Param())
			}
		case "max":
			if ve.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", ve.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", ve.Param())
			}
		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", ve.Param())
		case "email":
			msg = "must be a valid email address"
		case "uuid":
			msg = "must be a valid UUID"
		default:
			if ve.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, ve.Tag(), ve.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, ve.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return "Validation failed", fieldErrors
}
