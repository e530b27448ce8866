package validation

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DharaniDJ/zero2prod/internal/errs"
)

type signupPayload struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required,max=8"`
}

func (p *signupPayload) Validate() error {
	if err := Struct(p); err != nil {
		return err
	}
	if strings.Contains(p.Name, "!") {
		return CustomValidationErrors{{Field: "name", Message: "must not contain exclamation marks"}}
	}
	return nil
}

func decode(t *testing.T, body string) error {
	t.Helper()
	r := httptest.NewRequest("POST", "/signup", strings.NewReader(body))
	return DecodeAndValidate(r, &signupPayload{})
}

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("error %v is not *errs.HTTPError", err)
	}
	return httpErr
}

func TestDecodeAndValidateAcceptsValidPayload(t *testing.T) {
	if err := decode(t, `{"email": "a@b.com", "name": "Ada"}`); err != nil {
		t.Fatalf("DecodeAndValidate error: %v", err)
	}
}

func TestDecodeAndValidateRejectsEmptyBody(t *testing.T) {
	httpErr := asHTTPError(t, decode(t, ""))
	if httpErr.Status != 400 {
		t.Errorf("status = %d, want 400", httpErr.Status)
	}
}

func TestDecodeAndValidateRejectsUnknownFields(t *testing.T) {
	err := decode(t, `{"email": "a@b.com", "name": "Ada", "role": "admin"}`)
	if err == nil {
		t.Fatal("unknown field accepted, want 400")
	}
}

func TestDecodeAndValidateReportsTagFailures(t *testing.T) {
	httpErr := asHTTPError(t, decode(t, `{"email": "nope", "name": "far-too-long-name"}`))

	if len(httpErr.Errors) != 2 {
		t.Fatalf("field errors = %+v, want 2 entries", httpErr.Errors)
	}
	byField := map[string]string{}
	for _, fe := range httpErr.Errors {
		byField[fe.Field] = fe.Error
	}
	if byField["email"] != "must be a valid email address" {
		t.Errorf("email error = %q", byField["email"])
	}
	if byField["name"] != "must not exceed 8 characters" {
		t.Errorf("name error = %q", byField["name"])
	}
}

func TestDecodeAndValidateReportsCustomFailures(t *testing.T) {
	httpErr := asHTTPError(t, decode(t, `{"email": "a@b.com", "name": "Ada!"}`))

	if len(httpErr.Errors) != 1 {
		t.Fatalf("field errors = %+v, want 1 entry", httpErr.Errors)
	}
	if httpErr.Errors[0].Field != "name" || httpErr.Errors[0].Error != "must not contain exclamation marks" {
		t.Errorf("field error = %+v", httpErr.Errors[0])
	}
}
