package validation

import (
	"strings"
	"testing"

	"github.com/kbukum/textmorph/errors"
)

type signupForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

func TestValidate_Valid(t *testing.T) {
	err := Validate(signupForm{Email: "a@x.com", Password: "pw123456"})
	if err != nil {
		t.Fatalf("expected valid form, got %v", err)
	}
}

func TestValidate_InvalidEmail(t *testing.T) {
	err := Validate(signupForm{Email: "not-an-email", Password: "pw123456"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatal("expected AppError")
	}
	if appErr.Code != errors.ErrCodeInvalidArgument {
		t.Errorf("expected INVALID_ARGUMENT, got %s", appErr.Code)
	}
	if !strings.Contains(appErr.Message, "email") {
		t.Errorf("expected email mentioned in message, got %q", appErr.Message)
	}
}

func TestValidate_ShortPassword(t *testing.T) {
	err := Validate(signupForm{Email: "a@x.com", Password: "pw"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	appErr, _ := errors.AsAppError(err)
	if !strings.Contains(appErr.Message, "at least 8") {
		t.Errorf("expected min-length message, got %q", appErr.Message)
	}
}

func TestValidate_UsesJSONTagNames(t *testing.T) {
	err := Validate(signupForm{Password: "pw123456"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	appErr, _ := errors.AsAppError(err)
	if !strings.Contains(appErr.Message, "email: is required") {
		t.Errorf("expected json tag field name, got %q", appErr.Message)
	}
}
