package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestUnauthenticated_Defaults(t *testing.T) {
	err := Unauthenticated("")
	if err.Code != ErrCodeUnauthenticated {
		t.Errorf("expected UNAUTHENTICATED, got %s", err.Code)
	}
	if err.HTTPStatus != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", err.HTTPStatus)
	}
	if err.Message != "authentication required" {
		t.Errorf("expected default message, got %q", err.Message)
	}

	err2 := Unauthenticated("invalid credentials")
	if err2.Message != "invalid credentials" {
		t.Errorf("expected custom message, got %q", err2.Message)
	}
}

func TestAlreadyExists(t *testing.T) {
	err := AlreadyExists("user")
	if err.Code != ErrCodeAlreadyExists {
		t.Errorf("expected ALREADY_EXISTS, got %s", err.Code)
	}
	if err.HTTPStatus != http.StatusConflict {
		t.Errorf("expected 409, got %d", err.HTTPStatus)
	}
	if err.Details["resource"] != "user" {
		t.Errorf("expected resource=user, got %v", err.Details["resource"])
	}
}

func TestInternal_KeepsCauseOutOfResponse(t *testing.T) {
	cause := fmt.Errorf("pool exhausted")
	err := Internal(cause)
	if err.Cause != cause {
		t.Error("expected cause to be set")
	}
	if err.HTTPStatus != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", err.HTTPStatus)
	}

	resp := err.ToResponse()
	if resp.Error.Message != "an unexpected error occurred" {
		t.Errorf("internal detail leaked into response: %q", resp.Error.Message)
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := Internal(cause)
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to see the cause through Unwrap")
	}
}

func TestAsAppError(t *testing.T) {
	appErr := NotFound("user")
	wrapped := fmt.Errorf("handler: %w", appErr)

	got, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AsAppError to find the AppError")
	}
	if got.Code != ErrCodeNotFound {
		t.Errorf("expected NOT_FOUND, got %s", got.Code)
	}

	if _, ok := AsAppError(stderrors.New("plain")); ok {
		t.Error("expected plain error to not be an AppError")
	}
}

func TestWithDetail(t *testing.T) {
	err := InvalidArgument("bad command").WithDetail("command", "translate")
	if err.Details["command"] != "translate" {
		t.Errorf("expected command detail, got %v", err.Details["command"])
	}
}
