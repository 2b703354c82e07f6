package errors

import (
	stderrors "errors"
	"testing"
)

func TestNewError(t *testing.T) {
	err := New(ErrCodeInvalidGrid, "grid size %d out of range", 12)

	if err.Code != ErrCodeInvalidGrid {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeInvalidGrid)
	}
	if err.Message != "grid size 12 out of range" {
		t.Errorf("Message = %q", err.Message)
	}
	want := "INVALID_GRID: grid size 12 out of range"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrapError(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(ErrCodeInternal, cause, "counting failed")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match its cause via errors.Is")
	}
	want := "INTERNAL_ERROR: counting failed: boom"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeOverflow, "too many patterns")

	if !Is(err, ErrCodeOverflow) {
		t.Error("Is() should match the error's own code")
	}
	if Is(err, ErrCodeNotFound) {
		t.Error("Is() should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeOverflow) {
		t.Error("Is() should not match plain errors")
	}
}

func TestIsThroughWrapping(t *testing.T) {
	inner := New(ErrCodeOverflow, "too many patterns")
	outer := Wrap(ErrCodeInternal, inner, "request failed")

	// errors.As finds the outermost *Error first.
	if !Is(outer, ErrCodeInternal) {
		t.Error("Is() should report the outermost code")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInvalidInput, "bad")); got != ErrCodeInvalidInput {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeInvalidInput)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode() on plain error = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidGrid, "grid size out of range")
	if got := UserMessage(err); got != "grid size out of range" {
		t.Errorf("UserMessage() = %q", got)
	}

	plain := stderrors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage() on plain error = %q", got)
	}
}
