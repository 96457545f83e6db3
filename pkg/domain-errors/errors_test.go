package dErrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestIs(t *testing.T) {
	err := New(CodeNotFound, "Alert not found")

	if !Is(err, CodeNotFound) {
		t.Fatalf("expected Is to match CodeNotFound")
	}
	if Is(err, CodeForbidden) {
		t.Fatalf("expected Is not to match CodeForbidden")
	}
	if Is(errors.New("plain"), CodeNotFound) {
		t.Fatalf("expected Is to reject non-domain errors")
	}
}

func TestIsThroughWrapping(t *testing.T) {
	inner := New(CodeValidation, "keywords is required")
	wrapped := fmt.Errorf("handling request: %w", inner)

	if !Is(wrapped, CodeValidation) {
		t.Fatalf("expected Is to see through fmt.Errorf wrapping")
	}
	if FieldOf(wrapped) != "" {
		t.Fatalf("expected empty field for error built with New")
	}
}

func TestCodeOfDefaultsToInternal(t *testing.T) {
	if CodeOf(errors.New("boom")) != CodeInternal {
		t.Fatalf("expected unknown errors to map to CodeInternal")
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(CodeInternal, "failed to load alert", cause)

	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped error to unwrap to cause")
	}
	if err.Error() != "failed to load alert: connection refused" {
		t.Fatalf("unexpected error string: %q", err.Error())
	}
}

func TestNewField(t *testing.T) {
	err := NewField(CodeValidation, "frequency must be one of instant, daily, weekly", "frequency")
	if FieldOf(err) != "frequency" {
		t.Fatalf("expected field frequency, got %q", FieldOf(err))
	}
}
