package errors

import (
	"fmt"
	"testing"
)

func TestAPIError(t *testing.T) {
	base := New("connection refused")
	err := NewAPIError("init debate", base).
		WithEndpoint("/debates/init").
		WithStatusCode(502)

	want := "api error [endpoint=/debates/init, status=502]: init debate: connection refused"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !Is(err, base) {
		t.Error("expected Is() to match the wrapped cause")
	}
	if !err.IsRetryable() {
		t.Error("API errors should default to retryable")
	}
	if !err.IsUserFacing() {
		t.Error("API errors should be user facing")
	}
}

func TestAPIError_NoContext(t *testing.T) {
	err := NewAPIError("list results", nil)
	want := "api error: list results"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestAPIError_WithRetryable(t *testing.T) {
	err := NewAPIError("init debate", nil).WithRetryable(false)
	if err.IsRetryable() {
		t.Error("WithRetryable(false) should disable retryability")
	}
}

func TestSetupError(t *testing.T) {
	err := NewSetupError("decode staged config", ErrStagedConfigCorrupt).
		WithPath("/tmp/staged.json")

	if !Is(err, ErrStagedConfigCorrupt) {
		t.Error("expected Is() to match ErrStagedConfigCorrupt")
	}
	want := "setup error [path=/tmp/staged.json]: decode staged config: staged debate configuration corrupted"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if err.IsRetryable() {
		t.Error("setup errors should not be retryable")
	}
}

func TestDriverError(t *testing.T) {
	err := NewDriverError("step failed", ErrDebateNotFound).
		WithDebateID("d1").
		WithStep(7)

	want := "driver error [debate=d1, step=7]: step failed: debate not found or expired"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	var driverErr *DriverError
	if !As(err, &driverErr) {
		t.Fatal("expected As() to extract *DriverError")
	}
	if driverErr.DebateID != "d1" {
		t.Errorf("DebateID = %q, want %q", driverErr.DebateID, "d1")
	}
}

func TestDriverError_StepZero(t *testing.T) {
	// Step 0 is a valid step and must appear in the message.
	err := NewDriverError("init failed", nil).WithStep(0)
	want := "driver error [step=0]: init failed"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("result", "r1")
	if err.Error() != "result 'r1' not found" {
		t.Errorf("Error() = %q", err.Error())
	}

	wrapped := fmt.Errorf("browsing: %w", err)
	var notFound *NotFoundError
	if !As(wrapped, &notFound) {
		t.Fatal("expected As() to find NotFoundError through wrapping")
	}
	if notFound.ResourceID != "r1" {
		t.Errorf("ResourceID = %q, want %q", notFound.ResourceID, "r1")
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("at least one stance is required").
		WithField("allowed_positions")

	if !Is(err, ErrInvalidInput) {
		t.Error("validation errors should match ErrInvalidInput")
	}
	want := "validation error [field=allowed_positions]: at least one stance is required"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"api error", NewAPIError("x", nil), true},
		{"api error opt-out", NewAPIError("x", nil).WithRetryable(false), false},
		{"setup error", NewSetupError("x", nil), false},
		{"backend unavailable sentinel", fmt.Errorf("call: %w", ErrBackendUnavailable), true},
		{"plain error", New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.want {
				t.Errorf("IsRetryable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsUserFacing(t *testing.T) {
	if IsUserFacing(nil) {
		t.Error("nil should not be user facing")
	}
	if !IsUserFacing(NewValidationError("bad")) {
		t.Error("validation errors should be user facing")
	}
	if IsUserFacing(New("internal")) {
		t.Error("plain errors should not be user facing")
	}
}

func TestGetSeverity(t *testing.T) {
	if got := GetSeverity(nil); got != SeverityDebug {
		t.Errorf("GetSeverity(nil) = %v, want SeverityDebug", got)
	}
	if got := GetSeverity(NewNotFoundError("x", "y")); got != SeverityWarning {
		t.Errorf("GetSeverity(NotFoundError) = %v, want SeverityWarning", got)
	}
	if got := GetSeverity(New("boom")); got != SeverityError {
		t.Errorf("GetSeverity(plain) = %v, want SeverityError", got)
	}
}

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityDebug, "debug"},
		{SeverityInfo, "info"},
		{SeverityWarning, "warning"},
		{SeverityError, "error"},
		{Severity(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.severity.String(); got != tt.want {
			t.Errorf("Severity(%d).String() = %q, want %q", tt.severity, got, tt.want)
		}
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}

	base := New("boom")
	err := Wrap(base, "doing thing")
	if err.Error() != "doing thing: boom" {
		t.Errorf("Wrap() = %q", err.Error())
	}
	if !Is(err, base) {
		t.Error("Wrap should preserve the error chain")
	}
}

func TestWrapf(t *testing.T) {
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}

	base := New("boom")
	err := Wrapf(base, "debate %s", "d1")
	if err.Error() != "debate d1: boom" {
		t.Errorf("Wrapf() = %q", err.Error())
	}
}
