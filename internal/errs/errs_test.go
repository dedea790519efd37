package errs

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitCode(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitOK},
		{name: "argument", err: NewArgumentError("bad flag", nil, cause), want: ExitArgument},
		{name: "wrapped argument", err: fmt.Errorf("parse: %w", NewArgumentError("bad flag", nil, nil)), want: ExitArgument},
		{name: "config", err: NewConfigError(cause), want: ExitFailure},
		{name: "connectivity", err: NewConnectivityError(cause), want: ExitFailure},
		{name: "integrity", err: NewIntegrityError("ref missing", "MARKET_NOT_FOUND", cause), want: ExitFailure},
		{name: "plain error", err: cause, want: ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestErrorIsMatchesKind(t *testing.T) {
	err := fmt.Errorf("resolve market: %w", NewConnectivityError(errors.New("dial tcp: refused")))

	if !errors.Is(err, &Error{Kind: KindConnectivity}) {
		t.Error("errors.Is() = false for matching kind")
	}
	if errors.Is(err, &Error{Kind: KindIntegrity}) {
		t.Error("errors.Is() = true for different kind")
	}
	if KindOf(err) != KindConnectivity {
		t.Errorf("KindOf() = %q, want %q", KindOf(err), KindConnectivity)
	}
	if KindOf(errors.New("x")) != KindInternal {
		t.Errorf("KindOf(plain) = %q, want %q", KindOf(errors.New("x")), KindInternal)
	}
}

func TestErrorMessage(t *testing.T) {
	err := NewArgumentError("Validation failed", []FieldError{
		{Field: "name", Error: "is required"},
		{Field: "market", Error: "is required"},
	}, nil)

	want := "Validation failed: name is required, market is required"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	wrapped := NewInternalError(errors.New("syntax error"))
	if wrapped.Error() != "An error occurred while processing the command: syntax error" {
		t.Errorf("Error() = %q", wrapped.Error())
	}
}
