package errs

import (
	"errors"
	"strings"
)

// Kind classifies an Error.
type Kind string

const (
	// KindArgument is a malformed or missing command-line parameter.
	KindArgument Kind = "argument"

	// KindConfig is a missing or invalid configuration value.
	KindConfig Kind = "config"

	// KindConnectivity means the store could not be reached or rejected
	// the credentials.
	KindConnectivity Kind = "connectivity"

	// KindIntegrity is a constraint violation reported by the store.
	KindIntegrity Kind = "integrity"

	// KindInternal is every other store failure.
	KindInternal Kind = "internal"
)

// Exit statuses used by cmd/products.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitArgument = 2
)

// FieldError is a presence/format problem with one named input.
type FieldError struct {
	Field string
	Error string
}

// Error is the application error type.
//
// Code is machine-friendly (e.g. "MARKET_NOT_FOUND"), Message is the
// human-readable text printed to stderr. Err keeps the underlying cause
// for errors.Is / errors.As.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Fields  []FieldError
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if len(e.Fields) > 0 {
		parts := make([]string, 0, len(e.Fields))
		for _, f := range e.Fields {
			parts = append(parts, f.Field+" "+f.Error)
		}
		msg += ": " + strings.Join(parts, ", ")
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// ExitCode maps the error kind to a process exit status.
func (e *Error) ExitCode() int {
	if e.Kind == KindArgument {
		return ExitArgument
	}
	return ExitFailure
}

// KindOf returns the Kind of the first *Error in err's chain, or
// KindInternal when there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// ExitCode returns the process exit status for err.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.ExitCode()
	}
	return ExitFailure
}
