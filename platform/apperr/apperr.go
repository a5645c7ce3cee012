// Package apperr provides standardized error types for the lookup pipeline.
// Pipeline stages return these typed errors, and the CLI entrypoint maps
// them to exit codes and decides whether a stage failure aborts the run
// or degrades it.
package apperr

import (
	"fmt"
)

// Kind represents the category of error.
type Kind int

const (
	// KindUnknown is the default error kind when none is specified.
	KindUnknown Kind = iota
	// KindUsage indicates a bad CLI invocation or missing configuration.
	KindUsage
	// KindInvalidNumber indicates the phone number could not be parsed
	// or failed validation.
	KindInvalidNumber
	// KindAuth indicates the geocoding provider rejected the API key.
	KindAuth
	// KindQuota indicates the geocoding provider quota is exhausted.
	KindQuota
	// KindNoLocation indicates the geocoder returned no match for the query.
	KindNoLocation
	// KindNetwork indicates a transport failure or timeout reaching the geocoder.
	KindNetwork
	// KindMapWrite indicates the map HTML artifact could not be written.
	KindMapWrite
	// KindInternal indicates an unexpected internal error.
	KindInternal
)

// Exit codes used by the CLI. Geocoder failures (auth, quota, no match,
// network) degrade the run rather than failing it, so they map to success.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// Error is a pipeline error with a typed Kind for exit-code mapping.
type Error struct {
	Kind    Kind
	Message string
	Op      string // Operation that failed (optional)
	Err     error  // Underlying error (optional)
	Remedy  string // Suggested fix shown to the user (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit code for this error kind.
func (e *Error) ExitCode() int {
	switch e.Kind {
	case KindUsage:
		return ExitUsage
	case KindAuth, KindQuota, KindNoLocation, KindNetwork:
		return ExitOK
	default:
		return ExitFailure
	}
}

// Recoverable reports whether the pipeline should continue without the
// failed stage's output instead of aborting.
func (e *Error) Recoverable() bool {
	switch e.Kind {
	case KindAuth, KindQuota, KindNoLocation, KindNetwork:
		return true
	default:
		return false
	}
}

// New creates a new pipeline error with the given kind and message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates a new pipeline error wrapping an existing error.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// WithOp returns the error with the failing operation set.
func (e *Error) WithOp(op string) *Error {
	e.Op = op
	return e
}

// WithRemedy returns the error with a user-facing remedy hint set.
func (e *Error) WithRemedy(remedy string) *Error {
	e.Remedy = remedy
	return e
}

// Convenience constructors for common error types.

// Usage creates a CLI usage/configuration error.
func Usage(message string) *Error {
	return New(KindUsage, message)
}

// InvalidNumber creates an invalid phone number error.
func InvalidNumber(message string) *Error {
	return New(KindInvalidNumber, message)
}

// NoLocation creates a no-geocoding-match error.
func NoLocation(message string) *Error {
	return New(KindNoLocation, message)
}

// Internal creates an unexpected internal error.
func Internal(message string) *Error {
	return New(KindInternal, message)
}

// GetKind extracts the error kind from an error.
// Returns KindUnknown if the error is not an *Error.
func GetKind(err error) Kind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return KindUnknown
}

// Is checks if err is an *Error with the given kind.
func Is(err error, kind Kind) bool {
	return GetKind(err) == kind
}
