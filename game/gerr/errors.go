// Package gerr defines the engine-wide error taxonomy. Every
// user-facing failure renders as narrative text; these Kind values are the
// machine-readable counterpart carried in an effects record when relevant.
// No panic or exception is allowed to cross the engine boundary — handlers
// return a *Error, never throw.
package gerr

import "fmt"

// Kind classifies the general shape of a failure.
type Kind string

const (
	UnknownCommand       Kind = "unknown_command"
	Blocked              Kind = "blocked"
	OutOfBounds          Kind = "out_of_bounds"
	InsufficientResource Kind = "insufficient_resource"
	NotFound             Kind = "not_found"
	Conflict             Kind = "conflict"
	Unavailable          Kind = "unavailable"
	Invariant            Kind = "invariant"
)

// Error is the engine's internal result-type stand-in for exceptions:
// handlers return one instead of throwing, carrying a failure kind a
// caller can switch on.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New builds an *Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds an *Error of the given kind around a lower-level cause.
func Wrap(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// KindOf extracts the Kind from err if it (or something it wraps) is an
// *Error; otherwise it returns Invariant, the fallback for unclassified
// internal failures.
func KindOf(err error) Kind {
	var e *Error
	if ok := asError(err, &e); ok {
		return e.Kind
	}
	return Invariant
}

func asError(err error, target **Error) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			*target = e
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
