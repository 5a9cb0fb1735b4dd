// Package apperr defines the application's error taxonomy. Every failure a
// handler can surface is tagged with a Kind; the HTTP layer owns the single
// kind-to-status mapping, so repositories and controllers never deal in
// status codes directly.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	// KindInternal is the fallback for anything unexpected.
	KindInternal Kind = iota
	// KindValidation marks missing, malformed, or out-of-range input fields.
	KindValidation
	// KindNotFound marks a lookup that matched no record.
	KindNotFound
	// KindRouteNotFound marks a request that matched no route at all.
	KindRouteNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindRouteNotFound:
		return "route_not_found"
	default:
		return "internal"
	}
}

type Error struct {
	Kind Kind
	Msg  string
	Err  error // wrapped cause, may be nil
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New builds a tagged error with a client-facing message.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Newf builds a tagged error with a formatted client-facing message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap tags an underlying error. The message is what clients see; err is
// kept for logs and errors.Is/As.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf extracts the Kind from err, walking the wrap chain. Untagged
// errors are internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Message returns the client-facing message for err. Untagged errors get a
// generic message so internal details never leak into responses.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}
	return "internal server error"
}

// IsNotFound reports whether err is tagged as a missing record.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsValidation reports whether err is tagged as invalid input.
func IsValidation(err error) bool {
	return KindOf(err) == KindValidation
}
