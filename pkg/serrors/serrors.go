// Package serrors attaches a semantic kind to errors so transport layers can
// map failures (not found, conflict, misconfiguration...) without knowing the
// concrete cause.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a semantic error category. Kinds are sentinels created with NewKind
// and matched with errors.Is or KindOf.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a kind named name, e.g. "NOT_FOUND". The name doubles as
// the error code reported to API clients.
func NewKind(name string) Kind { return kind{s: name} }

var (
	ErrNotFound   = NewKind("NOT_FOUND")
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrConflict is an illegal state change, e.g. approving a rejected payment request.
	ErrConflict = NewKind("CONFLICT")
	ErrInternal = NewKind("INTERNAL")
	ErrTimeout  = NewKind("TIMEOUT")
	// ErrMisconfigured means commission terms or ranks are missing or unusable.
	ErrMisconfigured = NewKind("MISCONFIGURED")
)

// Error carries a kind, an optional cause and an optional message. It matches
// both its kind and its cause with errors.Is and errors.As.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With creates an error of kind k with a formatted message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap creates an error of kind k wrapping err with a formatted message.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates an error carrying nothing but k.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Error renders "msg: cause", falling back to whichever part is set and
// finally to the kind name.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	switch {
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	case e.kind != nil:
		return e.kind.Error()
	default:
		return "unknown error"
	}
}

func (e *Error) Unwrap() error { return e.err }

func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}

	return (e.kind != nil && errors.Is(e.kind, target)) ||
		(e.err != nil && errors.Is(e.err, target))
}

func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}

	return (e.kind != nil && errors.As(e.kind, target)) ||
		(e.err != nil && errors.As(e.err, target))
}

func (e *Error) Kind() Kind      { return e.kind }
func (e *Error) Message() string { return e.msg }
func (e *Error) Cause() error    { return e.err }

// KindOf returns the kind of the first semantic error in the chain of err, or
// nil when err carries no kind.
func KindOf(err error) Kind {
	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return nil
}
