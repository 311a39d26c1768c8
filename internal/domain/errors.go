// Package domain holds the typed failures returned by the survey engine and
// the candidate recipient type passed from the materializer to the lifecycle manager.
package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a failure. Callers switch on it to decide how to react.
type Kind string

const (
	KindValidation             Kind = "VALIDATION"
	KindNotFound               Kind = "NOT_FOUND"
	KindInvalidStateTransition Kind = "INVALID_STATE_TRANSITION"
	KindInvalidState           Kind = "INVALID_STATE"
	// KindConcurrentModification is safe to retry after re-reading current state.
	KindConcurrentModification Kind = "CONCURRENT_MODIFICATION"
	KindConflict               Kind = "CONFLICT"
	KindUpstreamResolution     Kind = "UPSTREAM_RESOLUTION"
	KindInternal               Kind = "INTERNAL"
)

func (k Kind) String() string {
	return string(k)
}

// Code is the lower snake case form used in API error bodies.
func (k Kind) Code() string {
	return strings.ToLower(string(k))
}

// Error is a typed engine failure.
type Error struct {
	Kind    Kind
	Entity  string
	Message string
	Err     error
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Entity != "" {
		b.WriteString(e.Entity)
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Summary is Error without the wrapped cause.
func (e *Error) Summary() string {
	if e.Entity == "" {
		return e.Message
	}
	return e.Entity + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error by kind, so errors.Is(err, &Error{Kind: KindConflict}) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Entity == "" || t.Entity == e.Entity)
}

// KindOf returns the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

func newError(kind Kind, entity string, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Entity: entity, Message: fmt.Sprintf(format, args...), Err: err}
}

func Validation(format string, args ...any) *Error {
	return newError(KindValidation, "", nil, format, args...)
}

// ValidationErr wraps a lower level validation failure such as an unknown enum value.
func ValidationErr(err error, format string, args ...any) *Error {
	return newError(KindValidation, "", err, format, args...)
}

func NotFound(entity string, id int64) *Error {
	return newError(KindNotFound, entity, nil, "%d not found", id)
}

func InvalidStateTransition(entity string, from, to fmt.Stringer) *Error {
	return newError(KindInvalidStateTransition, entity, nil, "cannot transition from %s to %s", from, to)
}

func InvalidState(entity string, format string, args ...any) *Error {
	return newError(KindInvalidState, entity, nil, format, args...)
}

func ConcurrentModification(entity string, id int64) *Error {
	return newError(KindConcurrentModification, entity, nil, "%d was modified concurrently, re-read and retry", id)
}

func Conflict(entity string, format string, args ...any) *Error {
	return newError(KindConflict, entity, nil, format, args...)
}

func UpstreamResolution(err error, format string, args ...any) *Error {
	return newError(KindUpstreamResolution, "", err, format, args...)
}
