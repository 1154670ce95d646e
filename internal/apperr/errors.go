// Package apperr defines the error taxonomy surfaced by the interview engine.
// Callers distinguish failures by kind instead of inspecting message text.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	// KindInternal is an unexpected failure; never swallowed, never retried by callers.
	KindInternal Kind = iota
	// KindNotFound: interview or question missing.
	KindNotFound
	// KindInvalidTransition: disallowed state change; state is left untouched.
	KindInvalidTransition
	// KindValidation: request was well-formed but violates an invariant
	// (duplicate answer, completion with no answers).
	KindValidation
	// KindExternalService: a collaborator failed after exhausting retries.
	KindExternalService
	// KindConflict: the session changed under a concurrent caller; the whole
	// operation may be retried from a fresh read.
	KindConflict
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func NotFound(resource string, id uint) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s %d not found", resource, id)}
}

func InvalidTransition(from, event string) *Error {
	return &Error{Kind: KindInvalidTransition, Message: fmt.Sprintf("cannot %s an interview in status %q", event, from)}
}

func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func ExternalService(service string, err error) *Error {
	return &Error{Kind: KindExternalService, Message: fmt.Sprintf("%s service failed", service), Err: err}
}

func Conflict(format string, args ...interface{}) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "internal error", Err: err}
}

// KindOf extracts the taxonomy kind from an error chain. Unclassified errors
// report KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func IsNotFound(err error) bool          { return KindOf(err) == KindNotFound }
func IsInvalidTransition(err error) bool { return KindOf(err) == KindInvalidTransition }
func IsValidation(err error) bool        { return KindOf(err) == KindValidation }
func IsExternalService(err error) bool   { return KindOf(err) == KindExternalService }
func IsConflict(err error) bool          { return KindOf(err) == KindConflict }
