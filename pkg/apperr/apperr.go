// Package apperr holds the expected, locally representable outcomes of
// every mutation and lookup. Anything that is not one of these kinds is
// treated as a storage failure by the HTTP boundary.
package apperr

import (
	"errors"
	"strings"
)

var (
	ErrUnauthenticated = errors.New("authentication credentials were not provided")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation failed")
	ErrAlreadyLiked    = errors.New("already liked")
	ErrNotLiked        = errors.New("not liked")
	ErrConflict        = errors.New("conflict")
)

// Error carries a kind plus the human readable messages for the caller.
type Error struct {
	Kind     error
	Messages []string
}

func (e *Error) Error() string {
	if len(e.Messages) == 0 {
		return e.Kind.Error()
	}
	return strings.Join(e.Messages, "; ")
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, msgs ...string) error {
	return &Error{Kind: kind, Messages: msgs}
}

func Unauthenticated(msg string) error { return newError(ErrUnauthenticated, msg) }
func Forbidden(msg string) error       { return newError(ErrForbidden, msg) }
func NotFound(msg string) error        { return newError(ErrNotFound, msg) }
func AlreadyLiked(msg string) error    { return newError(ErrAlreadyLiked, msg) }
func NotLiked(msg string) error        { return newError(ErrNotLiked, msg) }
func Conflict(msg string) error        { return newError(ErrConflict, msg) }

func Validation(msgs ...string) error {
	return newError(ErrValidation, msgs...)
}

// Messages returns the messages attached to err, falling back to its text.
func Messages(err error) []string {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) && len(appErr.Messages) > 0 {
		return appErr.Messages
	}
	return []string{err.Error()}
}

// IsExpected reports whether err is one of the outcome kinds above.
func IsExpected(err error) bool {
	for _, kind := range []error{
		ErrUnauthenticated, ErrForbidden, ErrNotFound, ErrValidation,
		ErrAlreadyLiked, ErrNotLiked, ErrConflict,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
