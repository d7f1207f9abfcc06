package common

import (
	"errors"
)

const (
	// Context keys
	ContextCallerKey = "caller" // session.Caller of an authenticated request
)

// Error kinds. Every failure surfaced to an API caller unwraps to exactly one of these.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
)

// Error carries a human readable message together with its kind.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func InvalidInput(msg string) error { return &Error{Kind: ErrInvalidInput, Message: msg} }

func Conflict(msg string) error { return &Error{Kind: ErrConflict, Message: msg} }

func Unauthorized(msg string) error { return &Error{Kind: ErrUnauthorized, Message: msg} }

func NotFound(msg string) error { return &Error{Kind: ErrNotFound, Message: msg} }

// Message returns the caller-facing message of err, or fallback when err is not an *Error.
func Message(err error, fallback string) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return fallback
}
