// Package errcode defines the machine-readable error taxonomy surfaced to API
// callers. Services return *Error values; handlers translate the code into an
// HTTP status without inspecting messages.
package errcode

import (
	"errors"
	"fmt"
	"net/http"
)

type Code string

const (
	Unauthenticated Code = "UNAUTHENTICATED"
	Forbidden       Code = "FORBIDDEN"
	NotFound        Code = "NOT_FOUND"
	BadUserInput    Code = "BAD_USER_INPUT"
	Internal        Code = "INTERNAL"
)

// Error carries a Code and a human-readable message.
type Error struct {
	Code    Code
	Message string
	cause   error
}

var (
	ErrUnauthenticated = &Error{Code: Unauthenticated}
	ErrForbidden       = &Error{Code: Forbidden}
	ErrNotFound        = &Error{Code: NotFound}
	ErrBadUserInput    = &Error{Code: BadUserInput}
	ErrInternal        = &Error{Code: Internal}
)

func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds an INTERNAL error that keeps err reachable through errors.Unwrap.
func Wrap(err error, format string, args ...any) *Error {
	return &Error{Code: Internal, Message: fmt.Sprintf(format, args...), cause: err}
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// Is reports whether target is a bare sentinel with the same code, so
// errors.Is(err, errcode.ErrNotFound) matches any NOT_FOUND error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Message == "" {
		return t.Code == e.Code
	}
	return t == e
}

// CodeOf extracts the code of err, defaulting to Internal.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return Internal
}

// HTTPStatus maps a code to the status used on the wire.
func HTTPStatus(code Code) int {
	switch code {
	case Unauthenticated:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case BadUserInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
