package apperror

import (
	"errors"
	"net/http"
)

// Kind is the closed set of error categories the API distinguishes.
// Callers classify by kind, never by message substring.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalidArgument
	KindNotFound
	KindConflict
	KindUnavailable
	KindUnauthorized
	KindForbidden
)

type AppError struct {
	Kind    Kind   `json:"-"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Status maps the error kind to its HTTP status code.
// Conflict intentionally maps to 400, not 409, to keep the wire
// contract of the previous backend.
func (e *AppError) Status() int {
	switch e.Kind {
	case KindInvalidArgument, KindConflict:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func New(kind Kind, message string, err error) *AppError {
	return &AppError{
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

func InvalidArgument(message string) *AppError {
	return New(KindInvalidArgument, message, nil)
}

func NotFound(message string) *AppError {
	return New(KindNotFound, message, nil)
}

func Conflict(message string) *AppError {
	return New(KindConflict, message, nil)
}

func Unauthorized(message string) *AppError {
	return New(KindUnauthorized, message, nil)
}

func Forbidden(message string) *AppError {
	return New(KindForbidden, message, nil)
}

// Unavailable wraps a storage or downstream failure. Not a domain
// condition and never produced by validation logic.
func Unavailable(err error) *AppError {
	return New(KindUnavailable, "Service temporarily unavailable", err)
}

func Internal(err error) *AppError {
	return New(KindInternal, "Internal Server Error", err)
}

// IsKind reports whether err is an *AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}
