package apperr

import (
	"errors"
	"net/http"
)

// Kind groups errors so handlers can map them to an HTTP status.
type Kind int

const (
	KindInternal Kind = iota
	KindUnauthenticated
	KindValidation
	KindNotFound
)

// Error is the error type returned across the repository/handler boundary.
type Error struct {
	Kind    Kind
	Message string
	Field   string // only set for validation errors on a named field
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Unauthenticated(message string) *Error {
	return &Error{Kind: KindUnauthenticated, Message: message}
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// FieldRequired builds the "<field> is required" validation error.
func FieldRequired(field string) *Error {
	return &Error{Kind: KindValidation, Message: field + " is required", Field: field}
}

// FieldInvalid is returned when a field is present but has the wrong type.
func FieldInvalid(field string) *Error {
	return &Error{Kind: KindValidation, Message: field + " has an invalid value", Field: field}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Internal wraps an unexpected store/runtime failure.
func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf returns KindInternal for anything that is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// HTTPStatus maps an error to the response code.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage hides internal details from clients.
func PublicMessage(err error, fallback string) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != KindInternal {
		return e.Message
	}
	return fallback
}
