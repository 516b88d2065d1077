package httperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindValidation Kind = iota + 1
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindUnsupportedMedia
	KindPayloadTooLarge
	KindStore
)

// Error is a failure that maps onto a specific HTTP status.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindUnsupportedMedia:
		return http.StatusUnsupportedMediaType
	case KindPayloadTooLarge:
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

func ErrValidation(message string) error {
	return &Error{Kind: KindValidation, Message: message}
}

func ErrUnauthorized(message string) error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func ErrForbidden(message string) error {
	return &Error{Kind: KindForbidden, Message: message}
}

func ErrNotFound(message string) error {
	return &Error{Kind: KindNotFound, Message: message}
}

func ErrUnsupportedMedia(message string) error {
	return &Error{Kind: KindUnsupportedMedia, Message: message}
}

func ErrPayloadTooLarge(message string) error {
	return &Error{Kind: KindPayloadTooLarge, Message: message}
}

// ErrStore wraps a persistence failure. The cause is logged, never sent to clients.
func ErrStore(message string, cause error) error {
	return &Error{Kind: KindStore, Message: message, Err: cause}
}

func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
