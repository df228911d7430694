// Package apperr carries the business error taxonomy shared by every service
// package, so handlers and the central error handler can map outcomes to HTTP
// statuses without inspecting message strings.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindValidation Kind = iota // bad input (empty list, non-positive capacity)
	KindDuplicateKey           // unique constraint would be violated
	KindDuplicateState         // a transaction already exists for the bin
	KindNotFound               // referenced entity does not exist
	KindConflict               // delete blocked by dependent rows
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func DuplicateKey(format string, args ...any) *Error {
	return &Error{Kind: KindDuplicateKey, Message: fmt.Sprintf(format, args...)}
}

func DuplicateState(format string, args ...any) *Error {
	return &Error{Kind: KindDuplicateState, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// Status maps a business error to its HTTP status. Non-business errors are
// infrastructure failures and map to 500.
func Status(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	if e.Kind == KindNotFound {
		return http.StatusNotFound
	}
	// Conflict defaults to 400 like the other business-rule violations; the
	// rack delete endpoint alone answers 406 and overrides this in its handler.
	return http.StatusBadRequest
}
