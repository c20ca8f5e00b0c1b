// Package apperr defines the error kinds surfaced by ledger operations.
// Services classify every failure as one of these kinds so handlers can map
// them to transport statuses without matching on message strings.
package apperr

import "errors"

type Kind int

const (
	KindUnauthenticated Kind = iota + 1
	KindForbidden
	KindValidation
	KindNotFound
	KindInsufficientStock
	KindReferentialConflict
	KindConflict
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func New(kind Kind, message string) error {
	return &Error{Kind: kind, Message: message}
}

func Unauthenticated(message string) error { return New(KindUnauthenticated, message) }
func Forbidden(message string) error       { return New(KindForbidden, message) }
func Validation(message string) error      { return New(KindValidation, message) }
func NotFound(message string) error        { return New(KindNotFound, message) }

func InsufficientStock(message string) error   { return New(KindInsufficientStock, message) }
func ReferentialConflict(message string) error { return New(KindReferentialConflict, message) }
func Conflict(message string) error            { return New(KindConflict, message) }

// KindOf returns the kind carried by err, or zero when err is not an
// application error (e.g. a raw storage failure).
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
