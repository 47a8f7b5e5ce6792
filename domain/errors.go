package domain

import (
	"errors"
	"fmt"
)

// ErrKind classifies service errors so the HTTP layer can map them to status
// codes without string matching.
type ErrKind int

const (
	ErrInternal ErrKind = iota
	ErrValidation
	ErrUnauthorized
	ErrForbidden
	ErrNotFound
	ErrConflict
)

type Error struct {
	Kind    ErrKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind ErrKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func ValidationError(format string, args ...any) *Error {
	return newError(ErrValidation, format, args...)
}

func UnauthorizedError(format string, args ...any) *Error {
	return newError(ErrUnauthorized, format, args...)
}

func ForbiddenError(format string, args ...any) *Error {
	return newError(ErrForbidden, format, args...)
}

func NotFoundError(format string, args ...any) *Error {
	return newError(ErrNotFound, format, args...)
}

func ConflictError(format string, args ...any) *Error {
	return newError(ErrConflict, format, args...)
}

func InternalError(err error, format string, args ...any) *Error {
	e := newError(ErrInternal, format, args...)
	e.Err = err
	return e
}

// KindOf extracts the error kind, defaulting to internal for plain errors.
func KindOf(err error) ErrKind {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Kind
	}
	return ErrInternal
}

func IsKind(err error, kind ErrKind) bool {
	return err != nil && KindOf(err) == kind
}
