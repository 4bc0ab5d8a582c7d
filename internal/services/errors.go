package services

import (
	"errors"
)

// Failure kinds. Handlers map them to status codes.
var (
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

// Failure is an expected, user-facing failure of a service operation.
// Any error that is not a *Failure is internal.
type Failure struct {
	Kind    error
	Message string
}

func (f *Failure) Error() string {
	return f.Message
}

func (f *Failure) Unwrap() error {
	return f.Kind
}

func fail(kind error, message string) *Failure {
	return &Failure{Kind: kind, Message: message}
}
