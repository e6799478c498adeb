package core

import (
	"errors"
	"fmt"
)

var (
	ErrBadArguments = errors.New("bad arguments")
	ErrNotFound     = errors.New("not found")
	ErrUnavailable  = errors.New("dependency unavailable")
)

// FieldError reports which input field was rejected. It matches ErrBadArguments.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return ErrBadArguments
}

func fieldErr(field, reason string) error {
	return &FieldError{Field: field, Reason: reason}
}
