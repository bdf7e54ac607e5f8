// Package common defines constants, sentinel errors and error types shared
// by the ExamHub client and server. Callers should use errors.Is and
// errors.As to match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")
)

// ValidationError reports a rejected request field. The message reads
// "<field> is required" or "<field> <reason>".
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s is required", e.Field)
	}
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// Required builds a ValidationError for a missing field.
func Required(field string) error {
	return &ValidationError{Field: field}
}

// Invalid builds a ValidationError for a malformed field.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// NotFoundError names the missing entity. It matches ErrorNotFound.
type NotFoundError struct {
	What string
}

func (e *NotFoundError) Error() string {
	return e.What + " not found"
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrorNotFound
}

// NotFound builds a NotFoundError, e.g. NotFound("Exam").
func NotFound(what string) error {
	return &NotFoundError{What: what}
}
