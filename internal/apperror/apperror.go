package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrValidation     = errors.New("validation failed")
	ErrAuthentication = errors.New("authentication required")
	ErrForbidden      = errors.New("forbidden")
	ErrNotFound       = errors.New("not found")
	ErrDependency     = errors.New("dependency failure")
)

// AppError carries a sentinel for classification plus a human-readable
// message. Handlers map the sentinel to an HTTP status.
type AppError struct {
	Err     error
	Message string
	Field   string // optional: field causing a validation error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func Validation(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

func Unauthenticated() *AppError {
	return &AppError{
		Err:     ErrAuthentication,
		Message: "authentication required",
	}
}

func Forbidden(message string) *AppError {
	return &AppError{
		Err:     ErrForbidden,
		Message: message,
	}
}

func NotFound(resource, id string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %s", resource, id),
	}
}

// Dependency wraps a datastore or blob-store failure. The underlying message
// is forwarded to the caller for debuggability.
func Dependency(err error, op string) *AppError {
	return &AppError{
		Err:     ErrDependency,
		Message: fmt.Sprintf("%s: %v", op, err),
	}
}
