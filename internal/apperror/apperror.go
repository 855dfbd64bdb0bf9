package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
)

// AppError carries the exact client-facing message for a failure. The API
// contract fixes these messages word for word ("Planet with ID 5 not found",
// "User ID is required", ...), so whoever detects the condition formats the
// message and the HTTP layer only maps the sentinel to a status code.
type AppError struct {
	Err     error  // sentinel, checked with errors.Is
	Message string // exact message returned to the client
	Field   string // optional: field causing a validation error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NotFoundf builds a not-found error with a formatted client-facing message.
// HTTP handlers map this to 404.
func NotFoundf(format string, args ...any) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf(format, args...),
	}
}

// ValidationFailed builds a validation error for the given field.
// HTTP handlers map this to 400.
func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}
