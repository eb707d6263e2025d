package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the process was interrupted (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// NotFoundError reports a reference to a student that is not in the gradebook.
type NotFoundError struct {
	// Student is the name that was looked up.
	Student string
}

// Error returns a formatted message naming the missing student.
func (e NotFoundError) Error() string {
	return fmt.Sprintf("student %q not found", e.Student)
}

// InvalidFormatError reports a grade that could not be parsed as a number.
type InvalidFormatError struct {
	// Input is the raw text that failed to parse.
	Input string
	// Cause is the underlying parse error, if any.
	Cause error
}

// Error returns a formatted message quoting the rejected input.
func (e InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid grade %q: please enter a numeric value", e.Input)
}

// Unwrap returns the underlying parse error.
func (e InvalidFormatError) Unwrap() error { return e.Cause }

// OutOfRangeError reports a numeric grade outside the accepted bounds.
type OutOfRangeError struct {
	// Value is the parsed grade.
	Value float64
	// Min and Max are the inclusive bounds.
	Min, Max float64
}

// Error returns a formatted message with the value and bounds.
func (e OutOfRangeError) Error() string {
	return fmt.Sprintf("grade %g must be between %g and %g", e.Value, e.Min, e.Max)
}

// DuplicateError reports an attempt to add a student that already exists.
// It is a soft error: the operation is skipped and nothing is changed.
type DuplicateError struct {
	// Student is the name that already exists.
	Student string
}

// Error returns a formatted message naming the existing student.
func (e DuplicateError) Error() string {
	return fmt.Sprintf("student %q already exists", e.Student)
}

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// IsSoft reports whether err only signals a skipped operation rather than a
// failure. Interface layers render soft errors as notices.
func IsSoft(err error) bool {
	var dup DuplicateError
	return errors.As(err, &dup)
}

// IsNotFound reports whether err carries a NotFoundError.
func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}

// IsInvalidInput reports whether err is a grade format, grade range, or field
// validation failure.
func IsInvalidInput(err error) bool {
	var (
		format InvalidFormatError
		rng    OutOfRangeError
		valid  ValidationError
	)
	return errors.As(err, &format) || errors.As(err, &rng) || errors.As(err, &valid)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
