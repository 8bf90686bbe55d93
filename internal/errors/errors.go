package apperrors

import (
	"errors"
	"fmt"
)

// Process exit codes. Only ExitSuccess is produced by a normal run; the other
// codes cover startup failures before any task is spawned.
const (
	ExitSuccess      = 0 // All tasks were spawned and joined.
	ExitErrorGeneric = 1 // Unexpected failure outside the runner.
	ExitErrorConfig  = 4 // Invalid flags, arguments or environment values.
)

// ConfigError represents a user configuration error, such as an unknown flag
// or an unexpected positional argument.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
//
// Returns:
//   - string: The configuration problem as reported to the user.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
// ExitCodeFor maps the result to ExitErrorConfig.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A ConfigError holding the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ValidationError reports a programmatic parameter that failed validation,
// identifying the offending field.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
//
// Returns:
//   - string: The field name and the reason it was rejected.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// The wrapped error still satisfies errors.As for ExitCodeFor.
//
// Parameters:
//   - err: The error to wrap. A nil err yields nil.
//   - format: A format string for the context prefix.
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

// ExitCodeFor maps an error returned during startup to a process exit code.
// Configuration and validation errors anywhere in the chain select
// ExitErrorConfig; any other non-nil error selects ExitErrorGeneric.
//
// Parameters:
//   - err: The startup error, possibly wrapped.
//
// Returns:
//   - int: The exit code to pass to os.Exit.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var cfgErr ConfigError
	var valErr ValidationError
	switch {
	case errors.As(err, &cfgErr), errors.As(err, &valErr):
		return ExitErrorConfig
	default:
		return ExitErrorGeneric
	}
}
