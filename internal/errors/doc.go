// Package apperrors defines the structured error types and process exit codes
// shared by the fanjoin packages.
//
// Error Wrapping Guidelines:
// Errors are wrapped with fmt.Errorf and %w. Types that carry a cause
// implement Unwrap() so errors.Is() and errors.As() see through them.
package apperrors
