// Package logging provides the structured logging interface used across
// fanjoin. It wraps zerolog so that packages depend on a small Logger
// interface instead of a concrete backend.
package logging
