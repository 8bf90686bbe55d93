// Package osthread reports the operating-system thread a goroutine is
// currently scheduled on. It is used for diagnostics only: the Go scheduler
// may migrate a goroutine between threads at any point.
package osthread
