// Package format renders values for human-facing diagnostics.
package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration formats a time.Duration for display in the run
// summary log. A five-task run usually completes in microseconds, so short
// durations are rendered as whole µs or ms instead of fractional seconds.
//
// Parameters:
//   - d: The elapsed time of the run.
//
// Returns:
//   - string: "<n>µs" below a millisecond, "<n>ms" below a second, and
//     d.String() otherwise.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}
