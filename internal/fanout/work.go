package fanout

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LinePrefix starts every line written by PrintIndex.
const LinePrefix = "i is: "

// PrintIndex returns the work function that writes "i is: <index>\n" to w.
//
// Each line is produced by exactly one Write call and no lock is taken, so w
// must be safe for concurrent writes (os.Stdout is).
func PrintIndex(w io.Writer) WorkFunc {
	return func(index int) {
		_, _ = fmt.Fprintf(w, "%s%d\n", LinePrefix, index)
	}
}

// ParseLine extracts the index from a line written by PrintIndex.
func ParseLine(line string) (int, bool) {
	rest, ok := strings.CutPrefix(strings.TrimRight(line, "\r\n"), LinePrefix)
	if !ok {
		return 0, false
	}
	index, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return index, true
}
