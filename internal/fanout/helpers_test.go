package fanout

import (
	"bufio"
	"bytes"
	"strings"
	"sync"
	"testing"
)

// lockedBuffer is a bytes.Buffer safe for the concurrent writes of a run.
type lockedBuffer struct {
	mu     sync.Mutex
	buf    bytes.Buffer
	writes int
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.writes++
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func (b *lockedBuffer) Writes() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.writes
}

// parseIndices returns the index of every output line, failing the test on
// any line PrintIndex could not have produced.
func parseIndices(t *testing.T, out string) []int {
	t.Helper()
	var indices []int
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		index, ok := ParseLine(sc.Text())
		if !ok {
			t.Fatalf("unexpected output line %q", sc.Text())
		}
		indices = append(indices, index)
	}
	return indices
}

// isPermutation reports whether indices holds each of 0..n-1 exactly once.
func isPermutation(indices []int, n int) bool {
	if len(indices) != n {
		return false
	}
	seen := make([]bool, n)
	for _, i := range indices {
		if i < 0 || i >= n || seen[i] {
			return false
		}
		seen[i] = true
	}
	return true
}
