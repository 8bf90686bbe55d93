//go:build !linux

package osthread

// ID returns -1 where thread ids are not exposed.
func ID() int {
	return -1
}

// Supported reports whether ID returns real thread ids on this platform.
func Supported() bool { return false }
