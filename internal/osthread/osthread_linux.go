//go:build linux

package osthread

import "golang.org/x/sys/unix"

// ID returns the kernel thread id of the calling thread.
func ID() int {
	return unix.Gettid()
}

// Supported reports whether ID returns real thread ids on this platform.
func Supported() bool { return true }
