package app

import (
	"fmt"
	"io"
)

// Version is overridden at build time with -ldflags "-X ...app.Version=v1.2.3".
var Version = "dev"

// HasVersionFlag reports whether args request the version string.
func HasVersionFlag(args []string) bool {
	for _, a := range args {
		switch a {
		case "--version", "-version", "-V":
			return true
		}
	}
	return false
}

// PrintVersion writes "fanjoin <Version>" to w.
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "fanjoin %s\n", Version)
}
