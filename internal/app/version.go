package app

import (
	"fmt"
	"io"
	"runtime"
)

// Version and Commit are set at build time:
//
//	go build -ldflags "-X github.com/agbru/gradebook/internal/app.Version=v1.2.0 -X github.com/agbru/gradebook/internal/app.Commit=abc123"
var (
	Version = "dev"
	Commit  = "none"
)

// HasVersionFlag reports whether args request the version string.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "--version", "-version", "-V":
			return true
		}
	}
	return false
}

// PrintVersion writes the version line to out.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "gradebook %s (%s, %s)\n", Version, Commit, runtime.Version())
}
