// Package logging provides a unified logging interface for the gradebook.
// It abstracts the underlying logging implementation, allowing consistent logging
// across the console, TUI, and HTTP layers while supporting multiple backends.
package logging
