// Package ui provides theme and color support for the gradebook's user
// interfaces. It defines color schemes and ANSI escape code accessors shared by
// the console menu and the TUI, so presentation stays out of the store.
package ui
