// Package gradebook holds student records, per-subject grade sequences, and the
// averages and reports derived from them.
//
// A Gradebook is an explicitly constructed, single-owner value: it carries no
// package-level state and takes no locks. Interface layers (console menu, TUI,
// HTTP) drive it through the Store interface and render the returned values.
//
// Results that may be absent use the Average type rather than a numeric zero,
// so "no data" stays distinguishable from a computed average of 0.
package gradebook
