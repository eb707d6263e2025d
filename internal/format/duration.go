// Package format holds small human-readable formatters shared by the
// interface layers.
package format

import (
	"fmt"
	"time"
)

// FormatDuration renders d for status output. Sub-millisecond values use
// microseconds, sub-second values milliseconds, and anything longer is
// rounded to the second.
func FormatDuration(d time.Duration) string {
	switch {
	case d < 0:
		return "0s"
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.Round(time.Second).String()
}
