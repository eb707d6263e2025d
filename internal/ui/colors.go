package ui

// Color accessors read the active theme on every call, so a theme switch
// takes effect on the next line printed.

// ColorReset clears all formatting.
func ColorReset() string { return GetCurrentTheme().Reset }

// ColorBold starts bold text.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorUnderline starts underlined text.
func ColorUnderline() string { return GetCurrentTheme().Underline }

// ColorRed is the error color.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorGreen is the success color.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorYellow is the warning color.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorBlue is the primary color.
func ColorBlue() string { return GetCurrentTheme().Primary }

// ColorCyan is the info color.
func ColorCyan() string { return GetCurrentTheme().Info }

// ColorGrey is the secondary color.
func ColorGrey() string { return GetCurrentTheme().Secondary }
