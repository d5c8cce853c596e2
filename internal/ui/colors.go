package ui

// Color* functions return the ANSI escape code for the currently active
// theme's corresponding category, honoring NO_COLOR/--no-color via
// InitTheme/SetCurrentTheme.

// ColorReset returns the escape code that clears all formatting.
func ColorReset() string { return GetCurrentTheme().Reset }

// ColorRed returns the active theme's error color.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorGreen returns the active theme's success color.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorYellow returns the active theme's warning color.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorBlue returns the active theme's primary color.
func ColorBlue() string { return GetCurrentTheme().Primary }

// ColorMagenta returns the active theme's info color.
func ColorMagenta() string { return GetCurrentTheme().Info }

// ColorCyan returns the active theme's secondary color.
func ColorCyan() string { return GetCurrentTheme().Secondary }

// ColorBold returns the escape code for bold text.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorUnderline returns the escape code for underlined text.
func ColorUnderline() string { return GetCurrentTheme().Underline }
