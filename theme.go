package medassist

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The user's terminal theme determines the actual RGB values, so the app
// automatically matches any color scheme.
type Theme struct {
	UserMsg   int // User message accent
	Error     int // Error messages
	Emergency int // Emergency banner
	Success   int // Success indicators
	Muted     int // Status bar, placeholders
	Accent    int // Headings, key terms
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		UserMsg:   4,
		Error:     1,
		Emergency: 9,
		Success:   2,
		Muted:     8,
		Accent:    6,
	}
}
