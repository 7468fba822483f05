package mdv

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The user's terminal theme determines the actual RGB values, so the
// viewer automatically matches any color scheme.
type Theme struct {
	Accent int // Headings, links
	Muted  int // Code gutters, URLs, image fallbacks
	Error  int // Diagnostics
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		Accent: 5,
		Muted:  8,
		Error:  1,
	}
}
