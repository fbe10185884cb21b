package config

import "huntboard/internal/config/colors"

// ColorScheme re-exports the colors type so callers only import config.
type ColorScheme = colors.ColorScheme

// DefaultColorScheme returns the default color scheme (purple theme)
func DefaultColorScheme() ColorScheme {
	return *colors.Default()
}
