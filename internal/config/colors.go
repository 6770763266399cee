package config

import "github.com/subbu1996/folio/internal/config/colors"

// ColorScheme is re-exported so consumers only import config
type ColorScheme = colors.ColorScheme

// DefaultColorScheme returns the default color scheme (blue theme)
func DefaultColorScheme() colors.ColorScheme {
	return *colors.Default()
}

// MonochromeColorScheme returns a black and white color scheme
func MonochromeColorScheme() colors.ColorScheme {
	return *colors.Monochrome()
}

// DragonColorScheme returns the Kanagawa Dragon color scheme
func DragonColorScheme() colors.ColorScheme {
	return *colors.Dragon()
}
