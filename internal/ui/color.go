// Package ui holds terminal styling helpers for the non-interactive commands
package ui

import (
	"github.com/pterm/pterm"
)

// DarkTheme selects the light variants of each color.
var DarkTheme bool

// Configure sets the theme and disables styling entirely when noColor is set.
func Configure(darkTheme, noColor bool) {
	DarkTheme = darkTheme

	if noColor {
		pterm.DisableStyling()
	}
}

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Cyan(a any) string {
	if DarkTheme {
		return pterm.LightCyan(a)
	}

	return pterm.Cyan(a)
}

func Red(a any) string {
	if DarkTheme {
		return pterm.LightRed(a)
	}

	return pterm.Red(a)
}

// Highlight renders text with the strongest contrast for the theme.
func Highlight(a any) string {
	if DarkTheme {
		return pterm.LightWhite(a)
	}

	return pterm.Black(a)
}
