// Package utils provides display-width and pattern helpers shared across packages.
package utils

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DisplayWidth returns the terminal cell width of a string.
//
// Package names and version strings can contain characters wider than one
// cell; counting cells instead of runes keeps table columns aligned.
//
// Parameters:
//   - val: The string to measure
//
// Returns:
//   - int: The display width in cells (wide characters count as 2)
func DisplayWidth(val string) int {
	return runewidth.StringWidth(val)
}

// ToWidth left-justifies a string to a target display width.
//
// Strings already at or beyond the target, and non-positive widths, pass
// through unchanged.
//
// Parameters:
//   - val: The string to pad
//   - width: The target display width in cells
//
// Returns:
//   - string: val padded with trailing spaces up to width
func ToWidth(val string, width int) string {
	if width <= 0 {
		return val
	}
	current := DisplayWidth(val)
	if current >= width {
		return val
	}
	return val + strings.Repeat(" ", width-current)
}
