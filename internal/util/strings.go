// Package util holds small text helpers shared by the renderers.
package util

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Ellipsis marks text cut short by Truncate.
const Ellipsis = "..."

// Width returns the number of terminal cells s occupies, ignoring escape
// sequences.
func Width(s string) int {
	return lipgloss.Width(s)
}

// Truncate shortens s to at most width cells, ending it with Ellipsis when
// anything was dropped. Below the width of the ellipsis itself the text is
// cut without a marker. Escape sequences are kept intact.
func Truncate(s string, width int) string {
	if width < 1 {
		return ""
	}
	if Width(s) <= width {
		return s
	}
	if width <= len(Ellipsis) {
		return ansi.Truncate(s, width, "")
	}
	return ansi.Truncate(s, width, Ellipsis)
}
