package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ValidColorModes returns the list of valid color modes.
func ValidColorModes() []string {
	return []string{ColorAuto, ColorAlways, ColorNever}
}

var (
	pidColor       = lipgloss.Color("#A78BFA") // Purple
	connectorColor = lipgloss.Color("#9CA3AF") // Gray
	zombieColor    = lipgloss.Color("#F87171") // Red
)

// Styles colors the parts of a tree row. The zero value renders plain text.
type Styles struct {
	enabled        bool
	connectorStyle lipgloss.Style
	pidStyle       lipgloss.Style
	zombieStyle    lipgloss.Style
}

// PlainStyles returns Styles that leave text untouched.
func PlainStyles() Styles {
	return Styles{}
}

// NewStyles returns Styles for output written to w. In auto mode colors are
// used only when w is a terminal that supports them.
func NewStyles(w io.Writer, mode string) Styles {
	if mode != ColorAuto && mode != ColorAlways {
		return PlainStyles()
	}

	r := lipgloss.NewRenderer(w)
	if mode == ColorAlways {
		r.SetColorProfile(termenv.ANSI256)
	}
	if r.ColorProfile() == termenv.Ascii {
		return PlainStyles()
	}

	return Styles{
		enabled:        true,
		connectorStyle: r.NewStyle().Foreground(connectorColor),
		pidStyle:       r.NewStyle().Foreground(pidColor).Bold(true),
		zombieStyle:    r.NewStyle().Foreground(zombieColor),
	}
}

// Enabled reports whether the styles emit escape sequences.
func (s Styles) Enabled() bool {
	return s.enabled
}

func (s Styles) connector(text string) string {
	if !s.enabled || text == "" {
		return text
	}
	return s.connectorStyle.Render(text)
}

func (s Styles) pid(text string) string {
	if !s.enabled {
		return text
	}
	return s.pidStyle.Render(text)
}

func (s Styles) command(text string, zombie bool) string {
	if !s.enabled || !zombie || text == "" {
		return text
	}
	return s.zombieStyle.Render(text)
}
