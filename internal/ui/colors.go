package ui

import (
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Dashboard palette using ANSI 16-color codes for terminal compatibility.
// Dark variants are 0-7, bright variants 8-15.
const (
	ColorLabel   lipgloss.Color = "6"  // Dark cyan: field labels, user@host
	ColorValue   lipgloss.Color = "15" // White: field values
	ColorGreen   lipgloss.Color = "10" // Bright green
	ColorYellow  lipgloss.Color = "11" // Bright yellow
	ColorRed     lipgloss.Color = "9"  // Bright red
	ColorBlue    lipgloss.Color = "12" // Bright blue
	ColorEmpty   lipgloss.Color = "7"  // Gray: unfilled bar segments
	ColorBracket lipgloss.Color = "8"  // Dark gray: bar brackets
)

var colorsDisabled atomic.Bool

// DisableColors switches output to monochrome (for --no-color and NO_COLOR).
func DisableColors() {
	colorsDisabled.Store(true)
	lipgloss.SetColorProfile(termenv.Ascii)
}

// ColorsDisabled reports whether DisableColors has been called.
func ColorsDisabled() bool {
	return colorsDisabled.Load()
}

// Span is a run of text drawn in one foreground color.
type Span struct {
	Text  string
	Color lipgloss.Color
}

// Plain joins the text of spans, dropping color.
func Plain(spans []Span) string {
	n := 0
	for _, s := range spans {
		n += len(s.Text)
	}
	b := make([]byte, 0, n)
	for _, s := range spans {
		b = append(b, s.Text...)
	}
	return string(b)
}
