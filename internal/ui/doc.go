// Package ui provides the styled text pieces the dashboard is built from.
//
// Everything here returns spans of text tagged with a color; the render
// package decides where they go. Nothing in this package writes to a
// terminal.
//
// # Components Overview
//
//	RenderBar      - "(p)%  [cells]" bar with band colors
//	LoadBar        - CPU, RAM and disk usage ([====------])
//	LevelBar       - battery level ([||||||||||]=), optional " ~" marker
//	BandFor        - low/mid/high classification of a percentage
//	FormatDuration - "Dd Hh MM Ss " uptime text
//	FormatGB       - decimal gigabytes with two fractional digits
//
// # Color Scheme
//
// Colors are ANSI 16-color codes for broad terminal compatibility:
//
//	ColorLabel   (dark cyan)   - field labels, user@host
//	ColorValue   (white)       - field values
//	ColorGreen   (green)       - low load, high battery
//	ColorYellow  (yellow)      - mid band, charging marker
//	ColorRed     (red)         - high load, low battery
//	ColorBlue    (blue)        - logo
//	ColorEmpty   (gray)        - unfilled bar cells
//	ColorBracket (dark gray)   - bar brackets
//
// Use DisableColors() to switch to monochrome output (for --no-color flag).
package ui
