package ui

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/dotfetch/internal/snapshot"
)

// FilledSegments returns how many of the BarSegments cells are filled for p.
// Segment i is filled when i < p/10 (integer division).
func FilledSegments(p int) int {
	return snapshot.ClampPercent(p) / 10
}

// BarConfig configures bar rendering.
type BarConfig struct {
	Filled  string  // Glyph for filled cells
	Empty   string  // Glyph for unfilled cells
	Close   string  // Closing bracket
	Palette Palette // Band colors for the label and filled cells
}

// LoadBarConfig is the resource usage bar: [====------].
func LoadBarConfig() BarConfig {
	return BarConfig{
		Filled:  SegmentLoad,
		Empty:   SegmentEmpty,
		Close:   BarClose,
		Palette: LoadPalette,
	}
}

// LevelBarConfig is the battery bar: [||||||||||]=.
func LevelBarConfig() BarConfig {
	return BarConfig{
		Filled:  SegmentLevel,
		Empty:   SegmentLevel,
		Close:   BatteryNub,
		Palette: LevelPalette,
	}
}

// RenderBar builds the spans for "(p)%  [cells]". p is clamped to 0-100.
func RenderBar(p int, config BarConfig) []Span {
	p = snapshot.ClampPercent(p)
	color := config.Palette.Color(BandFor(p))
	filled := FilledSegments(p)

	spans := make([]Span, 0, 4)
	spans = append(spans,
		Span{Text: fmt.Sprintf("(%d)%%  ", p), Color: color},
		Span{Text: BarOpen, Color: ColorBracket},
	)
	if filled > 0 {
		spans = append(spans, Span{Text: strings.Repeat(config.Filled, filled), Color: color})
	}
	if empty := BarSegments - filled; empty > 0 {
		spans = append(spans, Span{Text: strings.Repeat(config.Empty, empty), Color: ColorEmpty})
	}
	return append(spans, Span{Text: config.Close, Color: ColorBracket})
}

// LoadBar renders a CPU/RAM/disk usage bar.
func LoadBar(p int) []Span {
	return RenderBar(p, LoadBarConfig())
}

// LevelBar renders a battery level bar, with the charging marker appended
// when charging is true.
func LevelBar(p int, charging bool) []Span {
	spans := RenderBar(p, LevelBarConfig())
	if charging {
		spans = append(spans, Span{Text: ChargingMarker, Color: ColorYellow})
	}
	return spans
}
