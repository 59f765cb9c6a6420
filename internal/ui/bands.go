package ui

import "github.com/charmbracelet/lipgloss"

// Band is a severity/quality tier for a percentage.
type Band int

const (
	BandLow Band = iota
	BandMid
	BandHigh
)

// Band thresholds. Comparisons are strict on both sides of the mid band, so
// exactly LowerBound or UpperBound falls through to BandHigh.
const (
	LowerBound = 33
	UpperBound = 66
)

func (b Band) String() string {
	switch b {
	case BandLow:
		return "low"
	case BandMid:
		return "mid"
	default:
		return "high"
	}
}

// BandFor classifies p: p<33 low, 33<p<66 mid, anything else high.
func BandFor(p int) Band {
	if p < LowerBound {
		return BandLow
	}
	if p > LowerBound && p < UpperBound {
		return BandMid
	}
	return BandHigh
}

// Palette maps each band to a color.
type Palette [3]lipgloss.Color

// Color returns the palette entry for b.
func (p Palette) Color(b Band) lipgloss.Color {
	return p[b]
}

var (
	// LoadPalette is for resource usage: higher is worse.
	LoadPalette = Palette{BandLow: ColorGreen, BandMid: ColorYellow, BandHigh: ColorRed}

	// LevelPalette is for charge level: higher is better.
	LevelPalette = Palette{BandLow: ColorRed, BandMid: ColorYellow, BandHigh: ColorGreen}
)
