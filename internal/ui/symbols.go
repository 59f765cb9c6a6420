package ui

// Bar glyphs.
const (
	SegmentLoad    = "=" // Filled load bar segment
	SegmentEmpty   = "-" // Unfilled load bar segment
	SegmentLevel   = "|" // Battery cell, filled or not
	BarOpen        = "["
	BarClose       = "]"
	BatteryNub     = "]="
	ChargingMarker = " ~"
)

// BarSegments is the fixed number of cells in every bar.
const BarSegments = 10
