package ui

import (
	"fmt"
	"math"
)

// bytesPerGB is the decimal gigabyte used for disk capacities.
const bytesPerGB = 1e9

// BytesToGB converts bytes to decimal gigabytes rounded to 2 places.
func BytesToGB(b uint64) float64 {
	return math.Round(float64(b)/bytesPerGB*100) / 100
}

// FormatGB renders bytes as e.g. "476.92GB".
func FormatGB(b uint64) string {
	return fmt.Sprintf("%.2fGB", BytesToGB(b))
}
