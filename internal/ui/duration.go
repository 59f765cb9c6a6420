package ui

import (
	"strconv"
	"strings"
	"time"
)

// FormatDuration renders d as "<days>d <hours>h <minutes>M <seconds>s ".
// All four tokens are always present, unpadded, each followed by a space.
// Negative durations render as zero.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	days := total / 86400
	hours := (total % 86400) / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	var b strings.Builder
	writeToken(&b, days, "d")
	writeToken(&b, hours, "h")
	writeToken(&b, minutes, "M")
	writeToken(&b, seconds, "s")
	return b.String()
}

func writeToken(b *strings.Builder, value int64, unit string) {
	b.WriteString(strconv.FormatInt(value, 10))
	b.WriteString(unit)
	b.WriteByte(' ')
}
