package parsers

import (
	"bufio"
	"fmt"
	"strings"
)

// Mode is the active mode of the primary output.
type Mode struct {
	Width       int
	Height      int
	RefreshRate int
}

// ParseXrandr extracts the current mode from `xrandr --current` output.
// The current mode line is the first one carrying a '*' marker, e.g.
//
//	   1920x1080     60.00*+  59.94    50.00
func ParseXrandr(output string) (Mode, error) {
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}

		for _, f := range fields[1:] {
			if !strings.Contains(f, "*") {
				continue
			}
			w, h, ok := strings.Cut(fields[0], "x")
			if !ok {
				break
			}
			// Custom modes look like 1920x1080_60.00, interlaced ones end in "i".
			h, _, _ = strings.Cut(h, "_")
			h = strings.TrimSuffix(h, "i")
			return Mode{
				Width:       Int(w),
				Height:      Int(h),
				RefreshRate: Int(strings.Trim(f, "*+")),
			}, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return Mode{}, fmt.Errorf("error scanning xrandr output: %w", err)
	}
	return Mode{}, fmt.Errorf("no current mode in xrandr output")
}

// ParseXdpyinfoDepth returns the root window depth from xdpyinfo output, or
// 0 when it is missing.
func ParseXdpyinfoDepth(output string) int {
	for _, line := range strings.Split(output, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok || strings.TrimSpace(key) != "depth of root window" {
			continue
		}
		fields := strings.Fields(value)
		if len(fields) > 0 {
			return Int(fields[0])
		}
	}
	return 0
}

// displayClasses are the lspci device classes that describe graphics adapters.
var displayClasses = map[string]bool{
	"VGA compatible controller": true,
	"3D controller":             true,
	"Display controller":        true,
}

// ParseLspci returns the graphics adapters listed in `lspci -mm` output as
// "<vendor> <device>" strings, in bus order.
func ParseLspci(output string) []string {
	var gpus []string
	for _, line := range strings.Split(output, "\n") {
		fields := splitQuoted(line)
		// slot, class, vendor, device, ...
		if len(fields) < 4 || !displayClasses[fields[1]] {
			continue
		}
		name := strings.TrimSpace(fields[2] + " " + fields[3])
		if name != "" {
			gpus = append(gpus, name)
		}
	}
	return gpus
}

// splitQuoted splits a line on whitespace, keeping double-quoted runs intact
// and dropping the quotes.
func splitQuoted(line string) []string {
	var (
		fields  []string
		current strings.Builder
		quoted  bool
		started bool
	)
	flush := func() {
		if started {
			fields = append(fields, current.String())
		}
		current.Reset()
		started = false
	}

	for _, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
			started = true
		case (r == ' ' || r == '\t') && !quoted:
			flush()
		default:
			current.WriteRune(r)
			started = true
		}
	}
	flush()
	return fields
}
