package snapshot

// ClampPercent clamps p to the 0-100 range.
func ClampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Percent returns used memory as a whole percentage of total.
// Returns 0 when the total is unknown.
func (m MemoryInfo) Percent() int {
	if m.TotalMB <= 0 || m.UsedMB <= 0 {
		return 0
	}
	return ClampPercent(int(m.UsedMB * 100 / m.TotalMB))
}

// UsedBytes returns total minus free, or 0 if free exceeds total.
func (d Disk) UsedBytes() uint64 {
	if d.FreeBytes >= d.TotalBytes {
		return 0
	}
	return d.TotalBytes - d.FreeBytes
}

// UsedPercent returns (total-free)/total*100 truncated to an int.
// A zero-capacity disk reports 0.
func (d Disk) UsedPercent() int {
	if d.TotalBytes == 0 {
		return 0
	}
	return ClampPercent(int(float64(d.UsedBytes()) / float64(d.TotalBytes) * 100))
}
