package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampPercent(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{-5, 0},
		{0, 0},
		{45, 45},
		{100, 100},
		{250, 100},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampPercent(tt.in), "ClampPercent(%d)", tt.in)
	}
}

func TestMemoryPercent(t *testing.T) {
	tests := []struct {
		name string
		mem  MemoryInfo
		want int
	}{
		{"half used", MemoryInfo{TotalMB: 16384, UsedMB: 8192}, 50},
		{"truncates", MemoryInfo{TotalMB: 3, UsedMB: 2}, 66},
		{"unknown total", MemoryInfo{TotalMB: 0, UsedMB: 512}, 0},
		{"used over total never exceeds 100", MemoryInfo{TotalMB: 100, UsedMB: 150}, 100},
		{"negative used", MemoryInfo{TotalMB: 100, UsedMB: -1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mem.Percent())
		})
	}
}

func TestDiskUsedPercent(t *testing.T) {
	tests := []struct {
		name string
		disk Disk
		want int
	}{
		{"quarter used", Disk{TotalBytes: 400, FreeBytes: 300}, 25},
		{"full", Disk{TotalBytes: 1000, FreeBytes: 0}, 100},
		{"empty", Disk{TotalBytes: 1000, FreeBytes: 1000}, 0},
		{"zero total", Disk{TotalBytes: 0, FreeBytes: 0}, 0},
		{"zero total with free", Disk{TotalBytes: 0, FreeBytes: 12345}, 0},
		{"free larger than total", Disk{TotalBytes: 10, FreeBytes: 20}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() { _ = tt.disk.UsedPercent() })
			assert.Equal(t, tt.want, tt.disk.UsedPercent())
		})
	}
}

func TestDiskUsedBytes(t *testing.T) {
	assert.Equal(t, uint64(250), Disk{TotalBytes: 1000, FreeBytes: 750}.UsedBytes())
	assert.Equal(t, uint64(0), Disk{TotalBytes: 10, FreeBytes: 11}.UsedBytes())
}
