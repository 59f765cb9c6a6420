package collector

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rileyhilliard/dotfetch/internal/snapshot"
)

func TestPlaceholder(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", snapshot.Unknown},
		{"  \t", snapshot.Unknown},
		{" zsh ", "zsh"},
		{"To Be Filled By O.E.M.", snapshot.Unknown},
		{"default STRING", snapshot.Unknown},
		{"Dell Inc.", "Dell Inc."},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, placeholder(tt.in))
		})
	}
}

func TestNormalize_ZeroSnapshot(t *testing.T) {
	s := &snapshot.HostSnapshot{}
	normalize(s)

	assert.Equal(t, snapshot.Unknown, s.User)
	assert.Equal(t, snapshot.Unknown, s.Host)
	assert.Equal(t, snapshot.Unknown, s.OS.Caption)
	assert.Equal(t, snapshot.Unknown, s.OS.Architecture)
	assert.Equal(t, snapshot.Unknown, s.OS.Build)
	assert.Equal(t, snapshot.Unknown, s.Font)
	assert.Equal(t, snapshot.Unknown, s.Shell)
	assert.Equal(t, snapshot.Unknown, s.CPU.Name)
	assert.Equal(t, snapshot.Unknown, s.Chassis.Manufacturer)
	assert.Equal(t, snapshot.Unknown, s.Chassis.Model)
	assert.NotNil(t, s.GPUs)
	assert.NotNil(t, s.Disks)
	assert.False(t, s.Battery.Available)
}

func TestNormalize_Numerics(t *testing.T) {
	s := &snapshot.HostSnapshot{
		Uptime:  -time.Minute,
		Display: snapshot.DisplayInfo{Width: -1, Height: 1080, Depth: -24, RefreshRate: -60},
		CPU:     snapshot.CPUInfo{PhysicalCores: -2, LogicalCores: 4, LoadPercent: -7},
		Memory:  snapshot.MemoryInfo{TotalMB: 1024, UsedMB: 4096},
		Battery: snapshot.BatteryInfo{Available: false, ChargePercent: 55, Charging: true},
		Disks:   []snapshot.Disk{{Name: "", TotalBytes: 10, FreeBytes: 20}},
	}
	normalize(s)

	assert.Zero(t, s.Uptime)
	assert.Equal(t, snapshot.DisplayInfo{Width: 0, Height: 1080, Depth: 0, RefreshRate: 0}, s.Display)
	assert.Equal(t, 0, s.CPU.PhysicalCores)
	assert.Equal(t, 4, s.CPU.LogicalCores)
	assert.Equal(t, 0, s.CPU.LoadPercent)
	assert.Equal(t, int64(1024), s.Memory.UsedMB, "used never exceeds total")
	assert.Equal(t, snapshot.BatteryInfo{}, s.Battery, "unavailable battery carries no state")
	assert.Equal(t, []snapshot.Disk{{Name: snapshot.Unknown, TotalBytes: 10, FreeBytes: 10}}, s.Disks)
}

func TestNormalize_NegativeMemory(t *testing.T) {
	s := &snapshot.HostSnapshot{Memory: snapshot.MemoryInfo{TotalMB: -1, UsedMB: -1}}
	normalize(s)
	assert.Equal(t, snapshot.MemoryInfo{}, s.Memory)
}
