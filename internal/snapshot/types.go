// Package snapshot defines HostSnapshot, the single record of host facts that
// the collector builds once and the dashboard renderer reads.
package snapshot

import "time"

// Unknown is the placeholder shown for string facts that could not be read.
const Unknown = "unknown"

// HostSnapshot contains every fact collected for one run.
// It is built once and treated as read-only afterwards.
type HostSnapshot struct {
	CollectedAt time.Time `yaml:"collected_at"`

	User string `yaml:"user"`
	Host string `yaml:"host"`

	OS     OSInfo        `yaml:"os"`
	Uptime time.Duration `yaml:"uptime"`

	Display DisplayInfo `yaml:"display"`
	Font    string      `yaml:"font"`
	Shell   string      `yaml:"shell"`

	CPU    CPUInfo    `yaml:"cpu"`
	Memory MemoryInfo `yaml:"memory"`
	GPUs   []string   `yaml:"gpus"`

	Chassis ChassisInfo `yaml:"chassis"`
	Battery BatteryInfo `yaml:"battery"`
	Disks   []Disk      `yaml:"disks"`
}

// OSInfo describes the operating system.
type OSInfo struct {
	Caption      string `yaml:"caption"`
	Architecture string `yaml:"architecture"`
	Build        string `yaml:"build"`
}

// DisplayInfo describes the primary display adapter mode.
type DisplayInfo struct {
	Width       int `yaml:"width"`        // pixels
	Height      int `yaml:"height"`       // pixels
	Depth       int `yaml:"depth"`        // bits per pixel
	RefreshRate int `yaml:"refresh_rate"` // Hz
}

// CPUInfo describes the processor.
type CPUInfo struct {
	Name          string `yaml:"name"`
	PhysicalCores int    `yaml:"physical_cores"`
	LogicalCores  int    `yaml:"logical_cores"`
	LoadPercent   int    `yaml:"load_percent"`
}

// MemoryInfo holds physical memory sizes in megabytes (MiB).
type MemoryInfo struct {
	TotalMB int64 `yaml:"total_mb"`
	UsedMB  int64 `yaml:"used_mb"`
}

// ChassisInfo identifies the machine.
type ChassisInfo struct {
	Manufacturer string `yaml:"manufacturer"`
	Model        string `yaml:"model"`
}

// BatteryInfo describes the battery. ChargePercent and Charging are only
// meaningful when Available is true.
type BatteryInfo struct {
	Available     bool `yaml:"available"`
	ChargePercent int  `yaml:"charge_percent"`
	Charging      bool `yaml:"charging"`
}

// Disk is one fixed local volume.
type Disk struct {
	Name       string `yaml:"name"`
	TotalBytes uint64 `yaml:"total_bytes"`
	FreeBytes  uint64 `yaml:"free_bytes"`
}
