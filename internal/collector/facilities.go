package collector

import (
	"context"
	"time"
)

// IdentityInfo names the account and machine.
type IdentityInfo struct {
	Host string
	User string
}

// OSInfo describes the operating system release.
type OSInfo struct {
	Caption      string
	Build        string
	Architecture string
}

// DisplayInfo is the active mode of the primary display.
type DisplayInfo struct {
	Width       int
	Height      int
	Depth       int
	RefreshRate int
}

// DesktopInfo holds desktop session settings.
type DesktopInfo struct {
	Font  string
	Shell string
}

// ProcessorInfo describes the processor and its sampled load.
type ProcessorInfo struct {
	Name          string
	PhysicalCores int
	LogicalCores  int
	LoadPercent   int
}

// MemoryInfo holds physical memory sizes in bytes.
type MemoryInfo struct {
	TotalBytes     uint64
	AvailableBytes uint64
}

// ChassisInfo identifies the hardware vendor and model.
type ChassisInfo struct {
	Manufacturer string
	Model        string
}

// BatteryInfo is the state of the first battery. Present is false when the
// machine has none.
type BatteryInfo struct {
	Present  bool
	Percent  int
	Charging bool
}

// VolumeInfo is one fixed local volume.
type VolumeInfo struct {
	Name       string
	TotalBytes uint64
	FreeBytes  uint64
}

// IdentitySource reports the current user and host name.
type IdentitySource interface {
	Identity(ctx context.Context) (IdentityInfo, error)
}

// OSSource reports the operating system release.
type OSSource interface {
	OS(ctx context.Context) (OSInfo, error)
}

// DisplaySource reports the primary display mode and every graphics adapter.
// The two methods back separate categories and fail independently.
type DisplaySource interface {
	Display(ctx context.Context) (DisplayInfo, error)
	Adapters(ctx context.Context) ([]string, error)
}

// DesktopSource reports the UI font and the command interpreter.
type DesktopSource interface {
	Desktop(ctx context.Context) (DesktopInfo, error)
}

// ProcessorSource reports the processor.
type ProcessorSource interface {
	Processor(ctx context.Context) (ProcessorInfo, error)
}

// MemorySource reports physical memory.
type MemorySource interface {
	Memory(ctx context.Context) (MemoryInfo, error)
}

// ChassisSource reports the machine vendor and model.
type ChassisSource interface {
	Chassis(ctx context.Context) (ChassisInfo, error)
}

// BatterySource reports the battery. A machine without a battery is not an
// error: it returns BatteryInfo{Present: false}.
type BatterySource interface {
	Battery(ctx context.Context) (BatteryInfo, error)
}

// VolumeSource enumerates fixed local volumes.
type VolumeSource interface {
	Volumes(ctx context.Context) ([]VolumeInfo, error)
}

// UptimeSource reports the time elapsed since boot.
type UptimeSource interface {
	Uptime(ctx context.Context) (time.Duration, error)
}

// Sources groups one facility per category. A nil facility makes its
// categories unreachable.
type Sources struct {
	Identity  IdentitySource
	OS        OSSource
	Display   DisplaySource
	Desktop   DesktopSource
	Processor ProcessorSource
	Memory    MemorySource
	Chassis   ChassisSource
	Battery   BatterySource
	Volumes   VolumeSource
	Uptime    UptimeSource
}
