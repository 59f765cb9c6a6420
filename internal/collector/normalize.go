package collector

import (
	"strings"

	"github.com/rileyhilliard/dotfetch/internal/snapshot"
)

// firmwareFillers are values vendors leave in DMI/WMI fields instead of real data.
var firmwareFillers = []string{
	"To Be Filled By O.E.M.",
	"Default string",
	"Not Specified",
	"System manufacturer",
}

// normalize applies the placeholder policy to a freshly collected snapshot:
// blank strings become snapshot.Unknown, negative numbers become 0,
// percentages are clamped and list fields are never nil.
func normalize(s *snapshot.HostSnapshot) {
	for _, p := range []*string{
		&s.User, &s.Host,
		&s.OS.Caption, &s.OS.Architecture, &s.OS.Build,
		&s.Font, &s.Shell,
		&s.CPU.Name,
		&s.Chassis.Manufacturer, &s.Chassis.Model,
	} {
		*p = placeholder(*p)
	}

	for _, p := range []*int{
		&s.Display.Width, &s.Display.Height, &s.Display.Depth, &s.Display.RefreshRate,
		&s.CPU.PhysicalCores, &s.CPU.LogicalCores,
	} {
		if *p < 0 {
			*p = 0
		}
	}
	s.CPU.LoadPercent = snapshot.ClampPercent(s.CPU.LoadPercent)

	if s.Uptime < 0 {
		s.Uptime = 0
	}

	if s.Memory.TotalMB < 0 {
		s.Memory.TotalMB = 0
	}
	if s.Memory.UsedMB < 0 {
		s.Memory.UsedMB = 0
	}
	if s.Memory.UsedMB > s.Memory.TotalMB {
		s.Memory.UsedMB = s.Memory.TotalMB
	}

	if s.Battery.Available {
		s.Battery.ChargePercent = snapshot.ClampPercent(s.Battery.ChargePercent)
	} else {
		s.Battery = snapshot.BatteryInfo{}
	}

	gpus := make([]string, 0, len(s.GPUs))
	for _, g := range s.GPUs {
		gpus = append(gpus, placeholder(g))
	}
	s.GPUs = gpus

	disks := make([]snapshot.Disk, 0, len(s.Disks))
	for _, d := range s.Disks {
		d.Name = placeholder(d.Name)
		if d.FreeBytes > d.TotalBytes {
			d.FreeBytes = d.TotalBytes
		}
		disks = append(disks, d)
	}
	s.Disks = disks
}

// placeholder trims v and maps blank or filler values to snapshot.Unknown.
func placeholder(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return snapshot.Unknown
	}
	for _, filler := range firmwareFillers {
		if strings.EqualFold(v, filler) {
			return snapshot.Unknown
		}
	}
	return v
}
