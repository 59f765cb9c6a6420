package collector

import (
	"context"
	"fmt"
	"os"
	"os/user"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/rileyhilliard/dotfetch/internal/collector/parsers"
)

// hostFacility reads identity, OS release and uptime.
type hostFacility struct {
	goos string
}

func (h hostFacility) Identity(ctx context.Context) (IdentityInfo, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return IdentityInfo{}, fmt.Errorf("read hostname: %w", err)
	}

	name := os.Getenv("USER")
	if u, err := user.Current(); err == nil {
		name = u.Username
	} else if name == "" {
		name = os.Getenv("USERNAME")
	}

	return IdentityInfo{Host: hostname, User: parsers.TrimDomain(name)}, nil
}

func (h hostFacility) OS(ctx context.Context) (OSInfo, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return OSInfo{}, fmt.Errorf("read host info: %w", err)
	}
	return osFromHostInfo(info, h.goos), nil
}

func (h hostFacility) Uptime(ctx context.Context) (time.Duration, error) {
	secs, err := host.UptimeWithContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("read uptime: %w", err)
	}
	return time.Duration(secs) * time.Second, nil
}

// osFromHostInfo maps gopsutil host info to OSInfo. Windows platform names
// already carry the edition ("Microsoft Windows 11 Pro"); elsewhere the
// release version is appended.
func osFromHostInfo(info *host.InfoStat, goos string) OSInfo {
	caption := info.Platform
	if goos != "windows" && info.PlatformVersion != "" {
		caption = strings.TrimSpace(caption + " " + info.PlatformVersion)
	}

	build := info.KernelVersion
	if build == "" {
		build = info.PlatformVersion
	}

	return OSInfo{
		Caption:      caption,
		Build:        build,
		Architecture: info.KernelArch,
	}
}

// cpuFacility reads the processor model and samples load once.
type cpuFacility struct {
	sample time.Duration
}

func (f cpuFacility) Processor(ctx context.Context) (ProcessorInfo, error) {
	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return ProcessorInfo{}, fmt.Errorf("read cpu info: %w", err)
	}

	var p ProcessorInfo
	if len(infos) > 0 {
		p.Name = strings.TrimSpace(infos[0].ModelName)
	}

	// Counts and load are single fields; missing ones stay 0.
	p.PhysicalCores, _ = cpu.CountsWithContext(ctx, false)
	p.LogicalCores, _ = cpu.CountsWithContext(ctx, true)
	if pct, err := cpu.PercentWithContext(ctx, f.sample, false); err == nil && len(pct) > 0 {
		p.LoadPercent = int(pct[0])
	}

	return p, nil
}

// memFacility reads physical memory.
type memFacility struct{}

func (memFacility) Memory(ctx context.Context) (MemoryInfo, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return MemoryInfo{}, fmt.Errorf("read memory: %w", err)
	}
	return MemoryInfo{TotalBytes: vm.Total, AvailableBytes: vm.Available}, nil
}

// pseudoFilesystems are mounted filesystems that are not fixed local volumes.
var pseudoFilesystems = map[string]bool{
	"autofs":     true,
	"cdfs":       true,
	"cifs":       true,
	"devtmpfs":   true,
	"fuse.sshfs": true,
	"iso9660":    true,
	"nfs":        true,
	"nfs4":       true,
	"overlay":    true,
	"smb3":       true,
	"smbfs":      true,
	"squashfs":   true,
	"tmpfs":      true,
	"udf":        true,
}

// diskFacility enumerates fixed volumes.
type diskFacility struct {
	goos string
}

func (f diskFacility) Volumes(ctx context.Context) ([]VolumeInfo, error) {
	parts, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("list partitions: %w", err)
	}

	seen := make(map[string]bool)
	var vols []VolumeInfo
	for _, p := range parts {
		if !fixedVolume(p) || seen[p.Device] {
			continue
		}
		seen[p.Device] = true

		usage, err := disk.UsageWithContext(ctx, p.Mountpoint)
		if err != nil {
			continue
		}
		vols = append(vols, VolumeInfo{
			Name:       volumeName(p.Mountpoint, f.goos),
			TotalBytes: usage.Total,
			FreeBytes:  usage.Free,
		})
	}
	return vols, nil
}

// fixedVolume reports whether a partition is a local, physical volume.
func fixedVolume(p disk.PartitionStat) bool {
	if pseudoFilesystems[strings.ToLower(p.Fstype)] {
		return false
	}
	if strings.HasPrefix(p.Device, "/dev/loop") {
		return false
	}
	// host:/export and //server/share
	if strings.HasPrefix(p.Device, "//") || strings.Contains(p.Device, ":/") {
		return false
	}
	return true
}

// volumeName returns the label shown for a mount point. Windows drive
// letters are shown as roots ("C:\").
func volumeName(mount, goos string) string {
	if goos == "windows" && strings.HasSuffix(mount, ":") {
		return mount + `\`
	}
	return mount
}
