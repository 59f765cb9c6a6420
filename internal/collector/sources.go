package collector

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/rileyhilliard/dotfetch/internal/collector/parsers"
)

// DefaultCPUSample is how long CPU load is sampled for.
const DefaultCPUSample = 500 * time.Millisecond

// SourceOptions tunes the facilities returned by DefaultSources.
type SourceOptions struct {
	// CPUSample is the CPU load sampling interval.
	CPUSample time.Duration

	// Run executes external commands. Nil uses os/exec.
	Run Runner

	// SysfsRoot is where sysfs is mounted (Linux only).
	SysfsRoot string
}

// DefaultSources returns the facilities for the running platform.
func DefaultSources(opts SourceOptions) Sources {
	if opts.CPUSample <= 0 {
		opts.CPUSample = DefaultCPUSample
	}
	if opts.Run == nil {
		opts.Run = runCommand
	}
	if opts.SysfsRoot == "" {
		opts.SysfsRoot = "/sys"
	}

	h := hostFacility{goos: runtime.GOOS}
	s := Sources{
		Identity:  h,
		OS:        h,
		Uptime:    h,
		Processor: cpuFacility{sample: opts.CPUSample},
		Memory:    memFacility{},
		Volumes:   diskFacility{goos: runtime.GOOS},
	}
	addPlatformSources(&s, opts)
	return s
}

// envDesktop reads the shell from an environment variable and the font with
// an optional lookup.
type envDesktop struct {
	shellVar string
	getenv   func(string) string
	font     func(ctx context.Context) (string, error)
}

func (d envDesktop) Desktop(ctx context.Context) (DesktopInfo, error) {
	getenv := d.getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	info := DesktopInfo{Shell: parsers.ShellName(getenv(d.shellVar))}
	if d.font != nil {
		if font, err := d.font(ctx); err == nil {
			info.Font = font
		}
	}

	if info.Shell == "" && info.Font == "" {
		return DesktopInfo{}, fmt.Errorf("no shell in $%s and no desktop font", d.shellVar)
	}
	return info, nil
}
