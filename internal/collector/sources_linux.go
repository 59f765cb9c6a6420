//go:build linux

package collector

import (
	"context"

	"github.com/rileyhilliard/dotfetch/internal/collector/parsers"
)

func addPlatformSources(s *Sources, opts SourceOptions) {
	s.Display = x11Display{run: opts.Run}
	s.Desktop = envDesktop{
		shellVar: "SHELL",
		font:     gsettingsFont(opts.Run),
	}
	s.Chassis = dmiChassis{root: opts.SysfsRoot}
	s.Battery = fallbackBattery{
		primary:   upowerBattery{connect: connectSystemBus},
		secondary: sysfsBattery{root: opts.SysfsRoot},
	}
}

// x11Display reads the current mode with xrandr/xdpyinfo and the adapters
// with lspci.
type x11Display struct {
	run Runner
}

func (d x11Display) Display(ctx context.Context) (DisplayInfo, error) {
	out, err := d.run(ctx, "xrandr", "--current")
	if err != nil {
		return DisplayInfo{}, err
	}
	mode, err := parsers.ParseXrandr(out)
	if err != nil {
		return DisplayInfo{}, err
	}

	info := DisplayInfo{
		Width:       mode.Width,
		Height:      mode.Height,
		RefreshRate: mode.RefreshRate,
	}
	if out, err := d.run(ctx, "xdpyinfo"); err == nil {
		info.Depth = parsers.ParseXdpyinfoDepth(out)
	}
	return info, nil
}

func (d x11Display) Adapters(ctx context.Context) ([]string, error) {
	out, err := d.run(ctx, "lspci", "-mm")
	if err != nil {
		return nil, err
	}
	return parsers.ParseLspci(out), nil
}

func gsettingsFont(run Runner) func(ctx context.Context) (string, error) {
	return func(ctx context.Context) (string, error) {
		out, err := run(ctx, "gsettings", "get", "org.gnome.desktop.interface", "font-name")
		if err != nil {
			return "", err
		}
		return parsers.ParseGsettingsFont(out), nil
	}
}
