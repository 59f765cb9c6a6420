//go:build windows

package collector

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"syscall"

	"golang.org/x/sys/windows/registry"

	"github.com/rileyhilliard/dotfetch/internal/collector/parsers"
	"github.com/rileyhilliard/dotfetch/internal/errors"
)

const (
	videoClassKey = `SYSTEM\CurrentControlSet\Control\Class\{4d36e968-e325-11ce-bfc1-08002be10318}`
	sysInfoKey    = `SYSTEM\CurrentControlSet\Control\SystemInformation`
	biosKey       = `HARDWARE\DESCRIPTION\System\BIOS`
)

func addPlatformSources(s *Sources, opts SourceOptions) {
	cim := cimFacility{}
	s.Display = cim
	s.Chassis = cim
	s.Battery = cim
	s.Desktop = envDesktop{
		shellVar: "ComSpec",
		font:     cim.iconFont,
	}
}

// cimFacility queries CIM classes through PowerShell, with registry
// fallbacks where one exists.
type cimFacility struct{}

// cimQuery runs Get-CimInstance for class, selecting props, and decodes the
// JSON result.
func cimQuery[T any](ctx context.Context, class string, props ...string) ([]T, error) {
	script := fmt.Sprintf("Get-CimInstance -ClassName %s | Select-Object %s | ConvertTo-Json -Compress",
		class, strings.Join(props, ","))

	out, err := runPowerShell(ctx, script)
	if err != nil {
		return nil, err
	}
	return parsers.DecodeCIM[T](out)
}

func runPowerShell(ctx context.Context, script string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "powershell", "-NoProfile", "-NonInteractive", "-Command", script)
	cmd.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}

	out, err := cmd.Output()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrExec,
			"Couldn't run PowerShell",
			"Make sure powershell.exe is available.")
	}
	return out, nil
}

func (cimFacility) Display(ctx context.Context) (DisplayInfo, error) {
	controllers, err := cimQuery[parsers.VideoController](ctx, "Win32_VideoController",
		"Description", "CurrentHorizontalResolution", "CurrentVerticalResolution",
		"CurrentBitsPerPixel", "CurrentRefreshRate")
	if err != nil {
		return DisplayInfo{}, err
	}

	// The first controller driving a display wins.
	for _, vc := range controllers {
		if vc.CurrentHorizontalResolution > 0 {
			return DisplayInfo{
				Width:       vc.CurrentHorizontalResolution,
				Height:      vc.CurrentVerticalResolution,
				Depth:       vc.CurrentBitsPerPixel,
				RefreshRate: vc.CurrentRefreshRate,
			}, nil
		}
	}
	if len(controllers) > 0 {
		return DisplayInfo{}, nil
	}
	return DisplayInfo{}, fmt.Errorf("no video controllers")
}

func (cimFacility) Adapters(ctx context.Context) ([]string, error) {
	controllers, err := cimQuery[parsers.VideoController](ctx, "Win32_VideoController", "Description")
	if err == nil {
		gpus := make([]string, 0, len(controllers))
		for _, vc := range controllers {
			gpus = append(gpus, vc.Description)
		}
		return gpus, nil
	}

	if gpus := registryAdapters(); len(gpus) > 0 {
		return gpus, nil
	}
	return nil, err
}

func (cimFacility) iconFont(ctx context.Context) (string, error) {
	desktops, err := cimQuery[parsers.Desktop](ctx, "Win32_Desktop", "IconTitleFaceName")
	if err != nil {
		return "", err
	}
	for _, d := range desktops {
		if d.IconTitleFaceName != "" {
			return d.IconTitleFaceName, nil
		}
	}
	return "", nil
}

func (cimFacility) Chassis(ctx context.Context) (ChassisInfo, error) {
	systems, err := cimQuery[parsers.ComputerSystem](ctx, "Win32_ComputerSystem", "Manufacturer", "Model")
	if err == nil && len(systems) > 0 {
		return ChassisInfo(systems[0]), nil
	}

	info := ChassisInfo{
		Manufacturer: registryString(sysInfoKey, "SystemManufacturer"),
		Model:        registryString(sysInfoKey, "SystemProductName"),
	}
	if info.Manufacturer == "" {
		info.Manufacturer = registryString(biosKey, "SystemManufacturer")
	}
	if info.Model == "" {
		info.Model = registryString(biosKey, "SystemProductName")
	}
	if info.Manufacturer == "" && info.Model == "" {
		if err == nil {
			err = fmt.Errorf("no computer system instance")
		}
		return ChassisInfo{}, err
	}
	return info, nil
}

func (cimFacility) Battery(ctx context.Context) (BatteryInfo, error) {
	batteries, err := cimQuery[parsers.CIMBattery](ctx, "Win32_Battery", "BatteryStatus", "EstimatedChargeRemaining")
	if err != nil {
		return BatteryInfo{}, err
	}
	if len(batteries) == 0 {
		return BatteryInfo{}, nil
	}

	b := batteries[0]
	return BatteryInfo{
		Present:  true,
		Percent:  b.EstimatedChargeRemaining,
		Charging: parsers.CIMBatteryCharging(b.BatteryStatus),
	}, nil
}

// registryAdapters lists display adapter driver descriptions from the video
// device class key, skipping the basic fallback driver.
func registryAdapters() []string {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, videoClassKey, registry.ENUMERATE_SUB_KEYS)
	if err != nil {
		return nil
	}
	defer func() { _ = k.Close() }()

	subkeys, err := k.ReadSubKeyNames(-1)
	if err != nil {
		return nil
	}

	var gpus []string
	for _, sub := range subkeys {
		desc := registryString(videoClassKey+`\`+sub, "DriverDesc")
		if desc == "" || strings.Contains(strings.ToLower(desc), "microsoft basic") {
			continue
		}
		gpus = append(gpus, desc)
	}
	return gpus
}

func registryString(path, name string) string {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, path, registry.QUERY_VALUE)
	if err != nil {
		return ""
	}
	defer func() { _ = k.Close() }()

	v, _, err := k.GetStringValue(name)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(v)
}
