package collector

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rileyhilliard/dotfetch/internal/collector/parsers"
)

// sysfsBattery reads the first battery under <root>/class/power_supply.
type sysfsBattery struct {
	root string
}

func (b sysfsBattery) Battery(ctx context.Context) (BatteryInfo, error) {
	matches, err := filepath.Glob(filepath.Join(b.root, "class", "power_supply", "*", "uevent"))
	if err != nil {
		return BatteryInfo{}, fmt.Errorf("glob power supplies: %w", err)
	}
	sort.Strings(matches)

	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		bat := parsers.BatteryFromUevent(parsers.ParseUevent(string(data)))
		if bat.Present {
			return BatteryInfo(bat), nil
		}
	}
	return BatteryInfo{}, nil
}

// fallbackBattery asks primary first and falls back to secondary when primary
// fails. Only the secondary error is reported.
type fallbackBattery struct {
	primary   BatterySource
	secondary BatterySource
}

func (b fallbackBattery) Battery(ctx context.Context) (BatteryInfo, error) {
	if info, err := b.primary.Battery(ctx); err == nil {
		return info, nil
	}
	return b.secondary.Battery(ctx)
}

// dmiChassis reads vendor and product names from <root>/class/dmi/id.
type dmiChassis struct {
	root string
}

func (c dmiChassis) Chassis(ctx context.Context) (ChassisInfo, error) {
	dir := filepath.Join(c.root, "class", "dmi", "id")

	vendor, vendorErr := readTrimmed(filepath.Join(dir, "sys_vendor"))
	product, productErr := readTrimmed(filepath.Join(dir, "product_name"))
	if vendorErr != nil && productErr != nil {
		return ChassisInfo{}, fmt.Errorf("read dmi: %w", vendorErr)
	}

	// Lenovo keeps the marketing name in product_version.
	if version, err := readTrimmed(filepath.Join(dir, "product_version")); err == nil &&
		strings.EqualFold(vendor, "LENOVO") && version != "" {
		product = version
	}

	return ChassisInfo{Manufacturer: vendor, Model: product}, nil
}

func readTrimmed(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
