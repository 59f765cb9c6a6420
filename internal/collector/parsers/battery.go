package parsers

import (
	"strings"
)

// Battery is the parsed state of the first battery.
type Battery struct {
	Present  bool
	Percent  int
	Charging bool
}

// ParseUevent parses the KEY=VALUE lines of a sysfs uevent file.
func ParseUevent(data string) map[string]string {
	props := make(map[string]string)
	for _, line := range strings.Split(data, "\n") {
		if k, v, ok := strings.Cut(strings.TrimSpace(line), "="); ok {
			props[k] = v
		}
	}
	return props
}

// BatteryFromUevent reads a power_supply uevent. Supplies that are not
// batteries, or report POWER_SUPPLY_PRESENT=0, are not present.
func BatteryFromUevent(props map[string]string) Battery {
	if t, ok := props["POWER_SUPPLY_TYPE"]; ok && t != "Battery" {
		return Battery{}
	}
	if props["POWER_SUPPLY_PRESENT"] == "0" {
		return Battery{}
	}
	capacity, ok := props["POWER_SUPPLY_CAPACITY"]
	if !ok {
		return Battery{}
	}

	status := props["POWER_SUPPLY_STATUS"]
	return Battery{
		Present:  true,
		Percent:  Int(capacity),
		Charging: status == "Charging" || status == "Full",
	}
}

// UPower device states.
const (
	upowerCharging      = 1
	upowerFullyCharged  = 4
	upowerPendingCharge = 5
)

// UPowerCharging reports whether a UPower device State means the battery is
// on external power.
func UPowerCharging(state uint32) bool {
	switch state {
	case upowerCharging, upowerFullyCharged, upowerPendingCharge:
		return true
	}
	return false
}

// CIMBatteryCharging maps Win32_Battery.BatteryStatus to a charging flag.
// Status 1 means discharging; 2 means on AC power and 6..9 are charging.
func CIMBatteryCharging(status int) bool {
	return status == 2 || (status >= 6 && status <= 9)
}
