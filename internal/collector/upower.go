package collector

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"

	"github.com/rileyhilliard/dotfetch/internal/collector/parsers"
)

const (
	upowerName          = "org.freedesktop.UPower"
	upowerDisplayDevice = "/org/freedesktop/UPower/devices/DisplayDevice"
	upowerDeviceIface   = "org.freedesktop.UPower.Device"

	// UPower device Type for batteries.
	upowerTypeBattery = 2
)

// upowerBattery reads the UPower display device over the system bus.
type upowerBattery struct {
	connect func(ctx context.Context) (*dbus.Conn, error)
}

func connectSystemBus(ctx context.Context) (*dbus.Conn, error) {
	return dbus.ConnectSystemBus(dbus.WithContext(ctx))
}

func (b upowerBattery) Battery(ctx context.Context) (BatteryInfo, error) {
	conn, err := b.connect(ctx)
	if err != nil {
		return BatteryInfo{}, fmt.Errorf("connect system bus: %w", err)
	}
	defer func() { _ = conn.Close() }()

	props := make(map[string]dbus.Variant)
	obj := conn.Object(upowerName, upowerDisplayDevice)
	if err := obj.CallWithContext(ctx, "org.freedesktop.DBus.Properties.GetAll", 0, upowerDeviceIface).Store(&props); err != nil {
		return BatteryInfo{}, fmt.Errorf("query UPower: %w", err)
	}
	return batteryFromUPower(props), nil
}

// batteryFromUPower maps UPower device properties to BatteryInfo.
func batteryFromUPower(props map[string]dbus.Variant) BatteryInfo {
	present, _ := props["IsPresent"].Value().(bool)
	kind, _ := props["Type"].Value().(uint32)
	if !present || kind != upowerTypeBattery {
		return BatteryInfo{}
	}

	pct, _ := props["Percentage"].Value().(float64)
	state, _ := props["State"].Value().(uint32)
	return BatteryInfo{
		Present:  true,
		Percent:  int(pct + 0.5),
		Charging: parsers.UPowerCharging(state),
	}
}
