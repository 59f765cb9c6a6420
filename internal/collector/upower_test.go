package collector

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatteryFromUPower(t *testing.T) {
	tests := []struct {
		name  string
		props map[string]dbus.Variant
		want  BatteryInfo
	}{
		{
			name: "discharging",
			props: map[string]dbus.Variant{
				"IsPresent":  dbus.MakeVariant(true),
				"Type":       dbus.MakeVariant(uint32(2)),
				"Percentage": dbus.MakeVariant(64.6),
				"State":      dbus.MakeVariant(uint32(2)),
			},
			want: BatteryInfo{Present: true, Percent: 65},
		},
		{
			name: "charging",
			props: map[string]dbus.Variant{
				"IsPresent":  dbus.MakeVariant(true),
				"Type":       dbus.MakeVariant(uint32(2)),
				"Percentage": dbus.MakeVariant(12.0),
				"State":      dbus.MakeVariant(uint32(1)),
			},
			want: BatteryInfo{Present: true, Percent: 12, Charging: true},
		},
		{
			name: "desktop display device",
			props: map[string]dbus.Variant{
				"IsPresent": dbus.MakeVariant(false),
				"Type":      dbus.MakeVariant(uint32(0)),
			},
			want: BatteryInfo{},
		},
		{
			name: "ups is not a battery",
			props: map[string]dbus.Variant{
				"IsPresent":  dbus.MakeVariant(true),
				"Type":       dbus.MakeVariant(uint32(3)),
				"Percentage": dbus.MakeVariant(100.0),
			},
			want: BatteryInfo{},
		},
		{
			name:  "no properties",
			props: map[string]dbus.Variant{},
			want:  BatteryInfo{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, batteryFromUPower(tt.props))
		})
	}
}

func TestUPowerBattery_ConnectFailure(t *testing.T) {
	b := upowerBattery{connect: func(ctx context.Context) (*dbus.Conn, error) {
		return nil, stderrors.New("no such file or directory")
	}}

	_, err := b.Battery(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connect system bus")
}
