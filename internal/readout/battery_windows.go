//go:build windows

package readout

import "github.com/yusufpapurcu/wmi"

type windowsBattery struct{}

func (b *windowsBattery) query() (Win32_Battery, error) {
	var batteries []Win32_Battery
	if err := wmi.Query(wmi.CreateQuery(&batteries, ""), &batteries); err != nil || len(batteries) == 0 {
		return Win32_Battery{}, ErrMetricNotAvailable
	}
	return batteries[0], nil
}

func (b *windowsBattery) Percentage() (uint8, error) {
	bat, err := b.query()
	if err != nil {
		return 0, err
	}
	if bat.EstimatedChargeRemaining > 100 {
		return 100, nil
	}
	return uint8(bat.EstimatedChargeRemaining), nil
}

func (b *windowsBattery) Status() (BatteryState, error) {
	bat, err := b.query()
	if err != nil {
		return "", err
	}
	// BatteryStatus 2 is "on AC", 6-9 are the charging states.
	switch bat.BatteryStatus {
	case 2, 6, 7, 8, 9:
		return Charging, nil
	default:
		return Discharging, nil
	}
}
