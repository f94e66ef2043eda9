//go:build freebsd

package readout

import "golang.org/x/sys/unix"

type freebsdBattery struct{}

func (b *freebsdBattery) Percentage() (uint8, error) {
	life, err := unix.SysctlUint32("hw.acpi.battery.life")
	if err != nil || life > 100 {
		return 0, ErrMetricNotAvailable
	}
	return uint8(life), nil
}

func (b *freebsdBattery) Status() (BatteryState, error) {
	// hw.acpi.battery.state: bit 0 discharging, bit 1 charging.
	state, err := unix.SysctlUint32("hw.acpi.battery.state")
	if err != nil {
		return "", ErrMetricNotAvailable
	}
	if state&1 != 0 {
		return Discharging, nil
	}
	return Charging, nil
}
