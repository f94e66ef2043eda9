//go:build linux

package readout

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type linuxBattery struct{}

const powerSupplyDir = "/sys/class/power_supply"

// firstBattery locates the first BAT* entry under /sys/class/power_supply.
func (b *linuxBattery) firstBattery() (string, error) {
	entries, err := os.ReadDir(powerSupplyDir)
	if err != nil {
		return "", ErrMetricNotAvailable
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "BAT") {
			return filepath.Join(powerSupplyDir, e.Name()), nil
		}
	}
	return "", ErrMetricNotAvailable
}

func (b *linuxBattery) Percentage() (uint8, error) {
	bat, err := b.firstBattery()
	if err != nil {
		return 0, err
	}
	data, err := os.ReadFile(filepath.Join(bat, "capacity"))
	if err != nil {
		return 0, ErrMetricNotAvailable
	}
	pct, err := strconv.ParseUint(strings.TrimSpace(string(data)), 10, 8)
	if err != nil || pct > 100 {
		return 0, ErrMetricNotAvailable
	}
	return uint8(pct), nil
}

func (b *linuxBattery) Status() (BatteryState, error) {
	bat, err := b.firstBattery()
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(filepath.Join(bat, "status"))
	if err != nil {
		return "", ErrMetricNotAvailable
	}
	switch strings.TrimSpace(string(data)) {
	case "Charging", "Full":
		return Charging, nil
	default:
		return Discharging, nil
	}
}
