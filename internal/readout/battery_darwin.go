//go:build darwin

package readout

import (
	"os/exec"
	"strconv"
	"strings"
)

type darwinBattery struct{}

// pmset -g batt prints, for machines with a battery:
//
//	Now drawing from 'Battery Power'
//	 -InternalBattery-0 (id=1234)	95%; discharging; 4:03 remaining ...
func (b *darwinBattery) read() (pct uint8, state BatteryState, err error) {
	out, err := exec.Command("pmset", "-g", "batt").Output()
	if err != nil {
		return 0, "", ErrMetricNotAvailable
	}
	return parsePmset(string(out))
}

func parsePmset(out string) (uint8, BatteryState, error) {
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "InternalBattery") {
			continue
		}
		fields := strings.Split(line, ";")
		if len(fields) < 2 {
			break
		}

		pctField := fields[0]
		idx := strings.LastIndex(pctField, "%")
		if idx < 0 {
			break
		}
		start := strings.LastIndexFunc(pctField[:idx], func(r rune) bool {
			return r < '0' || r > '9'
		})
		n, err := strconv.ParseUint(pctField[start+1:idx], 10, 8)
		if err != nil || n > 100 {
			break
		}

		state := Discharging
		if strings.Contains(fields[1], "charging") && !strings.Contains(fields[1], "discharging") {
			state = Charging
		} else if strings.Contains(fields[1], "charged") {
			state = Charging
		}
		return uint8(n), state, nil
	}
	return 0, "", ErrMetricNotAvailable
}

func (b *darwinBattery) Percentage() (uint8, error) {
	pct, _, err := b.read()
	return pct, err
}

func (b *darwinBattery) Status() (BatteryState, error) {
	_, state, err := b.read()
	return state, err
}
