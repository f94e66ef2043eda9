//go:build linux

package readout

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

type linuxMemory struct{}

type memRaw struct {
	Total     uint64
	Available uint64
	SwapTotal uint64
	SwapFree  uint64
}

func (m *linuxMemory) read() (memRaw, error) {
	f, err := os.Open("/proc/meminfo")
	if err != nil {
		return memRaw{}, ErrMetricNotAvailable
	}
	defer f.Close()

	return parseMemInfo(f)
}

// parseMemInfo pulls the four fields we report out of /proc/meminfo.
// Values there are in KiB regardless of the printed unit.
func parseMemInfo(r io.Reader) (memRaw, error) {
	var raw memRaw
	targets := map[string]*uint64{
		"MemTotal":     &raw.Total,
		"MemAvailable": &raw.Available,
		"SwapTotal":    &raw.SwapTotal,
		"SwapFree":     &raw.SwapFree,
	}

	found := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() && found < len(targets) {
		key, rest, ok := strings.Cut(scanner.Text(), ":")
		if !ok {
			continue
		}
		dst, want := targets[key]
		if !want {
			continue
		}
		fields := strings.Fields(rest)
		if len(fields) == 0 {
			continue
		}
		kb, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			return memRaw{}, fmt.Errorf("parsing %s: %w", key, err)
		}
		*dst = kb * 1024
		found++
	}
	if err := scanner.Err(); err != nil {
		return memRaw{}, err
	}
	if raw.Total == 0 {
		return memRaw{}, fmt.Errorf("MemTotal missing from meminfo")
	}
	return raw, nil
}

func (m *linuxMemory) Total() (uint64, error) {
	raw, err := m.read()
	if err != nil {
		return 0, err
	}
	return raw.Total, nil
}

func (m *linuxMemory) Used() (uint64, error) {
	raw, err := m.read()
	if err != nil {
		return 0, err
	}
	return raw.Total - raw.Available, nil
}

func (m *linuxMemory) SwapTotal() (uint64, error) {
	raw, err := m.read()
	if err != nil {
		return 0, err
	}
	return raw.SwapTotal, nil
}

func (m *linuxMemory) SwapUsed() (uint64, error) {
	raw, err := m.read()
	if err != nil {
		return 0, err
	}
	return raw.SwapTotal - raw.SwapFree, nil
}
