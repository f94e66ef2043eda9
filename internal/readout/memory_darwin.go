//go:build darwin

package readout

import (
	"bufio"
	"os/exec"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

type darwinMemory struct{}

func (m *darwinMemory) Total() (uint64, error) {
	total, err := unix.SysctlUint64("hw.memsize")
	if err != nil {
		return 0, ErrMetricNotAvailable
	}
	return total, nil
}

// Used sums the active, wired and compressed page counts from vm_stat.
// Mach's host_statistics64 is not reachable without cgo, and vm_stat is a
// thin wrapper over the same call.
func (m *darwinMemory) Used() (uint64, error) {
	out, err := exec.Command("vm_stat").Output()
	if err != nil {
		return 0, ErrMetricNotAvailable
	}
	pages, pageSize := parseVMStat(string(out))
	used := pages["Pages active"] + pages["Pages wired down"] + pages["Pages occupied by compressor"]
	if pageSize == 0 || used == 0 {
		return 0, ErrMetricNotAvailable
	}
	return used * pageSize, nil
}

// parseVMStat reads vm_stat's "Pages active:  123456." lines plus the page
// size from its header.
func parseVMStat(out string) (pages map[string]uint64, pageSize uint64) {
	pages = make(map[string]uint64)
	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		line := scanner.Text()

		if strings.HasPrefix(line, "Mach Virtual Memory Statistics") {
			// "... (page size of 16384 bytes)"
			fields := strings.Fields(line)
			for i, f := range fields {
				if f == "of" && i+1 < len(fields) {
					pageSize, _ = strconv.ParseUint(fields[i+1], 10, 64)
				}
			}
			continue
		}

		key, rest, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		v := strings.TrimSuffix(strings.TrimSpace(rest), ".")
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			continue
		}
		pages[key] = n
	}
	return pages, pageSize
}

func (m *darwinMemory) swap() (total, used uint64, err error) {
	// "vm.swapusage: total = 2048.00M used = 1311.50M free = 736.50M"
	out, err := exec.Command("sysctl", "-n", "vm.swapusage").Output()
	if err != nil {
		return 0, 0, ErrMetricNotAvailable
	}
	fields := strings.Fields(string(out))
	for i, f := range fields {
		if i+2 >= len(fields) || fields[i+1] != "=" {
			continue
		}
		v := parseSwapSize(fields[i+2])
		switch f {
		case "total":
			total = v
		case "used":
			used = v
		}
	}
	return total, used, nil
}

// parseSwapSize converts sysctl's "1311.50M" notation to bytes.
func parseSwapSize(s string) uint64 {
	mult := uint64(1)
	switch {
	case strings.HasSuffix(s, "K"):
		mult = 1 << 10
		s = strings.TrimSuffix(s, "K")
	case strings.HasSuffix(s, "M"):
		mult = 1 << 20
		s = strings.TrimSuffix(s, "M")
	case strings.HasSuffix(s, "G"):
		mult = 1 << 30
		s = strings.TrimSuffix(s, "G")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return uint64(f * float64(mult))
}

func (m *darwinMemory) SwapTotal() (uint64, error) {
	total, _, err := m.swap()
	return total, err
}

func (m *darwinMemory) SwapUsed() (uint64, error) {
	_, used, err := m.swap()
	return used, err
}
