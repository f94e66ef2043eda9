//go:build freebsd

package readout

import (
	"bufio"
	"bytes"
	"os/exec"
	"strconv"
	"strings"

	"github.com/tklauser/go-sysconf"
	"golang.org/x/sys/unix"
)

type freebsdMemory struct{}

func (m *freebsdMemory) Total() (uint64, error) {
	pages, err := sysconf.Sysconf(sysconf.SC_PHYS_PAGES)
	if err != nil || pages <= 0 {
		return 0, ErrMetricNotAvailable
	}
	pageSize, err := sysconf.Sysconf(sysconf.SC_PAGE_SIZE)
	if err != nil || pageSize <= 0 {
		return 0, ErrMetricNotAvailable
	}
	return uint64(pages) * uint64(pageSize), nil
}

// Used subtracts the free and inactive page pools, the set top reports as
// reclaimable.
func (m *freebsdMemory) Used() (uint64, error) {
	total, err := m.Total()
	if err != nil {
		return 0, err
	}

	pageSize, err := unix.SysctlUint32("vm.stats.vm.v_page_size")
	if err != nil {
		return 0, ErrMetricNotAvailable
	}
	free, err := unix.SysctlUint32("vm.stats.vm.v_free_count")
	if err != nil {
		return 0, ErrMetricNotAvailable
	}
	inactive, err := unix.SysctlUint32("vm.stats.vm.v_inactive_count")
	if err != nil {
		return 0, ErrMetricNotAvailable
	}

	avail := (uint64(free) + uint64(inactive)) * uint64(pageSize)
	if avail > total {
		return 0, nil
	}
	return total - avail, nil
}

// swapinfo -k prints one device per line plus a Total line when several
// devices exist; columns are device, blocks, used, avail, capacity.
func (m *freebsdMemory) swap() (total, used uint64, err error) {
	out, err := exec.Command("swapinfo", "-k").Output()
	if err != nil {
		return 0, 0, ErrMetricNotAvailable
	}
	return parseSwapinfo(out)
}

func parseSwapinfo(out []byte) (total, used uint64, err error) {
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "Device") || strings.HasPrefix(line, "Total") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}
		t, err1 := strconv.ParseUint(fields[1], 10, 64)
		u, err2 := strconv.ParseUint(fields[2], 10, 64)
		if err1 != nil || err2 != nil {
			continue
		}
		total += t * 1024
		used += u * 1024
	}
	return total, used, nil
}

func (m *freebsdMemory) SwapTotal() (uint64, error) {
	total, _, err := m.swap()
	return total, err
}

func (m *freebsdMemory) SwapUsed() (uint64, error) {
	_, used, err := m.swap()
	return used, err
}
