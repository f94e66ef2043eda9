//go:build linux

package readout

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// linuxNetwork adds the /sys/class/net traffic counters on top of the
// shared addressing readout.
type linuxNetwork struct {
	netReadout

	// statsDir is overridden in tests.
	statsDir string
}

func (n *linuxNetwork) RxBytes(iface string) (uint64, error) {
	return n.readStat(iface, "rx_bytes")
}

func (n *linuxNetwork) TxBytes(iface string) (uint64, error) {
	return n.readStat(iface, "tx_bytes")
}

func (n *linuxNetwork) readStat(iface, stat string) (uint64, error) {
	ifi, err := n.pick(iface)
	if err != nil {
		return 0, err
	}
	dir := n.statsDir
	if dir == "" {
		dir = "/sys/class/net"
	}
	data, err := os.ReadFile(filepath.Join(dir, ifi.Name, "statistics", stat))
	if err != nil {
		return 0, ErrMetricNotAvailable
	}
	v, err := strconv.ParseUint(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return 0, ErrMetricNotAvailable
	}
	return v, nil
}
