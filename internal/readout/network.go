package readout

import "net"

// netReadout serves every platform: interface addressing comes from the
// standard library's getifaddrs wrappers and needs no OS-specific code.
type netReadout struct{}

func (n *netReadout) pick(iface string) (*net.Interface, error) {
	if iface != "" {
		ifi, err := net.InterfaceByName(iface)
		if err != nil {
			return nil, ErrMetricNotAvailable
		}
		return ifi, nil
	}

	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, ErrMetricNotAvailable
	}
	for i := range ifaces {
		ifi := &ifaces[i]
		if ifi.Flags&net.FlagLoopback != 0 || ifi.Flags&net.FlagUp == 0 {
			continue
		}
		return ifi, nil
	}
	return nil, ErrMetricNotAvailable
}

func (n *netReadout) LogicalAddress(iface string) (string, error) {
	ifi, err := n.pick(iface)
	if err != nil {
		return "", err
	}
	addrs, err := ifi.Addrs()
	if err != nil {
		return "", ErrMetricNotAvailable
	}
	for _, addr := range addrs {
		ipnet, ok := addr.(*net.IPNet)
		if !ok || ipnet.IP.To4() == nil {
			continue
		}
		return ipnet.IP.String(), nil
	}
	return "", ErrMetricNotAvailable
}

func (n *netReadout) PhysicalAddress(iface string) (string, error) {
	ifi, err := n.pick(iface)
	if err != nil {
		return "", err
	}
	if len(ifi.HardwareAddr) == 0 {
		return "", ErrMetricNotAvailable
	}
	return ifi.HardwareAddr.String(), nil
}

// Traffic counters need OS-specific sources; platforms with one embed
// netReadout and override these.
func (n *netReadout) RxBytes(string) (uint64, error) { return 0, ErrNotImplemented }
func (n *netReadout) TxBytes(string) (uint64, error) { return 0, ErrNotImplemented }
