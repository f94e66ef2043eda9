// Package readout exposes host metrics through one capability interface
// per metric family. Exactly one concrete set of implementations is
// compiled in per target platform; callers never branch on GOOS.
package readout

import (
	"context"
	"errors"
	"time"
)

// ErrMetricNotAvailable means the metric exists but this host cannot
// provide it (a desktop has no battery). Callers render it as unknown.
var ErrMetricNotAvailable = errors.New("metric is not available on this system")

// ErrNotImplemented means the platform backend does not implement the
// metric at all.
var ErrNotImplemented = errors.New("metric is not implemented on this platform")

// BatteryState reports whether the battery is charging.
type BatteryState string

const (
	Charging    BatteryState = "Charging"
	Discharging BatteryState = "Discharging"
)

// General covers identity and session metrics, including the installed
// package count. PackageCount is the only method backed by the pkgcount
// subsystem; its error may be pkgcount.ErrAllProbesFailed, which callers
// must show as unknown rather than zero.
type General interface {
	Username() (string, error)
	Hostname() (string, error)
	Distribution() (string, error)
	DesktopEnvironment() (string, error)
	WindowManager() (string, error)
	Terminal() (string, error)
	Shell() (string, error)
	CPUModel() (string, error)
	CPUCores() (int, error)
	Uptime() (time.Duration, error)
	PackageCount(ctx context.Context) (uint64, error)
}

// Memory reports physical and swap usage in bytes.
type Memory interface {
	Total() (uint64, error)
	Used() (uint64, error)
	SwapTotal() (uint64, error)
	SwapUsed() (uint64, error)
}

// Battery reports charge level and state.
type Battery interface {
	Percentage() (uint8, error)
	Status() (BatteryState, error)
}

// Kernel reports the running kernel's name and release.
type Kernel interface {
	OSType() (string, error)
	OSRelease() (string, error)
}

// Product reports hardware vendor and model.
type Product interface {
	Vendor() (string, error)
	Name() (string, error)
	Version() (string, error)
}

// Network reports addressing and traffic for one interface, or for the
// first configured interface when iface is empty.
type Network interface {
	LogicalAddress(iface string) (string, error)
	PhysicalAddress(iface string) (string, error)
	RxBytes(iface string) (uint64, error)
	TxBytes(iface string) (uint64, error)
}

// Readouts bundles the platform's concrete capability implementations.
type Readouts struct {
	General General
	Memory  Memory
	Battery Battery
	Kernel  Kernel
	Product Product
	Network Network
}
