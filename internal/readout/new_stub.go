//go:build !linux && !darwin && !windows && !freebsd

package readout

import (
	"context"
	"os"
	"os/user"
	"time"

	"go.uber.org/zap"

	"github.com/probekit/sysprobe/internal/pkgcount"
)

// New returns a minimal readout set for platforms without a dedicated
// backend. Identity and package counting still work; everything else is
// not implemented.
func New(log *zap.Logger) *Readouts {
	return &Readouts{
		General: &stubGeneral{counter: pkgcount.New(pkgcount.WithLogger(log))},
		Memory:  stubMemory{},
		Battery: stubBattery{},
		Kernel:  stubKernel{},
		Product: stubProduct{},
		Network: &netReadout{},
	}
}

type stubGeneral struct {
	counter *pkgcount.Counter
}

func (g *stubGeneral) Username() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", ErrMetricNotAvailable
	}
	return u.Username, nil
}

func (g *stubGeneral) Hostname() (string, error) {
	h, err := os.Hostname()
	if err != nil {
		return "", ErrMetricNotAvailable
	}
	return h, nil
}

func (g *stubGeneral) Distribution() (string, error)       { return "", ErrNotImplemented }
func (g *stubGeneral) DesktopEnvironment() (string, error) { return "", ErrNotImplemented }
func (g *stubGeneral) WindowManager() (string, error)      { return "", ErrNotImplemented }
func (g *stubGeneral) Terminal() (string, error)           { return "", ErrNotImplemented }
func (g *stubGeneral) Shell() (string, error)              { return "", ErrNotImplemented }
func (g *stubGeneral) CPUModel() (string, error)           { return "", ErrNotImplemented }
func (g *stubGeneral) CPUCores() (int, error)              { return 0, ErrNotImplemented }
func (g *stubGeneral) Uptime() (time.Duration, error)      { return 0, ErrNotImplemented }

func (g *stubGeneral) PackageCount(ctx context.Context) (uint64, error) {
	return g.counter.Total(ctx)
}

type stubMemory struct{}

func (stubMemory) Total() (uint64, error)     { return 0, ErrNotImplemented }
func (stubMemory) Used() (uint64, error)      { return 0, ErrNotImplemented }
func (stubMemory) SwapTotal() (uint64, error) { return 0, ErrNotImplemented }
func (stubMemory) SwapUsed() (uint64, error)  { return 0, ErrNotImplemented }

type stubBattery struct{}

func (stubBattery) Percentage() (uint8, error)    { return 0, ErrNotImplemented }
func (stubBattery) Status() (BatteryState, error) { return "", ErrNotImplemented }

type stubKernel struct{}

func (stubKernel) OSType() (string, error)    { return "", ErrNotImplemented }
func (stubKernel) OSRelease() (string, error) { return "", ErrNotImplemented }

type stubProduct struct{}

func (stubProduct) Vendor() (string, error)  { return "", ErrNotImplemented }
func (stubProduct) Name() (string, error)    { return "", ErrNotImplemented }
func (stubProduct) Version() (string, error) { return "", ErrNotImplemented }
