//go:build darwin

package readout

import (
	"go.uber.org/zap"

	"github.com/probekit/sysprobe/internal/pkgcount"
)

// New returns the macOS readout set.
func New(log *zap.Logger) *Readouts {
	return &Readouts{
		General: &darwinGeneral{counter: pkgcount.New(pkgcount.WithLogger(log))},
		Memory:  &darwinMemory{},
		Battery: &darwinBattery{},
		Kernel:  &unameKernel{},
		Product: &darwinProduct{},
		Network: &netReadout{},
	}
}
