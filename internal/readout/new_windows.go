//go:build windows

package readout

import (
	"go.uber.org/zap"

	"github.com/probekit/sysprobe/internal/pkgcount"
)

// New returns the Windows readout set.
func New(log *zap.Logger) *Readouts {
	return &Readouts{
		General: &windowsGeneral{counter: pkgcount.New(pkgcount.WithLogger(log))},
		Memory:  &windowsMemory{},
		Battery: &windowsBattery{},
		Kernel:  &windowsKernel{},
		Product: &windowsProduct{},
		Network: &netReadout{},
	}
}
