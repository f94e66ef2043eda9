//go:build linux

package readout

import (
	"go.uber.org/zap"

	"github.com/probekit/sysprobe/internal/pkgcount"
)

// New returns the Linux readout set.
func New(log *zap.Logger) *Readouts {
	return &Readouts{
		General: &linuxGeneral{counter: pkgcount.New(pkgcount.WithLogger(log))},
		Memory:  &linuxMemory{},
		Battery: &linuxBattery{},
		Kernel:  &unameKernel{},
		Product: &linuxProduct{},
		Network: &linuxNetwork{},
	}
}
