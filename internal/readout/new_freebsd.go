//go:build freebsd

package readout

import (
	"go.uber.org/zap"

	"github.com/probekit/sysprobe/internal/pkgcount"
)

// New returns the FreeBSD readout set.
func New(log *zap.Logger) *Readouts {
	return &Readouts{
		General: &freebsdGeneral{counter: pkgcount.New(pkgcount.WithLogger(log))},
		Memory:  &freebsdMemory{},
		Battery: &freebsdBattery{},
		Kernel:  &unameKernel{},
		Product: &freebsdProduct{},
		Network: &netReadout{},
	}
}
