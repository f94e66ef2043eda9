//go:build freebsd

package readout

import (
	"os/exec"
	"strings"
)

// freebsdProduct reads the SMBIOS identity the loader exports via kenv.
type freebsdProduct struct{}

func kenvField(name string) (string, error) {
	out, err := exec.Command("kenv", "-q", name).Output()
	if err != nil {
		return "", ErrMetricNotAvailable
	}
	v := strings.TrimSpace(string(out))
	if v == "" {
		return "", ErrMetricNotAvailable
	}
	return v, nil
}

func (p *freebsdProduct) Vendor() (string, error)  { return kenvField("smbios.system.maker") }
func (p *freebsdProduct) Name() (string, error)    { return kenvField("smbios.system.product") }
func (p *freebsdProduct) Version() (string, error) { return kenvField("smbios.system.version") }
