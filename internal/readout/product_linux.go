//go:build linux

package readout

import (
	"os"
	"path/filepath"
	"strings"
)

// linuxProduct reads the DMI identity exported under /sys/class/dmi/id.
type linuxProduct struct{}

const dmiDir = "/sys/class/dmi/id"

func dmiField(name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dmiDir, name))
	if err != nil {
		return "", ErrMetricNotAvailable
	}
	v := strings.TrimSpace(string(data))
	if v == "" {
		return "", ErrMetricNotAvailable
	}
	return v, nil
}

func (p *linuxProduct) Vendor() (string, error)  { return dmiField("sys_vendor") }
func (p *linuxProduct) Name() (string, error)    { return dmiField("product_name") }
func (p *linuxProduct) Version() (string, error) { return dmiField("product_version") }
