//go:build windows

package readout

import "strings"

type windowsProduct struct{}

func (p *windowsProduct) Vendor() (string, error) {
	cs, _, err := querySystemInfo()
	if err != nil || len(cs) == 0 {
		return "", ErrMetricNotAvailable
	}
	return strings.TrimSpace(cs[0].Manufacturer), nil
}

func (p *windowsProduct) Name() (string, error) {
	cs, _, err := querySystemInfo()
	if err != nil || len(cs) == 0 {
		return "", ErrMetricNotAvailable
	}
	return strings.TrimSpace(cs[0].Model), nil
}

func (p *windowsProduct) Version() (string, error) {
	return "", ErrMetricNotAvailable
}
