//go:build darwin

package readout

import "golang.org/x/sys/unix"

type darwinProduct struct{}

func (p *darwinProduct) Vendor() (string, error) { return "Apple", nil }

func (p *darwinProduct) Name() (string, error) {
	model, err := unix.Sysctl("hw.model")
	if err != nil {
		return "", ErrMetricNotAvailable
	}
	return model, nil
}

func (p *darwinProduct) Version() (string, error) {
	return "", ErrMetricNotAvailable
}
