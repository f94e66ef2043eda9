//go:build windows

package readout

import "github.com/yusufpapurcu/wmi"

type windowsKernel struct{}

func (k *windowsKernel) OSType() (string, error) {
	return "Windows_NT", nil
}

func (k *windowsKernel) OSRelease() (string, error) {
	var oss []Win32_OperatingSystem
	if err := wmi.Query(wmi.CreateQuery(&oss, ""), &oss); err != nil || len(oss) == 0 {
		return "", ErrMetricNotAvailable
	}
	return oss[0].Version, nil
}
