//go:build linux || darwin || freebsd

package readout

import "golang.org/x/sys/unix"

// unameKernel reads kernel identity via uname(2) on every Unix target.
type unameKernel struct{}

func (k *unameKernel) OSType() (string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", ErrMetricNotAvailable
	}
	return charsToString(uts.Sysname[:]), nil
}

func (k *unameKernel) OSRelease() (string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", ErrMetricNotAvailable
	}
	return charsToString(uts.Release[:]), nil
}

// charsToString converts a NUL-terminated C char buffer to a Go string.
// It accepts both signed and unsigned byte representations.
func charsToString[T ~int8 | ~uint8](ca []T) string {
	buf := make([]byte, 0, len(ca))
	for _, c := range ca {
		if c == 0 {
			break
		}
		buf = append(buf, byte(c))
	}
	return string(buf)
}
