//go:build !linux && !darwin && !windows && !freebsd

package pkgcount

// Platforms without a dedicated probe set still get the managers that
// are not tied to one OS.
func platformProbes() []probe {
	return []probe{
		{Pkgsrc, countPkgsrc},
		{Cargo, countCargo},
		{Nix, countNix},
	}
}
