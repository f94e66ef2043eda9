//go:build darwin

package pkgcount

import (
	"context"
	"errors"
	"path/filepath"
)

func platformProbes() []probe {
	return []probe{
		{Homebrew, countHomebrew},
		{MacPorts, countMacPorts},
		{Cargo, countCargo},
		{Nix, countNix},
	}
}

// Homebrew roots: /usr/local on Intel hardware, /opt/homebrew on Apple
// Silicon. Formulae live under Cellar, casks under Caskroom; dotfile
// markers are skipped. Listing via `brew list` would take seconds.
func countHomebrew(_ context.Context) (uint64, error) {
	return countHomebrewAt("/usr/local", "/opt/homebrew")
}

func countHomebrewAt(roots ...string) (uint64, error) {
	var total uint64
	found := false
	for _, root := range roots {
		for _, sub := range []string{"Cellar", "Caskroom"} {
			n, err := countDir(filepath.Join(root, sub), visible)
			if errors.Is(err, ErrNotPresent) {
				continue
			}
			if err != nil {
				return 0, err
			}
			found = true
			total += n
		}
	}
	if !found {
		return 0, ErrNotPresent
	}
	return total, nil
}

// port -q installed prints one line per installed port, no header.
func countMacPorts(ctx context.Context) (uint64, error) {
	return runCount(ctx, lineCount(0), "port", "-q", "installed")
}
