//go:build windows

package pkgcount

import (
	"context"
	"os"
	"path/filepath"
)

func platformProbes() []probe {
	return []probe{
		{Scoop, countScoop},
		{Choco, countChoco},
		{Cargo, countCargo},
	}
}

// Scoop keeps one directory per installed app under ~\scoop\apps, plus an
// entry for scoop itself.
func countScoop(_ context.Context) (uint64, error) {
	root := os.Getenv("SCOOP")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return 0, ErrNotPresent
		}
		root = filepath.Join(home, "scoop")
	}
	return countDir(filepath.Join(root, "apps"), notNamed("scoop"))
}

// Chocolatey has no readable package database, but its list output ends in
// an "N packages installed." summary line.
func countChoco(ctx context.Context) (uint64, error) {
	return runCount(ctx, uintToken("packages installed"), "choco", "list")
}
