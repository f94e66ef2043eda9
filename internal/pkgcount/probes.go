package pkgcount

import (
	"context"
	"errors"
	"os"
	"path/filepath"
)

// countCargo counts the binaries cargo has installed under $CARGO_HOME/bin,
// falling back to ~/.cargo/bin. Only explicitly installed crates place a
// binary there, so this counts top-level installs, which is the answer
// cargo users expect.
func countCargo(_ context.Context) (uint64, error) {
	if cargoHome := os.Getenv("CARGO_HOME"); cargoHome != "" {
		return countDir(filepath.Join(cargoHome, "bin"), nil)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return 0, ErrNotPresent
	}
	return countDir(filepath.Join(home, ".cargo", "bin"), nil)
}

// countNix counts the distinct store paths reachable from the system
// profile and the user profile. Nix keeps no stable readable count on
// disk, so this is the one probe that always goes through nix-store.
func countNix(ctx context.Context) (uint64, error) {
	if _, err := os.Stat("/nix/store"); err != nil {
		return 0, ErrNotPresent
	}

	profiles := []string{"/run/current-system/sw"}
	if home, err := os.UserHomeDir(); err == nil {
		profiles = append(profiles, filepath.Join(home, ".nix-profile"))
	}

	seen := make(map[string]struct{})
	var lastErr error
	queried := false
	for _, profile := range profiles {
		if _, err := os.Stat(profile); err != nil {
			continue
		}
		paths, err := runLines(ctx, "nix-store", "--query", "--requisites", profile)
		if err != nil {
			lastErr = err
			continue
		}
		queried = true
		for _, p := range paths {
			seen[p] = struct{}{}
		}
	}

	if !queried {
		if lastErr != nil {
			return 0, lastErr
		}
		return 0, ErrNotPresent
	}
	return uint64(len(seen)), nil
}

// countPkgsrc counts the package directories in pkg_install's database,
// skipping the pkgdb file that sits beside them.
func countPkgsrc(_ context.Context) (uint64, error) {
	n, err := countDir("/usr/pkg/pkgdb", nil)
	if err != nil || n == 0 {
		return 0, err
	}
	return n - 1, nil
}

// countRPM prefers the structured databases over shelling out to rpm,
// which takes around half a second against the sqlite read's millisecond.
// Database formats are tried newest first; the legacy BerkeleyDB format is
// only readable when the rpmbdb build tag compiled the binding in.
func countRPM(ctx context.Context) (uint64, error) {
	n, err := countSQLite(ctx, rpmSQLiteDB, rpmSQLiteTable)
	if !errors.Is(err, ErrNotPresent) {
		return n, err
	}

	n, err = countNDB("/var/lib/rpm/Packages.db")
	if !errors.Is(err, ErrNotPresent) {
		return n, err
	}

	if legacyRPMSupported {
		return countLegacyRPM(ctx, "/var/lib/rpm/Packages")
	}
	return 0, ErrNotPresent
}
