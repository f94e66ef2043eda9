//go:build linux

package pkgcount

import (
	"context"
	"errors"
	"os"
	"path/filepath"
)

// platformProbes returns one probe per package manager a Linux host can
// carry. Each manager is owned by exactly one probe, so a manager that is
// detectable both by database path and by binary on $PATH is still counted
// once.
func platformProbes() []probe {
	return []probe{
		{Pacman, countPacman},
		{Dpkg, countDpkg},
		{RPM, countRPM},
		{Portage, countPortage},
		{Xbps, countXbps},
		{Eopkg, countEopkg},
		{Apk, countApk},
		{Flatpak, countFlatpak},
		{Snap, countSnap},
		{Homebrew, countLinuxbrew},
		{Cargo, countCargo},
		{Nix, countNix},
	}
}

// pacman registers every installed package as a directory under local/.
func countPacman(_ context.Context) (uint64, error) {
	return countDirEntries("/var/lib/pacman/local")
}

func countDirEntries(dir string) (uint64, error) {
	return countDir(dir, nil)
}

// dpkg writes one .list file per installed package; counting those is much
// cheaper than parsing /var/lib/dpkg/status.
func countDpkg(_ context.Context) (uint64, error) {
	return countDpkgAt("/var/lib/dpkg/info")
}

func countDpkgAt(dir string) (uint64, error) {
	return countDir(dir, withExt(".list"))
}

// portage keeps one directory per installed package in a category/package
// tree.
func countPortage(_ context.Context) (uint64, error) {
	return countDirDepth2("/var/db/pkg")
}

func countXbps(ctx context.Context) (uint64, error) {
	return runCount(ctx, lineCount(0), "xbps-query", "-l")
}

func countEopkg(_ context.Context) (uint64, error) {
	return countDirEntries("/var/lib/eopkg/package")
}

// apk info lists all installed packages; apk has no cheap explicit-only
// query, so the count includes dependencies.
func countApk(ctx context.Context) (uint64, error) {
	return runCount(ctx, lineCount(0), "apk", "info")
}

// countFlatpak sums the system-wide and per-user installation scopes. Both
// scopes belong to this single probe; counting the binary's own listing as
// well would double every app.
func countFlatpak(_ context.Context) (uint64, error) {
	dirs := []string{"/var/lib/flatpak/app"}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".local/share/flatpak/app"))
	}
	return countFlatpakScopes(dirs)
}

func countFlatpakScopes(dirs []string) (uint64, error) {
	var total uint64
	found := false
	for _, dir := range dirs {
		n, err := countDir(dir, nil)
		if errors.Is(err, ErrNotPresent) {
			continue
		}
		if err != nil {
			return 0, err
		}
		found = true
		total += n
	}
	if !found {
		return 0, ErrNotPresent
	}
	return total, nil
}

// snapd mirrors every installed revision as a .snap file; when the state
// directory is gone but the snap client exists, fall back to `snap list`,
// which prints one header line.
func countSnap(ctx context.Context) (uint64, error) {
	n, err := countDir("/var/lib/snapd/snaps", withExt(".snap"))
	if !errors.Is(err, ErrNotPresent) {
		return n, err
	}
	return runCount(ctx, lineCount(1), "snap", "list")
}

// Homebrew on Linux lives in ~/.linuxbrew or /home/linuxbrew/.linuxbrew;
// Cellar holds one visible directory per installed formula plus a .keepme
// marker.
func countLinuxbrew(_ context.Context) (uint64, error) {
	var base string
	if home, err := os.UserHomeDir(); err == nil {
		base = filepath.Join(home, ".linuxbrew")
	}
	if base == "" || !isDir(base) {
		base = "/home/linuxbrew/.linuxbrew"
	}
	return countDir(filepath.Join(base, "Cellar"), visible)
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
