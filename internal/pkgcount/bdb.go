//go:build rpmbdb

package pkgcount

import (
	"context"
	"errors"
	"io/fs"
	"os"

	rpmdb "github.com/knqyf263/go-rpmdb/pkg"
)

const legacyRPMSupported = true

// countLegacyRPM counts packages in the pre-ndb BerkeleyDB database at
// /var/lib/rpm/Packages via the go-rpmdb binding.
func countLegacyRPM(_ context.Context, path string) (uint64, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, ErrNotPresent
		}
		return 0, &ReadError{Path: path, Err: err}
	}

	db, err := rpmdb.Open(path)
	if err != nil {
		return 0, &ReadError{Path: path, Err: err}
	}
	defer db.Close()

	pkgs, err := db.ListPackages()
	if err != nil {
		return 0, &ReadError{Path: path, Err: err}
	}
	return uint64(len(pkgs)), nil
}
