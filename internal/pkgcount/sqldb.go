package pkgcount

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"os"

	_ "modernc.org/sqlite"
)

// Package tables of the sqlite-backed databases we read. Fixed strings,
// never user input.
const (
	rpmSQLiteDB    = "/var/lib/rpm/rpmdb.sqlite"
	rpmSQLiteTable = "Installtid"

	freebsdPkgDB    = "/var/db/pkg/local.sqlite"
	freebsdPkgTable = "packages"
)

// countSQLite opens a package manager's sqlite database read-only and
// counts the rows of its package table. Opening immutable keeps concurrent
// probes (and the package manager itself) free of lock contention; calling
// the manager's own query tool instead would cost two orders of magnitude
// more wall time.
func countSQLite(ctx context.Context, path, table string) (uint64, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, ErrNotPresent
		}
		return 0, &ReadError{Path: path, Err: err}
	}

	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro&immutable=1")
	if err != nil {
		return 0, &ReadError{Path: path, Err: err}
	}
	defer db.Close()

	var n int64
	if err := db.QueryRowContext(ctx, `SELECT count(*) FROM `+table).Scan(&n); err != nil {
		return 0, &ReadError{Path: path, Err: err}
	}
	if n < 0 {
		return 0, nil
	}
	return uint64(n), nil
}
