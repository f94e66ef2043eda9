//go:build freebsd

package pkgcount

import "context"

func platformProbes() []probe {
	return []probe{
		{Pkg, countPkg},
		{Pkgsrc, countPkgsrc},
		{Cargo, countCargo},
	}
}

// pkg's local database is a sqlite file; one row per installed package.
func countPkg(ctx context.Context) (uint64, error) {
	return countSQLite(ctx, freebsdPkgDB, freebsdPkgTable)
}
