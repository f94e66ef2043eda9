//go:build !rpmbdb

package pkgcount

import "context"

// Reading the legacy BerkeleyDB rpm database needs the go-rpmdb binding,
// which is only compiled in under the rpmbdb build tag. Hosts that still
// carry /var/lib/rpm/Packages are rare enough that the default build skips
// the dependency; callers must branch on legacyRPMSupported.
const legacyRPMSupported = false

func countLegacyRPM(_ context.Context, _ string) (uint64, error) {
	return 0, ErrNotPresent
}
