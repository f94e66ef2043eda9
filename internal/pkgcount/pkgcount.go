// Package pkgcount detects the package managers installed on the host and
// produces a deduplicated total of installed packages. Each manager is owned
// by exactly one probe; probes prefer reading the manager's on-disk database
// over spawning its query tool.
package pkgcount

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Manager identifies one supported package manager. The set is fixed at
// compile time; values double as display labels.
type Manager string

const (
	Dpkg     Manager = "dpkg"
	Pacman   Manager = "pacman"
	RPM      Manager = "rpm"
	Portage  Manager = "portage"
	Xbps     Manager = "xbps"
	Eopkg    Manager = "eopkg"
	Apk      Manager = "apk"
	Flatpak  Manager = "flatpak"
	Snap     Manager = "snap"
	Homebrew Manager = "Homebrew"
	MacPorts Manager = "MacPorts"
	Cargo    Manager = "cargo"
	Nix      Manager = "nix"
	Scoop    Manager = "Scoop"
	Choco    Manager = "Chocolatey"
	Pkg      Manager = "pkg"
	Pkgsrc   Manager = "pkgsrc"
)

// ErrNotPresent means a package manager is not installed on this host.
// It is not a failure: the manager simply contributes nothing to the total.
var ErrNotPresent = errors.New("package manager not present")

// ErrAllProbesFailed is returned when every probe on the platform failed
// outright. A host with zero packages and a broken detection subsystem are
// different things; callers must not render this as a count of 0.
var ErrAllProbesFailed = errors.New("all package probes failed")

// ReadError wraps a failure to parse a package database that does exist.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading package database %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// ExecError wraps a failure to run a package manager's query command.
type ExecError struct {
	Cmd string
	Err error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("running %s: %v", e.Cmd, e.Err)
}

func (e *ExecError) Unwrap() error { return e.Err }

// Result is the outcome of a single probe invocation.
type Result struct {
	Manager Manager
	Count   uint64
	Err     error
}

// Present reports whether the probe found the manager and counted it.
func (r Result) Present() bool { return r.Err == nil }

// Failed reports whether the probe hit a real error, as opposed to the
// manager simply being absent.
func (r Result) Failed() bool {
	return r.Err != nil && !errors.Is(r.Err, ErrNotPresent)
}

// Collection maps each detected manager to its package count. It is built
// once per Count call and never cached.
type Collection map[Manager]uint64

// Total returns the sum over all detected managers.
func (c Collection) Total() uint64 {
	var total uint64
	for _, n := range c {
		total += n
	}
	return total
}

// Managers returns the detected managers in stable label order.
func (c Collection) Managers() []Manager {
	ms := maps.Keys(c)
	slices.Sort(ms)
	return ms
}

// A probe detects and counts packages for one manager. count returns
// ErrNotPresent (possibly wrapped) when the manager is absent.
type probe struct {
	manager Manager
	count   func(ctx context.Context) (uint64, error)
}

// Counter runs every probe applicable to the current platform.
type Counter struct {
	log    *zap.Logger
	probes []probe
}

// Option configures a Counter.
type Option func(*Counter)

// WithLogger sets the logger used for per-probe diagnostics.
func WithLogger(log *zap.Logger) Option {
	return func(c *Counter) {
		if log != nil {
			c.log = log
		}
	}
}

// New returns a Counter wired with the probe set for the build target.
func New(opts ...Option) *Counter {
	c := &Counter{
		log:    zap.NewNop(),
		probes: platformProbes(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Count runs all probes, concurrently, and collects per-manager counts.
// Individual probe failures are logged and skipped; only the case where
// every probe failed is escalated, as ErrAllProbesFailed.
func (c *Counter) Count(ctx context.Context) (Collection, error) {
	results := make([]Result, len(c.probes))

	var wg sync.WaitGroup
	for i, p := range c.probes {
		wg.Add(1)
		go func(i int, p probe) {
			defer wg.Done()
			n, err := p.count(ctx)
			results[i] = Result{Manager: p.manager, Count: n, Err: err}
		}(i, p)
	}
	wg.Wait()

	coll := make(Collection)
	failed := 0
	for _, r := range results {
		switch {
		case r.Present():
			coll[r.Manager] = r.Count
		case r.Failed():
			failed++
			c.log.Warn("package probe failed",
				zap.String("manager", string(r.Manager)),
				zap.Error(r.Err))
		}
	}

	if len(results) > 0 && failed == len(results) {
		return nil, ErrAllProbesFailed
	}
	return coll, nil
}

// Total runs Count and returns the summed package count.
func (c *Counter) Total(ctx context.Context) (uint64, error) {
	coll, err := c.Count(ctx)
	if err != nil {
		return 0, err
	}
	return coll.Total(), nil
}
