package pkgcount

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixed(n uint64) func(context.Context) (uint64, error) {
	return func(context.Context) (uint64, error) { return n, nil }
}

func absent(context.Context) (uint64, error) {
	return 0, ErrNotPresent
}

func broken(context.Context) (uint64, error) {
	return 0, &ReadError{Path: "/nonexistent/db", Err: errors.New("truncated")}
}

func testCounter(probes ...probe) *Counter {
	c := New()
	c.probes = probes
	return c
}

func TestCountSumsPresentManagers(t *testing.T) {
	c := testCounter(
		probe{Dpkg, fixed(1200)},
		probe{Flatpak, fixed(14)},
		probe{Cargo, absent},
		probe{Snap, broken},
	)

	coll, err := c.Count(context.Background())
	require.NoError(t, err)

	assert.Equal(t, uint64(1214), coll.Total())
	assert.Len(t, coll, 2)
	if _, ok := coll[Cargo]; ok {
		t.Error("absent manager must not appear in the collection")
	}
	if _, ok := coll[Snap]; ok {
		t.Error("failed manager must not appear in the collection")
	}
}

func TestCountAllNotPresentIsZeroNotError(t *testing.T) {
	c := testCounter(
		probe{Dpkg, absent},
		probe{Pacman, absent},
	)

	total, err := c.Total(context.Background())
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestCountAllFailedEscalates(t *testing.T) {
	c := testCounter(
		probe{Dpkg, broken},
		probe{Pacman, broken},
		probe{RPM, broken},
	)

	_, err := c.Count(context.Background())
	require.ErrorIs(t, err, ErrAllProbesFailed)
}

func TestCountMixedFailureAndAbsenceDoesNotEscalate(t *testing.T) {
	// A broken probe beside a merely absent one is not a total failure.
	c := testCounter(
		probe{Dpkg, broken},
		probe{Pacman, absent},
	)

	total, err := c.Total(context.Background())
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestCountConcurrentDeterminism(t *testing.T) {
	c := testCounter(
		probe{Pacman, fixed(5)},
		probe{Dpkg, absent},
		probe{Xbps, absent},
		probe{Apk, absent},
	)

	for i := 0; i < 200; i++ {
		total, err := c.Total(context.Background())
		require.NoError(t, err)
		require.Equal(t, uint64(5), total)
	}
}

func TestCountSingleOwnerPerManager(t *testing.T) {
	// The flatpak probe owns both detection strategies; adding the command
	// fallback beside the database read must not change the total.
	var execCalls atomic.Int32
	structured := fixed(7)
	viaCommand := func(ctx context.Context) (uint64, error) {
		execCalls.Add(1)
		return 7, nil
	}

	one := testCounter(probe{Flatpak, structured})
	both := testCounter(probe{Flatpak, func(ctx context.Context) (uint64, error) {
		if n, err := structured(ctx); err == nil {
			return n, nil
		}
		return viaCommand(ctx)
	}})

	t1, err := one.Total(context.Background())
	require.NoError(t, err)
	t2, err := both.Total(context.Background())
	require.NoError(t, err)

	assert.Equal(t, t1, t2)
	assert.Zero(t, execCalls.Load(), "command fallback must not run when the structured read succeeds")
}

func TestPlatformProbesOwnDistinctManagers(t *testing.T) {
	seen := make(map[Manager]bool)
	for _, p := range platformProbes() {
		if seen[p.manager] {
			t.Fatalf("manager %s is owned by two probes", p.manager)
		}
		seen[p.manager] = true
	}
}

func TestCollectionManagersSorted(t *testing.T) {
	coll := Collection{Xbps: 1, Apk: 2, Dpkg: 3}
	got := coll.Managers()
	want := []Manager{Apk, Dpkg, Xbps}
	assert.Equal(t, want, got)
}

func TestResultClassification(t *testing.T) {
	tests := []struct {
		name    string
		res     Result
		present bool
		failed  bool
	}{
		{"success", Result{Manager: Dpkg, Count: 3}, true, false},
		{"not present", Result{Manager: Dpkg, Err: ErrNotPresent}, false, false},
		{"plain error", Result{Manager: Dpkg, Err: errors.New("x")}, false, true},
		{"read failure", Result{Manager: Dpkg, Err: &ReadError{Path: "p", Err: errors.New("bad")}}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.present, tt.res.Present())
			assert.Equal(t, tt.failed, tt.res.Failed())
		})
	}
}
