package readout

import (
	"context"
	"errors"
	"testing"

	"github.com/docker/docker/api/types/container"
)

type fakeLister struct {
	containers []container.Summary
	err        error
}

func (f *fakeLister) ContainerList(context.Context, container.ListOptions) ([]container.Summary, error) {
	return f.containers, f.err
}

func (f *fakeLister) Close() error { return nil }

func withFakeLister(t *testing.T, f *fakeLister, newErr error) {
	t.Helper()
	orig := newContainerLister
	newContainerLister = func() (containerLister, error) {
		if newErr != nil {
			return nil, newErr
		}
		return f, nil
	}
	t.Cleanup(func() { newContainerLister = orig })
}

func TestContainerCount(t *testing.T) {
	t.Run("running containers", func(t *testing.T) {
		withFakeLister(t, &fakeLister{containers: make([]container.Summary, 3)}, nil)
		n, err := ContainerCount(context.Background())
		if err != nil {
			t.Fatalf("ContainerCount: %v", err)
		}
		if n != 3 {
			t.Errorf("got %d, want 3", n)
		}
	})

	t.Run("no daemon", func(t *testing.T) {
		withFakeLister(t, nil, errors.New("no docker socket"))
		_, err := ContainerCount(context.Background())
		if !errors.Is(err, ErrMetricNotAvailable) {
			t.Fatalf("want ErrMetricNotAvailable, got %v", err)
		}
	})

	t.Run("list fails", func(t *testing.T) {
		withFakeLister(t, &fakeLister{err: errors.New("daemon gone")}, nil)
		_, err := ContainerCount(context.Background())
		if !errors.Is(err, ErrMetricNotAvailable) {
			t.Fatalf("want ErrMetricNotAvailable, got %v", err)
		}
	})
}
