package readout

import (
	"context"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
)

// containerLister is the slice of the Docker API the container readout
// needs; the indirection keeps it testable without a daemon.
type containerLister interface {
	ContainerList(ctx context.Context, options container.ListOptions) ([]container.Summary, error)
	Close() error
}

var newContainerLister = func() (containerLister, error) {
	return client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
}

// ContainerCount reports the number of running containers. Hosts without
// a reachable Docker daemon get ErrMetricNotAvailable, not an error; a
// fetch report simply omits the row.
func ContainerCount(ctx context.Context) (int, error) {
	cli, err := newContainerLister()
	if err != nil {
		return 0, ErrMetricNotAvailable
	}
	defer cli.Close()

	containers, err := cli.ContainerList(ctx, container.ListOptions{})
	if err != nil {
		return 0, ErrMetricNotAvailable
	}
	return len(containers), nil
}
