//go:build freebsd

package readout

import (
	"context"
	"os"
	"os/user"
	"path/filepath"
	"time"

	"github.com/tklauser/numcpus"
	"golang.org/x/sys/unix"

	"github.com/probekit/sysprobe/internal/pkgcount"
)

type freebsdGeneral struct {
	counter *pkgcount.Counter
}

func (g *freebsdGeneral) Username() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", ErrMetricNotAvailable
	}
	return u.Username, nil
}

func (g *freebsdGeneral) Hostname() (string, error) {
	h, err := os.Hostname()
	if err != nil {
		return "", ErrMetricNotAvailable
	}
	return h, nil
}

func (g *freebsdGeneral) Distribution() (string, error) {
	release, err := unix.Sysctl("kern.osrelease")
	if err != nil {
		return "FreeBSD", nil
	}
	return "FreeBSD " + release, nil
}

func (g *freebsdGeneral) DesktopEnvironment() (string, error) {
	return firstEnv("XDG_CURRENT_DESKTOP", "DESKTOP_SESSION")
}

func (g *freebsdGeneral) WindowManager() (string, error) {
	return firstEnv("XDG_SESSION_DESKTOP", "DESKTOP_SESSION")
}

func (g *freebsdGeneral) Terminal() (string, error) {
	return firstEnv("TERM_PROGRAM", "TERM")
}

func (g *freebsdGeneral) Shell() (string, error) {
	shell := os.Getenv("SHELL")
	if shell == "" {
		return "", ErrMetricNotAvailable
	}
	return filepath.Base(shell), nil
}

func (g *freebsdGeneral) CPUModel() (string, error) {
	model, err := unix.Sysctl("hw.model")
	if err != nil {
		return "", ErrMetricNotAvailable
	}
	return model, nil
}

func (g *freebsdGeneral) CPUCores() (int, error) {
	n, err := numcpus.GetOnline()
	if err != nil {
		return 0, ErrMetricNotAvailable
	}
	return n, nil
}

func (g *freebsdGeneral) Uptime() (time.Duration, error) {
	tv, err := unix.SysctlTimeval("kern.boottime")
	if err != nil {
		return 0, ErrMetricNotAvailable
	}
	boot := time.Unix(tv.Sec, int64(tv.Usec)*1000)
	return time.Since(boot), nil
}

func (g *freebsdGeneral) PackageCount(ctx context.Context) (uint64, error) {
	return g.counter.Total(ctx)
}
