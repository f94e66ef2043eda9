//go:build darwin

package readout

import (
	"context"
	"os"
	"os/exec"
	"os/user"
	"path/filepath"
	"strings"
	"time"

	"github.com/tklauser/numcpus"
	"golang.org/x/sys/unix"

	"github.com/probekit/sysprobe/internal/pkgcount"
)

type darwinGeneral struct {
	counter *pkgcount.Counter
}

func (g *darwinGeneral) Username() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", ErrMetricNotAvailable
	}
	return u.Username, nil
}

func (g *darwinGeneral) Hostname() (string, error) {
	h, err := os.Hostname()
	if err != nil {
		return "", ErrMetricNotAvailable
	}
	return h, nil
}

func (g *darwinGeneral) Distribution() (string, error) {
	name, err := exec.Command("sw_vers", "-productName").Output()
	if err != nil {
		return "", ErrMetricNotAvailable
	}
	version, err := exec.Command("sw_vers", "-productVersion").Output()
	if err != nil {
		return strings.TrimSpace(string(name)), nil
	}
	return strings.TrimSpace(string(name)) + " " + strings.TrimSpace(string(version)), nil
}

// macOS always runs the same desktop; there is nothing to detect.
func (g *darwinGeneral) DesktopEnvironment() (string, error) { return "Aqua", nil }
func (g *darwinGeneral) WindowManager() (string, error)      { return "Quartz Compositor", nil }

func (g *darwinGeneral) Terminal() (string, error) {
	return firstEnv("TERM_PROGRAM", "TERM")
}

func (g *darwinGeneral) Shell() (string, error) {
	shell := os.Getenv("SHELL")
	if shell == "" {
		return "", ErrMetricNotAvailable
	}
	return filepath.Base(shell), nil
}

func (g *darwinGeneral) CPUModel() (string, error) {
	model, err := unix.Sysctl("machdep.cpu.brand_string")
	if err != nil {
		return "", ErrMetricNotAvailable
	}
	return model, nil
}

func (g *darwinGeneral) CPUCores() (int, error) {
	n, err := numcpus.GetOnline()
	if err != nil {
		return 0, ErrMetricNotAvailable
	}
	return n, nil
}

func (g *darwinGeneral) Uptime() (time.Duration, error) {
	tv, err := unix.SysctlTimeval("kern.boottime")
	if err != nil {
		return 0, ErrMetricNotAvailable
	}
	boot := time.Unix(tv.Sec, int64(tv.Usec)*1000)
	return time.Since(boot), nil
}

func (g *darwinGeneral) PackageCount(ctx context.Context) (uint64, error) {
	return g.counter.Total(ctx)
}
