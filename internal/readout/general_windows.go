//go:build windows

package readout

import (
	"context"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"time"

	"github.com/yusufpapurcu/wmi"

	"github.com/probekit/sysprobe/internal/pkgcount"
)

type windowsGeneral struct {
	counter *pkgcount.Counter
}

func (g *windowsGeneral) Username() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", ErrMetricNotAvailable
	}
	// DOMAIN\user is noise in a local report.
	if _, name, ok := strings.Cut(u.Username, `\`); ok {
		return name, nil
	}
	return u.Username, nil
}

func (g *windowsGeneral) Hostname() (string, error) {
	h, err := os.Hostname()
	if err != nil {
		return "", ErrMetricNotAvailable
	}
	return h, nil
}

func (g *windowsGeneral) Distribution() (string, error) {
	var oss []Win32_OperatingSystem
	if err := wmi.Query(wmi.CreateQuery(&oss, ""), &oss); err != nil || len(oss) == 0 {
		return "", ErrMetricNotAvailable
	}
	return strings.TrimSpace(oss[0].Caption), nil
}

func (g *windowsGeneral) DesktopEnvironment() (string, error) {
	return "Windows Shell", nil
}

func (g *windowsGeneral) WindowManager() (string, error) {
	return "Desktop Window Manager", nil
}

func (g *windowsGeneral) Terminal() (string, error) {
	if os.Getenv("WT_SESSION") != "" {
		return "Windows Terminal", nil
	}
	return firstEnv("TERM_PROGRAM", "TERM")
}

func (g *windowsGeneral) Shell() (string, error) {
	if shell := os.Getenv("SHELL"); shell != "" {
		return filepath.Base(shell), nil
	}
	if comspec := os.Getenv("ComSpec"); comspec != "" {
		return filepath.Base(comspec), nil
	}
	return "", ErrMetricNotAvailable
}

func (g *windowsGeneral) CPUModel() (string, error) {
	_, cpus, err := querySystemInfo()
	if err != nil || len(cpus) == 0 {
		return "", ErrMetricNotAvailable
	}
	return strings.TrimSpace(cpus[0].Name), nil
}

func (g *windowsGeneral) CPUCores() (int, error) {
	_, cpus, err := querySystemInfo()
	if err != nil || len(cpus) == 0 {
		return 0, ErrMetricNotAvailable
	}
	cores := 0
	for _, c := range cpus {
		cores += int(c.NumberOfCores)
	}
	return cores, nil
}

func (g *windowsGeneral) Uptime() (time.Duration, error) {
	ms, _, _ := procGetTickCount64.Call()
	if ms == 0 {
		return 0, ErrMetricNotAvailable
	}
	return time.Duration(ms) * time.Millisecond, nil
}

func (g *windowsGeneral) PackageCount(ctx context.Context) (uint64, error) {
	return g.counter.Total(ctx)
}
