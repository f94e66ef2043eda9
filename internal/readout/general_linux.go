//go:build linux

package readout

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/tklauser/numcpus"

	"github.com/probekit/sysprobe/internal/pkgcount"
)

type linuxGeneral struct {
	counter *pkgcount.Counter
}

func (g *linuxGeneral) Username() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", ErrMetricNotAvailable
	}
	return u.Username, nil
}

func (g *linuxGeneral) Hostname() (string, error) {
	h, err := os.Hostname()
	if err != nil {
		return "", ErrMetricNotAvailable
	}
	return h, nil
}

func (g *linuxGeneral) Distribution() (string, error) {
	f, err := os.Open("/etc/os-release")
	if err != nil {
		return "", ErrMetricNotAvailable
	}
	defer f.Close()

	name := parseOSRelease(f)
	if name == "" {
		return "", ErrMetricNotAvailable
	}
	return name, nil
}

// parseOSRelease prefers PRETTY_NAME and falls back to NAME.
func parseOSRelease(r io.Reader) string {
	var name string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if v, ok := strings.CutPrefix(line, "PRETTY_NAME="); ok {
			return strings.Trim(v, `"`)
		}
		if v, ok := strings.CutPrefix(line, "NAME="); ok {
			name = strings.Trim(v, `"`)
		}
	}
	return name
}

func (g *linuxGeneral) DesktopEnvironment() (string, error) {
	return firstEnv("XDG_CURRENT_DESKTOP", "DESKTOP_SESSION")
}

func (g *linuxGeneral) WindowManager() (string, error) {
	// Wayland compositors set this; X11 window managers rarely export
	// anything, so fall back to the desktop session.
	return firstEnv("XDG_SESSION_DESKTOP", "DESKTOP_SESSION")
}

func (g *linuxGeneral) Terminal() (string, error) {
	return firstEnv("TERM_PROGRAM", "TERM")
}

func (g *linuxGeneral) Shell() (string, error) {
	shell := os.Getenv("SHELL")
	if shell == "" {
		return "", ErrMetricNotAvailable
	}
	return filepath.Base(shell), nil
}

func (g *linuxGeneral) CPUModel() (string, error) {
	f, err := os.Open("/proc/cpuinfo")
	if err != nil {
		return "", ErrMetricNotAvailable
	}
	defer f.Close()

	model := parseCPUModel(f)
	if model == "" {
		return "", ErrMetricNotAvailable
	}
	return model, nil
}

func parseCPUModel(r io.Reader) string {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "model name") {
			continue
		}
		if _, v, ok := strings.Cut(line, ":"); ok {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func (g *linuxGeneral) CPUCores() (int, error) {
	n, err := numcpus.GetOnline()
	if err != nil {
		return 0, ErrMetricNotAvailable
	}
	return n, nil
}

func (g *linuxGeneral) Uptime() (time.Duration, error) {
	data, err := os.ReadFile("/proc/uptime")
	if err != nil {
		return 0, ErrMetricNotAvailable
	}
	return parseUptime(string(data))
}

// parseUptime reads the first field of /proc/uptime, seconds with a
// fractional part.
func parseUptime(s string) (time.Duration, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty uptime reading")
	}
	secs, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("parsing uptime %q: %w", fields[0], err)
	}
	return time.Duration(secs * float64(time.Second)), nil
}

func (g *linuxGeneral) PackageCount(ctx context.Context) (uint64, error) {
	return g.counter.Total(ctx)
}
