package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/probekit/sysprobe/internal/readout"
	"github.com/probekit/sysprobe/internal/render"
)

// buildRows walks the capability interfaces and assembles the report.
// A metric the host cannot provide is dropped from the report entirely;
// in particular a failed package count is never shown as zero.
func buildRows(ctx context.Context, r *readout.Readouts, hidden func(string) bool) []render.Row {
	var rows []render.Row
	add := func(key, value string, err error) {
		if err != nil || hidden(key) {
			return
		}
		rows = append(rows, render.Row{Key: key, Value: value})
	}
	str := func(key string, f func() (string, error)) {
		v, err := f()
		add(key, v, err)
	}

	str("User", r.General.Username)
	str("Host", r.General.Hostname)

	if vendor, err := r.Product.Vendor(); err == nil {
		name, err := r.Product.Name()
		add("Machine", vendor+" "+name, err)
	}

	str("OS", r.General.Distribution)

	if kname, err := r.Kernel.OSType(); err == nil {
		krel, err := r.Kernel.OSRelease()
		add("Kernel", kname+" "+krel, err)
	}

	if up, err := r.General.Uptime(); err == nil {
		add("Uptime", render.Duration(up), nil)
	}

	if n, err := r.General.PackageCount(ctx); err == nil {
		add("Packages", strconv.FormatUint(n, 10), nil)
	}

	if n, err := readout.ContainerCount(ctx); err == nil {
		add("Containers", strconv.Itoa(n), nil)
	}

	str("Shell", r.General.Shell)
	str("Terminal", r.General.Terminal)
	str("DE", r.General.DesktopEnvironment)
	str("WM", r.General.WindowManager)

	if model, err := r.General.CPUModel(); err == nil {
		if cores, err := r.General.CPUCores(); err == nil {
			add("CPU", fmt.Sprintf("%s (%d cores)", model, cores), nil)
		} else {
			add("CPU", model, nil)
		}
	}

	if total, err := r.Memory.Total(); err == nil && total > 0 {
		used, err := r.Memory.Used()
		add("Memory", fmt.Sprintf("%s / %s (%d%%)",
			render.Bytes(used), render.Bytes(total), render.Percent(used, total)), err)
	}
	if total, err := r.Memory.SwapTotal(); err == nil && total > 0 {
		used, err := r.Memory.SwapUsed()
		add("Swap", fmt.Sprintf("%s / %s (%d%%)",
			render.Bytes(used), render.Bytes(total), render.Percent(used, total)), err)
	}

	if pct, err := r.Battery.Percentage(); err == nil {
		state, err := r.Battery.Status()
		add("Battery", fmt.Sprintf("%d%% (%s)", pct, state), err)
	}

	str("IP", func() (string, error) { return r.Network.LogicalAddress("") })
	str("MAC", func() (string, error) { return r.Network.PhysicalAddress("") })

	if rx, err := r.Network.RxBytes(""); err == nil {
		if tx, err := r.Network.TxBytes(""); err == nil {
			add("Traffic", fmt.Sprintf("%s received, %s sent", render.Bytes(rx), render.Bytes(tx)), nil)
		}
	}

	return rows
}
