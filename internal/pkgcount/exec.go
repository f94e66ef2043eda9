package pkgcount

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// A reducer turns the captured stdout of a package manager's query command
// into a count.
type reducer func(out []byte) (uint64, error)

// runCount executes a query command and reduces its output. A missing
// binary maps to ErrNotPresent, a failed run to ExecError; neither aborts
// the sibling probes.
func runCount(ctx context.Context, reduce reducer, name string, args ...string) (uint64, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, ErrNotPresent)
	}

	out, err := exec.CommandContext(ctx, path, args...).Output()
	if err != nil {
		return 0, &ExecError{Cmd: name, Err: err}
	}

	n, err := reduce(out)
	if err != nil {
		return 0, &ExecError{Cmd: name, Err: err}
	}
	return n, nil
}

// runLines executes a query command and returns its non-empty output lines.
func runLines(ctx context.Context, name string, args ...string) ([]string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, ErrNotPresent)
	}

	out, err := exec.CommandContext(ctx, path, args...).Output()
	if err != nil {
		return nil, &ExecError{Cmd: name, Err: err}
	}

	var lines []string
	for _, line := range strings.Split(string(out), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// lineCount returns a reducer that counts non-empty output lines, minus a
// fixed number of leading header lines. Fewer lines than the header offset
// reduces to zero, never underflows.
func lineCount(headerLines uint64) reducer {
	return func(out []byte) (uint64, error) {
		var n uint64
		for _, line := range bytes.Split(out, []byte("\n")) {
			if len(bytes.TrimSpace(line)) > 0 {
				n++
			}
		}
		if n <= headerLines {
			return 0, nil
		}
		return n - headerLines, nil
	}
}

// uintToken returns a reducer that extracts the first unsigned integer token
// from the line containing marker. The count is parsed at 64-bit width and
// an unparseable token is rejected rather than wrapped, so hostile or
// localized output can never silently overflow the total.
func uintToken(marker string) reducer {
	return func(out []byte) (uint64, error) {
		for _, line := range strings.Split(string(out), "\n") {
			if !strings.Contains(line, marker) {
				continue
			}
			for _, field := range strings.Fields(line) {
				n, err := strconv.ParseUint(field, 10, 64)
				if err != nil {
					return 0, fmt.Errorf("token %q before %q is not a count: %w", field, marker, err)
				}
				return n, nil
			}
		}
		return 0, fmt.Errorf("no line matching %q in output", marker)
	}
}
