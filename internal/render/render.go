// Package render turns a collected report into aligned terminal output or
// a JSON document.
package render

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/x/term"
	"github.com/google/uuid"
	"github.com/mattn/go-runewidth"
	"golang.org/x/exp/constraints"
)

const (
	ansiReset = "\033[0m"
	ansiBold  = "\033[1m"
	ansiCyan  = "\033[36m"
)

// Row is one key/value line of the report.
type Row struct {
	Key   string
	Value string
}

// Options controls terminal rendering.
type Options struct {
	Color bool
	// Width truncates values; zero means the detected terminal width,
	// falling back to no truncation.
	Width int
}

// Table renders rows with keys padded to a common display width. Padding
// uses display cells, not bytes, so wide runes in hostnames or distro
// names stay aligned.
func Table(rows []Row, opts Options) string {
	keyWidth := 0
	for _, r := range rows {
		if w := runewidth.StringWidth(r.Key); w > keyWidth {
			keyWidth = w
		}
	}

	width := opts.Width
	if width == 0 {
		width = termWidth()
	}

	var b strings.Builder
	for _, r := range rows {
		key := runewidth.FillRight(r.Key, keyWidth)
		value := r.Value
		if width > 0 {
			if max := width - keyWidth - 2; max > 3 {
				value = runewidth.Truncate(value, max, "…")
			}
		}
		if opts.Color {
			fmt.Fprintf(&b, "%s%s%s%s  %s\n", ansiBold, ansiCyan, key, ansiReset, value)
		} else {
			fmt.Fprintf(&b, "%s  %s\n", key, value)
		}
	}
	return b.String()
}

func termWidth() int {
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil {
		return 0
	}
	return w
}

// Report is the JSON form of a collected report, shaped for inventory
// pipelines: a fresh ID per invocation plus a flat field map.
type Report struct {
	ID        string            `json:"id"`
	Hostname  string            `json:"hostname"`
	Timestamp time.Time         `json:"timestamp"`
	Fields    map[string]string `json:"fields"`
}

// NewReport stamps a report with a fresh ID and the current time.
func NewReport(hostname string, rows []Row) Report {
	fields := make(map[string]string, len(rows))
	for _, r := range rows {
		fields[r.Key] = r.Value
	}
	return Report{
		ID:        uuid.NewString(),
		Hostname:  hostname,
		Timestamp: time.Now().UTC(),
		Fields:    fields,
	}
}

type number interface {
	constraints.Integer | constraints.Float
}

// Percent renders part of total as an integer percentage.
func Percent[T number](part, total T) int {
	if total == 0 {
		return 0
	}
	return int(float64(part) / float64(total) * 100.0)
}

// Bytes renders a byte count in binary units with one decimal.
func Bytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// Duration renders an uptime as "3d 4h 12m".
func Duration(d time.Duration) string {
	d = d.Round(time.Minute)
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	mins := int(d.Minutes()) % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, mins)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, mins)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}
