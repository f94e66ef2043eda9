//go:build linux

package readout

import (
	"strings"
	"testing"
	"time"
)

func TestParseOSRelease(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{
			name: "pretty name preferred",
			in:   "NAME=\"Arch Linux\"\nPRETTY_NAME=\"Arch Linux\"\nID=arch\n",
			want: "Arch Linux",
		},
		{
			name: "name fallback",
			in:   "NAME=\"Alpine Linux\"\nID=alpine\n",
			want: "Alpine Linux",
		},
		{
			name: "unquoted values",
			in:   "PRETTY_NAME=Debian\n",
			want: "Debian",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseOSRelease(strings.NewReader(tt.in))
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseCPUModel(t *testing.T) {
	cpuinfo := `processor	: 0
vendor_id	: GenuineIntel
model name	: Intel(R) Core(TM) i7-9750H CPU @ 2.60GHz
cache size	: 12288 KB
`
	got := parseCPUModel(strings.NewReader(cpuinfo))
	want := "Intel(R) Core(TM) i7-9750H CPU @ 2.60GHz"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	if got := parseCPUModel(strings.NewReader("flags: fpu vme\n")); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestParseUptime(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"typical", "88642.33 176459.74\n", 88642330 * time.Millisecond, false},
		{"integer seconds", "10 20\n", 10 * time.Second, false},
		{"empty", "", 0, true},
		{"garbage", "soon\n", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseUptime(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseUptime: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseMemInfo(t *testing.T) {
	meminfo := `MemTotal:       16384256 kB
MemFree:         8123456 kB
MemAvailable:   12345678 kB
Buffers:          234567 kB
SwapTotal:       2097148 kB
SwapFree:        2097148 kB
`
	raw, err := parseMemInfo(strings.NewReader(meminfo))
	if err != nil {
		t.Fatalf("parseMemInfo: %v", err)
	}

	if want := uint64(16384256) * 1024; raw.Total != want {
		t.Errorf("Total = %d, want %d", raw.Total, want)
	}
	if want := uint64(12345678) * 1024; raw.Available != want {
		t.Errorf("Available = %d, want %d", raw.Available, want)
	}
	if want := uint64(2097148) * 1024; raw.SwapTotal != want {
		t.Errorf("SwapTotal = %d, want %d", raw.SwapTotal, want)
	}

	if _, err := parseMemInfo(strings.NewReader("MemFree: 1 kB\n")); err == nil {
		t.Error("expected an error when MemTotal is missing")
	}
}
