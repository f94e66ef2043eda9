//go:build darwin

package readout

import "testing"

func TestParseVMStat(t *testing.T) {
	out := `Mach Virtual Memory Statistics: (page size of 16384 bytes)
Pages free:                              104858.
Pages active:                            300000.
Pages inactive:                          200000.
Pages wired down:                        100000.
Pages occupied by compressor:             50000.
`
	pages, pageSize := parseVMStat(out)
	if pageSize != 16384 {
		t.Errorf("pageSize = %d, want 16384", pageSize)
	}
	if pages["Pages active"] != 300000 {
		t.Errorf("active = %d, want 300000", pages["Pages active"])
	}
	if pages["Pages wired down"] != 100000 {
		t.Errorf("wired = %d, want 100000", pages["Pages wired down"])
	}
}

func TestParseSwapSize(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
	}{
		{"2048.00M", 2048 << 20},
		{"1.50G", 1536 << 20},
		{"512.00K", 512 << 10},
		{"0.00M", 0},
		{"junk", 0},
	}
	for _, tt := range tests {
		if got := parseSwapSize(tt.in); got != tt.want {
			t.Errorf("parseSwapSize(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParsePmset(t *testing.T) {
	out := "Now drawing from 'Battery Power'\n" +
		" -InternalBattery-0 (id=4522083)\t95%; discharging; 4:03 remaining present: true\n"

	pct, state, err := parsePmset(out)
	if err != nil {
		t.Fatalf("parsePmset: %v", err)
	}
	if pct != 95 {
		t.Errorf("pct = %d, want 95", pct)
	}
	if state != Discharging {
		t.Errorf("state = %q, want %q", state, Discharging)
	}

	charging := " -InternalBattery-0 (id=1)\t40%; charging; 1:10 remaining present: true\n"
	pct, state, err = parsePmset(charging)
	if err != nil {
		t.Fatalf("parsePmset: %v", err)
	}
	if pct != 40 || state != Charging {
		t.Errorf("got %d/%q, want 40/%q", pct, state, Charging)
	}

	if _, _, err := parsePmset("Now drawing from 'AC Power'\n"); err == nil {
		t.Error("expected an error for a host without a battery")
	}
}
