//go:build freebsd

package readout

import "testing"

func TestParseSwapinfo(t *testing.T) {
	out := []byte(`Device          1K-blocks     Used    Avail Capacity
/dev/ada0p3       2097152   524288  1572864    25%
/dev/ada1p2       1048576        0  1048576     0%
Total             3145728   524288  2621440    17%
`)
	total, used, err := parseSwapinfo(out)
	if err != nil {
		t.Fatalf("parseSwapinfo: %v", err)
	}
	if want := uint64(3145728) * 1024; total != want {
		t.Errorf("total = %d, want %d", total, want)
	}
	if want := uint64(524288) * 1024; used != want {
		t.Errorf("used = %d, want %d", used, want)
	}
}
