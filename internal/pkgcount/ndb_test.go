package pkgcount

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// buildNDB assembles a minimal Packages.db image: header plus one slot
// page, with installed slots carrying the given package indexes.
func buildNDB(t *testing.T, pkgIndexes []uint32) []byte {
	t.Helper()

	var buf bytes.Buffer
	hdr := ndbHeader{
		HeaderMagic: ndbHeaderMagic,
		Version:     ndbVersion,
		Generation:  7,
		SlotNPages:  1,
	}
	if err := binary.Write(&buf, binary.LittleEndian, hdr); err != nil {
		t.Fatal(err)
	}

	nslots := ndbSlotsPerPage - ndbHeaderEntries
	for i := 0; i < nslots; i++ {
		slot := ndbSlot{SlotMagic: ndbSlotMagic}
		if i < len(pkgIndexes) {
			slot.PkgIndex = pkgIndexes[i]
			slot.BlkOffset = uint32(16 + i)
			slot.BlkCount = 4
		}
		if err := binary.Write(&buf, binary.LittleEndian, slot); err != nil {
			t.Fatal(err)
		}
	}
	return buf.Bytes()
}

func writeTemp(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Packages.db")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCountNDB(t *testing.T) {
	t.Run("counts occupied slots", func(t *testing.T) {
		db := buildNDB(t, []uint32{1, 2, 3, 0, 5})
		got, err := countNDB(writeTemp(t, db))
		if err != nil {
			t.Fatalf("countNDB: %v", err)
		}
		// The zero index marks a free slot.
		if got != 4 {
			t.Errorf("got %d, want 4", got)
		}
	})

	t.Run("empty database", func(t *testing.T) {
		db := buildNDB(t, nil)
		got, err := countNDB(writeTemp(t, db))
		if err != nil {
			t.Fatalf("countNDB: %v", err)
		}
		if got != 0 {
			t.Errorf("got %d, want 0", got)
		}
	})

	t.Run("missing file is not present", func(t *testing.T) {
		_, err := countNDB(filepath.Join(t.TempDir(), "Packages.db"))
		if !errors.Is(err, ErrNotPresent) {
			t.Fatalf("want ErrNotPresent, got %v", err)
		}
	})

	t.Run("truncated file is a read failure", func(t *testing.T) {
		db := buildNDB(t, []uint32{1, 2, 3})
		_, err := countNDB(writeTemp(t, db[:100]))
		var re *ReadError
		if !errors.As(err, &re) {
			t.Fatalf("want ReadError, got %v", err)
		}
	})

	t.Run("garbage bytes are a read failure", func(t *testing.T) {
		_, err := countNDB(writeTemp(t, bytes.Repeat([]byte{0xde, 0xad}, 64)))
		var re *ReadError
		if !errors.As(err, &re) {
			t.Fatalf("want ReadError, got %v", err)
		}
	})

	t.Run("bad slot magic is a read failure", func(t *testing.T) {
		db := buildNDB(t, []uint32{1, 2})
		// Corrupt the magic of the first slot, just past the header.
		copy(db[32:36], []byte{0, 0, 0, 0})
		_, err := countNDB(writeTemp(t, db))
		var re *ReadError
		if !errors.As(err, &re) {
			t.Fatalf("want ReadError, got %v", err)
		}
	})

	t.Run("implausible page count is a read failure", func(t *testing.T) {
		db := buildNDB(t, nil)
		binary.LittleEndian.PutUint32(db[12:16], ndbMaxSlotPages+1)
		_, err := countNDB(writeTemp(t, db))
		var re *ReadError
		if !errors.As(err, &re) {
			t.Fatalf("want ReadError, got %v", err)
		}
	})
}
