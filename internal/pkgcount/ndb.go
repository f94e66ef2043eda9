package pkgcount

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// The rpm "ndb" backend stores its package index in Packages.db: a 32-byte
// header followed by 4 KiB slot pages. Each 16-byte slot names one
// installed package instance by a non-zero package index. Counting
// installed packages therefore only requires walking the slot pages, not
// decoding any package blobs.
const (
	ndbHeaderMagic uint32 = 'R' | 'p'<<8 | 'm'<<16 | 'P'<<24
	ndbSlotMagic   uint32 = 'S' | 'l'<<8 | 'o'<<16 | 't'<<24
	ndbVersion     uint32 = 0

	ndbSlotSize      = 16
	ndbSlotsPerPage  = 4096 / ndbSlotSize
	ndbMaxSlotPages  = 2048 // 512k slots; far beyond any real install base
	ndbHeaderEntries = 2    // the header occupies the first two slot entries
)

type ndbHeader struct {
	HeaderMagic uint32
	Version     uint32
	Generation  uint32
	SlotNPages  uint32
	_           [4]uint32
}

type ndbSlot struct {
	SlotMagic uint32
	PkgIndex  uint32
	BlkOffset uint32
	BlkCount  uint32
}

// countNDB counts the installed packages recorded in an rpm ndb Packages.db
// file. A missing file is ErrNotPresent; a malformed one is a ReadError.
func countNDB(path string) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, ErrNotPresent
		}
		return 0, &ReadError{Path: path, Err: err}
	}
	defer f.Close()

	n, err := countNDBFrom(f)
	if err != nil {
		return 0, &ReadError{Path: path, Err: err}
	}
	return n, nil
}

func countNDBFrom(r io.Reader) (uint64, error) {
	var hdr ndbHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return 0, fmt.Errorf("reading header: %w", err)
	}

	if hdr.HeaderMagic != ndbHeaderMagic {
		return 0, fmt.Errorf("bad header magic %#x", hdr.HeaderMagic)
	}
	if hdr.Version != ndbVersion {
		return 0, fmt.Errorf("unsupported ndb version %d", hdr.Version)
	}
	if hdr.SlotNPages == 0 || hdr.SlotNPages > ndbMaxSlotPages {
		return 0, fmt.Errorf("implausible slot page count %d", hdr.SlotNPages)
	}

	nslots := hdr.SlotNPages*ndbSlotsPerPage - ndbHeaderEntries

	var count uint64
	for i := uint32(0); i < nslots; i++ {
		var slot ndbSlot
		if err := binary.Read(r, binary.LittleEndian, &slot); err != nil {
			return 0, fmt.Errorf("reading slot %d: %w", i, err)
		}
		if slot.SlotMagic != ndbSlotMagic {
			return 0, fmt.Errorf("bad magic %#x in slot %d", slot.SlotMagic, i)
		}
		if slot.PkgIndex != 0 {
			count++
		}
	}
	return count, nil
}
