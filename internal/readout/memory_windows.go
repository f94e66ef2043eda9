//go:build windows

package readout

import "unsafe"

var procGlobalMemoryStatusEx = kernel32.NewProc("GlobalMemoryStatusEx")

type memoryStatusEx struct {
	Length               uint32
	MemoryLoad           uint32
	TotalPhys            uint64
	AvailPhys            uint64
	TotalPageFile        uint64
	AvailPageFile        uint64
	TotalVirtual         uint64
	AvailVirtual         uint64
	AvailExtendedVirtual uint64
}

type windowsMemory struct{}

func (m *windowsMemory) read() (memoryStatusEx, error) {
	var status memoryStatusEx
	status.Length = uint32(unsafe.Sizeof(status))
	ret, _, _ := procGlobalMemoryStatusEx.Call(uintptr(unsafe.Pointer(&status)))
	if ret == 0 {
		return status, ErrMetricNotAvailable
	}
	return status, nil
}

func (m *windowsMemory) Total() (uint64, error) {
	s, err := m.read()
	if err != nil {
		return 0, err
	}
	return s.TotalPhys, nil
}

func (m *windowsMemory) Used() (uint64, error) {
	s, err := m.read()
	if err != nil {
		return 0, err
	}
	return s.TotalPhys - s.AvailPhys, nil
}

func (m *windowsMemory) SwapTotal() (uint64, error) {
	s, err := m.read()
	if err != nil {
		return 0, err
	}
	return s.TotalPageFile, nil
}

func (m *windowsMemory) SwapUsed() (uint64, error) {
	s, err := m.read()
	if err != nil {
		return 0, err
	}
	return s.TotalPageFile - s.AvailPageFile, nil
}
