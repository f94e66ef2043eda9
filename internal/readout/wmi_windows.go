//go:build windows

package readout

import (
	"sync"

	"github.com/yusufpapurcu/wmi"
	"golang.org/x/sys/windows"
)

var (
	kernel32           = windows.NewLazySystemDLL("kernel32.dll")
	procGetTickCount64 = kernel32.NewProc("GetTickCount64")
)

// These structs map to WMI classes; wmi derives the class name and the
// properties to load from the type.

type Win32_ComputerSystem struct {
	Manufacturer string
	Model        string
}

type Win32_Processor struct {
	Name          string
	NumberOfCores uint32
}

type Win32_OperatingSystem struct {
	Caption string
	Version string
}

type Win32_Battery struct {
	EstimatedChargeRemaining uint16
	BatteryStatus            uint16
}

// The WMI system/processor queries take hundreds of milliseconds, and
// several readouts need their results. They run at most once per process;
// there is no teardown.
var (
	sysInfoOnce sync.Once
	sysInfoCS   []Win32_ComputerSystem
	sysInfoCPU  []Win32_Processor
	sysInfoErr  error
)

func querySystemInfo() ([]Win32_ComputerSystem, []Win32_Processor, error) {
	sysInfoOnce.Do(func() {
		csQuery := wmi.CreateQuery(&sysInfoCS, "")
		if err := wmi.Query(csQuery, &sysInfoCS); err != nil {
			sysInfoErr = err
			return
		}
		cpuQuery := wmi.CreateQuery(&sysInfoCPU, "")
		sysInfoErr = wmi.Query(cpuQuery, &sysInfoCPU)
	})
	return sysInfoCS, sysInfoCPU, sysInfoErr
}
