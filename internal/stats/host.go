package stats

import (
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

// Host describes the machine a render ran on.
type Host struct {
	CPU        string
	Cores      int
	ClockGHz   float64
	TotalRAMGB uint64
}

// HostInfo queries CPU and memory details.
func HostInfo() (Host, error) {
	cpuInfo, err := cpu.Info()
	if err != nil {
		return Host{}, fmt.Errorf("stats: cpu info: %w", err)
	}
	if len(cpuInfo) == 0 {
		return Host{}, fmt.Errorf("stats: no CPU information available")
	}

	memInfo, err := mem.VirtualMemory()
	if err != nil {
		return Host{}, fmt.Errorf("stats: memory info: %w", err)
	}

	return Host{
		CPU:        cpuInfo[0].ModelName,
		Cores:      runtime.NumCPU(),
		ClockGHz:   cpuInfo[0].Mhz / 1000,
		TotalRAMGB: memInfo.Total / (1024 * 1024 * 1024),
	}, nil
}
