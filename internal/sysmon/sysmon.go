// Package sysmon provides system-wide CPU and memory usage sampling, logged
// around a run for diagnostics.
package sysmon

import (
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/agbru/fanjoin/internal/logging"
)

// Stats holds a single snapshot of resource usage.
type Stats struct {
	CPUPercent float64 // system-wide, 0.0 .. 100.0
	MemPercent float64 // system-wide, 0.0 .. 100.0
	Goroutines int     // goroutines alive in this process
}

// Sample collects a single snapshot.
// CPU uses interval=0 (delta since last call). Returns zero values on error.
func Sample() Stats {
	s := Stats{Goroutines: runtime.NumGoroutine()}
	cpuPcts, err := cpu.Percent(0, false)
	if err == nil && len(cpuPcts) > 0 {
		s.CPUPercent = cpuPcts[0]
	}
	vmem, err := mem.VirtualMemory()
	if err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}
	return s
}

// Log writes s to logger at debug level, tagged with the sampling point.
func (s Stats) Log(logger logging.Logger, point string) {
	logger.Debug("system sample",
		logging.String("point", point),
		logging.Float64("cpu_percent", s.CPUPercent),
		logging.Float64("mem_percent", s.MemPercent),
		logging.Int("goroutines", s.Goroutines),
	)
}
