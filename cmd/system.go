package cmd

import (
	"runtime"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

// defaultWorkerCount returns the number of logical CPUs, falling back to the
// Go runtime's count when the system cannot be queried
func defaultWorkerCount() int {
	count, err := cpu.Counts(true)
	if err != nil || count < 1 {
		logger.Debugf("falling back to runtime CPU count: %v", err)
		return runtime.NumCPU()
	}
	return count
}

// logSystemInfo reports the host CPU and memory at Info level
func logSystemInfo() {
	cpuInfo, err := cpu.Info()
	if err != nil || len(cpuInfo) == 0 {
		logger.Debugf("CPU information unavailable: %v", err)
	} else {
		logger.Infof("CPU: %s (%.2f GHz)", cpuInfo[0].ModelName, cpuInfo[0].Mhz/1000)
	}

	memInfo, err := mem.VirtualMemory()
	if err != nil {
		logger.Debugf("memory information unavailable: %v", err)
		return
	}
	logger.Infof("RAM: %d MiB total, %d MiB available", memInfo.Total>>20, memInfo.Available>>20)
}
