// Package hostinfo collects host-side facts for the host/device comparison.
//
// In accelerator terminology the "host" is the conventional computer (CPU
// and RAM) and the "device" is the accelerator with its own memory and
// cores. Environment reports show both sides, so this package gathers the
// host half: CPU model, core count, memory, OS.
package hostinfo

import (
	"context"
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// HostInfo describes the machine running the check.
type HostInfo struct {
	Hostname string `json:"hostname"`
	OS       string `json:"os"`
	Platform string `json:"platform"`
	Kernel   string `json:"kernel"`
	Arch     string `json:"arch"`

	CPUModel        string `json:"cpu_model"`
	CPUCoresLogical int    `json:"cpu_cores_logical"`

	MemoryMB int `json:"memory_mb"`
}

// Collect gathers host facts. Individual probe failures degrade to empty
// fields rather than failing the whole collection: a diagnostics run that
// cannot read the CPU model should still report everything else.
func Collect(ctx context.Context) (HostInfo, error) {
	info := HostInfo{
		OS:   runtime.GOOS,
		Arch: runtime.GOARCH,
	}

	if hi, err := host.InfoWithContext(ctx); err == nil {
		info.Hostname = hi.Hostname
		info.Platform = hi.Platform
		info.Kernel = hi.KernelVersion
	}

	if cpus, err := cpu.InfoWithContext(ctx); err == nil && len(cpus) > 0 {
		info.CPUModel = cpus[0].ModelName
	}

	if count, err := cpu.CountsWithContext(ctx, true); err == nil {
		info.CPUCoresLogical = count
	}

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return info, fmt.Errorf("hostinfo: reading memory: %w", err)
	}
	info.MemoryMB = int(vm.Total / (1024 * 1024))

	return info, nil
}

// String renders a one-line host summary.
func (h HostInfo) String() string {
	return fmt.Sprintf("%s (%s/%s, %d cores, %d MB RAM)",
		h.Hostname, h.OS, h.Arch, h.CPUCoresLogical, h.MemoryMB)
}
