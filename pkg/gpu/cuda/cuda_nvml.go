//go:build nvml && linux
// +build nvml,linux

// Package cuda detects NVIDIA GPUs using NVML.
// This is the real implementation, loaded when built with the nvml tag.
package cuda

import (
	"errors"
	"fmt"

	"github.com/NVIDIA/go-nvml/pkg/nvml"
)

// Errors
var (
	ErrCUDANotAvailable = errors.New("cuda: NVML is not available (driver not installed or libnvidia-ml.so not found)")
	ErrNoSuchDevice     = errors.New("cuda: no such device index")
	ErrDeviceQuery      = errors.New("cuda: device property query failed")
)

// Device represents one NVIDIA GPU. Properties are read once at creation
// so accessors never fail after NewDevice succeeds.
type Device struct {
	index    int
	name     string
	uuid     string
	memBytes uint64
	ccMajor  int
	ccMinor  int
	released bool
}

// IsAvailable reports whether NVML can be initialized on this machine.
// Returns false when the NVIDIA driver is not installed.
func IsAvailable() bool {
	if ret := nvml.Init(); ret != nvml.SUCCESS {
		return false
	}
	defer nvml.Shutdown()

	count, ret := nvml.DeviceGetCount()
	return ret == nvml.SUCCESS && count > 0
}

// DeviceCount returns the number of NVIDIA GPUs visible to the driver.
func DeviceCount() int {
	if ret := nvml.Init(); ret != nvml.SUCCESS {
		return 0
	}
	defer nvml.Shutdown()

	count, ret := nvml.DeviceGetCount()
	if ret != nvml.SUCCESS {
		return 0
	}
	return count
}

// DriverVersion returns the installed NVIDIA driver version string,
// or empty string when the driver is unavailable.
func DriverVersion() string {
	if ret := nvml.Init(); ret != nvml.SUCCESS {
		return ""
	}
	defer nvml.Shutdown()

	version, ret := nvml.SystemGetDriverVersion()
	if ret != nvml.SUCCESS {
		return ""
	}
	return version
}

// NewDevice opens the GPU at the given index and snapshots its properties.
// The caller must Release the device when done.
func NewDevice(index int) (*Device, error) {
	if ret := nvml.Init(); ret != nvml.SUCCESS {
		return nil, fmt.Errorf("%w: %s", ErrCUDANotAvailable, nvml.ErrorString(ret))
	}

	count, ret := nvml.DeviceGetCount()
	if ret != nvml.SUCCESS {
		nvml.Shutdown()
		return nil, fmt.Errorf("%w: %s", ErrDeviceQuery, nvml.ErrorString(ret))
	}
	if index < 0 || index >= count {
		nvml.Shutdown()
		return nil, fmt.Errorf("%w: index %d, have %d device(s)", ErrNoSuchDevice, index, count)
	}

	handle, ret := nvml.DeviceGetHandleByIndex(index)
	if ret != nvml.SUCCESS {
		nvml.Shutdown()
		return nil, fmt.Errorf("%w: handle for device %d: %s", ErrDeviceQuery, index, nvml.ErrorString(ret))
	}

	dev := &Device{index: index}

	if name, ret := handle.GetName(); ret == nvml.SUCCESS {
		dev.name = name
	}
	if uuid, ret := handle.GetUUID(); ret == nvml.SUCCESS {
		dev.uuid = uuid
	}
	if mem, ret := handle.GetMemoryInfo(); ret == nvml.SUCCESS {
		dev.memBytes = mem.Total
	}

	major, minor, ret := handle.GetCudaComputeCapability()
	if ret != nvml.SUCCESS {
		nvml.Shutdown()
		return nil, fmt.Errorf("%w: compute capability for device %d: %s", ErrDeviceQuery, index, nvml.ErrorString(ret))
	}
	dev.ccMajor = major
	dev.ccMinor = minor

	return dev, nil
}

// Release drops the NVML reference held by this device. Safe to call twice.
func (d *Device) Release() {
	if d.released {
		return
	}
	d.released = true
	nvml.Shutdown()
}

// ID returns the device index.
func (d *Device) ID() int { return d.index }

// Name returns the marketing name reported by the driver, e.g.
// "NVIDIA GeForce RTX 4090".
func (d *Device) Name() string { return d.name }

// UUID returns the driver-assigned device UUID.
func (d *Device) UUID() string { return d.uuid }

// MemoryBytes returns total device memory in bytes.
func (d *Device) MemoryBytes() uint64 { return d.memBytes }

// MemoryMB returns total device memory in megabytes.
func (d *Device) MemoryMB() int { return int(d.memBytes / (1024 * 1024)) }

// ComputeCapability returns the CUDA compute capability version tuple.
func (d *Device) ComputeCapability() (int, int) { return d.ccMajor, d.ccMinor }
