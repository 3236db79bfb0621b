//go:build !nvml || !linux
// +build !nvml !linux

// Package cuda detects NVIDIA GPUs using NVML.
// This is a stub implementation for builds without NVML support.
package cuda

import (
	"errors"
)

// Errors
var (
	ErrCUDANotAvailable = errors.New("cuda: NVML is not available (build without nvml tag or unsupported platform)")
	ErrNoSuchDevice     = errors.New("cuda: no such device index")
	ErrDeviceQuery      = errors.New("cuda: device property query failed")
)

// Device represents a CUDA GPU device (stub).
type Device struct{}

// IsAvailable returns false on builds without NVML.
func IsAvailable() bool {
	return false
}

// DeviceCount returns 0 on builds without NVML.
func DeviceCount() int {
	return 0
}

// DriverVersion returns empty string on builds without NVML.
func DriverVersion() string {
	return ""
}

// NewDevice returns an error on builds without NVML.
func NewDevice(index int) (*Device, error) {
	return nil, ErrCUDANotAvailable
}

// Release is a no-op stub.
func (d *Device) Release() {}

// ID returns 0.
func (d *Device) ID() int { return 0 }

// Name returns empty string.
func (d *Device) Name() string { return "" }

// UUID returns empty string.
func (d *Device) UUID() string { return "" }

// MemoryBytes returns 0.
func (d *Device) MemoryBytes() uint64 { return 0 }

// MemoryMB returns 0.
func (d *Device) MemoryMB() int { return 0 }

// ComputeCapability returns 0, 0.
func (d *Device) ComputeCapability() (int, int) { return 0, 0 }
