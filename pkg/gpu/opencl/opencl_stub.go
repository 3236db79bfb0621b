//go:build !opencl
// +build !opencl

// Package opencl detects GPUs through OpenCL.
// This is a stub implementation for builds without OpenCL support.
package opencl

import (
	"errors"
)

// Errors
var (
	ErrOpenCLNotAvailable = errors.New("opencl: OpenCL is not available (build without opencl tag)")
	ErrNoSuchDevice       = errors.New("opencl: no such device index")
)

// Device represents an OpenCL GPU device (stub).
type Device struct{}

// IsAvailable returns false on builds without OpenCL.
func IsAvailable() bool {
	return false
}

// DeviceCount returns 0 on builds without OpenCL.
func DeviceCount() int {
	return 0
}

// NewDevice returns an error on builds without OpenCL.
func NewDevice(index int) (*Device, error) {
	return nil, ErrOpenCLNotAvailable
}

// Release is a no-op stub.
func (d *Device) Release() {}

// ID returns 0.
func (d *Device) ID() int { return 0 }

// Name returns empty string.
func (d *Device) Name() string { return "" }

// Vendor returns empty string.
func (d *Device) Vendor() string { return "" }

// MemoryBytes returns 0.
func (d *Device) MemoryBytes() uint64 { return 0 }

// MemoryMB returns 0.
func (d *Device) MemoryMB() int { return 0 }
