//go:build !metal || !darwin
// +build !metal !darwin

// Package metal detects Apple GPUs on macOS.
// This is a stub implementation for builds without Metal support.
package metal

import (
	"errors"
)

// Errors
var (
	ErrMetalNotAvailable = errors.New("metal: Metal is not available (build without metal tag or not macOS)")
	ErrNoSuchDevice      = errors.New("metal: no such device index")
)

// Device represents a Metal GPU device (stub).
type Device struct{}

// IsAvailable returns false on builds without Metal.
func IsAvailable() bool {
	return false
}

// DeviceCount returns 0 on builds without Metal.
func DeviceCount() int {
	return 0
}

// NewDevice returns an error on builds without Metal.
func NewDevice(index int) (*Device, error) {
	return nil, ErrMetalNotAvailable
}

// Release is a no-op stub.
func (d *Device) Release() {}

// ID returns 0.
func (d *Device) ID() int { return 0 }

// Name returns empty string.
func (d *Device) Name() string { return "" }

// MemoryBytes returns 0.
func (d *Device) MemoryBytes() uint64 { return 0 }

// MemoryMB returns 0.
func (d *Device) MemoryMB() int { return 0 }
