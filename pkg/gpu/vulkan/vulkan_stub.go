//go:build !vulkan
// +build !vulkan

// Package vulkan detects GPUs through the Vulkan API.
// This is a stub implementation for builds without Vulkan support.
package vulkan

import (
	"errors"
)

// Errors
var (
	ErrVulkanNotAvailable = errors.New("vulkan: Vulkan is not available (build without vulkan tag)")
	ErrNoSuchDevice       = errors.New("vulkan: no such device index")
)

// Device represents a Vulkan GPU device (stub).
type Device struct{}

// IsAvailable returns false on builds without Vulkan.
func IsAvailable() bool {
	return false
}

// DeviceCount returns 0 on builds without Vulkan.
func DeviceCount() int {
	return 0
}

// NewDevice returns an error on builds without Vulkan.
func NewDevice(index int) (*Device, error) {
	return nil, ErrVulkanNotAvailable
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
