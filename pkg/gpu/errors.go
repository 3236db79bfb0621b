package gpu

import "errors"

// Errors returned by the detection layer.
var (
	// ErrGPUNotAvailable is returned when no backend could find a device.
	ErrGPUNotAvailable = errors.New("gpu: no compatible accelerator available")

	// ErrGPUDisabled is returned when detection is requested on a detector
	// created with Enabled: false.
	ErrGPUDisabled = errors.New("gpu: detection disabled by configuration")

	// ErrNoSuchDevice is returned when a device index is out of range for
	// the active backend.
	ErrNoSuchDevice = errors.New("gpu: no such device index")
)
