// Package gpu detects GPU accelerators for gpucheck environment verification.
// This file provides the high-level detector that selects the best backend.
package gpu

import (
	"runtime"
	"sync"

	"github.com/orneryd/gpucheck/pkg/cache"
	"github.com/orneryd/gpucheck/pkg/gpu/cuda"
	"github.com/orneryd/gpucheck/pkg/gpu/metal"
	"github.com/orneryd/gpucheck/pkg/gpu/opencl"
	"github.com/orneryd/gpucheck/pkg/gpu/vulkan"
)

// Detector probes the machine for GPU accelerators.
// It automatically selects the best available backend (Metal on macOS,
// CUDA/OpenCL/Vulkan on other platforms) and answers the two questions
// every environment check starts with: is a device present, and what is it.
//
// Usage:
//
//	det, err := gpu.NewDetector(nil)
//	if err != nil {
//		// No accelerator; callers decide what that means
//	}
//	defer det.Release()
//
//	if det.IsAvailable() {
//		for _, dev := range det.Devices() {
//			fmt.Println(dev)
//		}
//	}
type Detector struct {
	backend Backend
	config  *Config

	// CUDA-specific (NVIDIA)
	cudaDevice *cuda.Device

	// Metal-specific (macOS)
	metalDevice *metal.Device

	// OpenCL-specific (AMD, Intel, cross-platform)
	openclDevice *opencl.Device

	// Vulkan-specific (cross-platform fallback)
	vulkanDevice *vulkan.Device

	cache *cache.ProbeCache

	// Stats
	mu    sync.RWMutex
	stats DetectorStats
}

// DetectorStats tracks probe activity.
type DetectorStats struct {
	HardwareProbes int64 // enumerations that touched the driver
	CacheHits      int64 // enumerations served from the probe cache
	DevicesFound   int   // device count from the most recent enumeration
}

// NewDetector creates a GPU detector and probes for a backend.
//
// Backends are tried in platform order:
//   - macOS: Metal
//   - Linux/Windows: CUDA, OpenCL, Vulkan
//
// If no device is found and config.FallbackOnError is true (default), the
// detector is returned in not-available state rather than failing, which
// is what a diagnostics tool wants: "no device" is a finding, not an error.
func NewDetector(config *Config) (*Detector, error) {
	if config == nil {
		config = DefaultConfig()
	}

	det := &Detector{
		config:  config,
		backend: BackendNone,
		cache:   cache.NewProbeCache(16, config.CacheTTL),
	}

	if !config.Enabled {
		return det, nil
	}

	if err := det.initBackend(config.PreferredBackend); err != nil {
		if config.FallbackOnError {
			return det, nil
		}
		return nil, err
	}

	return det, nil
}

// initBackend probes backends in preference order until one reports a device.
func (d *Detector) initBackend(preferred Backend) error {
	var backends []Backend

	if preferred != BackendNone {
		backends = append(backends, preferred)
	}

	switch runtime.GOOS {
	case "darwin":
		backends = append(backends, BackendMetal)
	default:
		backends = append(backends, BackendCUDA, BackendOpenCL, BackendVulkan)
	}

	for _, backend := range backends {
		if err := d.tryBackend(backend); err == nil {
			return nil
		}
	}

	return ErrGPUNotAvailable
}

// tryBackend attempts to initialize a specific backend.
func (d *Detector) tryBackend(backend Backend) error {
	switch backend {
	case BackendCUDA:
		return d.initCUDA()
	case BackendMetal:
		return d.initMetal()
	case BackendOpenCL:
		return d.initOpenCL()
	case BackendVulkan:
		return d.initVulkan()
	default:
		return ErrGPUNotAvailable
	}
}

// initCUDA initializes the CUDA backend.
func (d *Detector) initCUDA() error {
	if !cuda.IsAvailable() {
		return ErrGPUNotAvailable
	}

	device, err := cuda.NewDevice(0)
	if err != nil {
		return err
	}

	d.cudaDevice = device
	d.backend = BackendCUDA
	return nil
}

// initMetal initializes the Metal backend (macOS only).
func (d *Detector) initMetal() error {
	if !metal.IsAvailable() {
		return ErrGPUNotAvailable
	}

	device, err := metal.NewDevice(0)
	if err != nil {
		return err
	}

	d.metalDevice = device
	d.backend = BackendMetal
	return nil
}

// initOpenCL initializes the OpenCL backend.
func (d *Detector) initOpenCL() error {
	if !opencl.IsAvailable() {
		return ErrGPUNotAvailable
	}

	device, err := opencl.NewDevice(0)
	if err != nil {
		return err
	}

	d.openclDevice = device
	d.backend = BackendOpenCL
	return nil
}

// initVulkan initializes the Vulkan backend.
func (d *Detector) initVulkan() error {
	if !vulkan.IsAvailable() {
		return ErrGPUNotAvailable
	}

	device, err := vulkan.NewDevice(0)
	if err != nil {
		return err
	}

	d.vulkanDevice = device
	d.backend = BackendVulkan
	return nil
}

// Release frees all driver handles held by the detector.
func (d *Detector) Release() {
	if d.cudaDevice != nil {
		d.cudaDevice.Release()
		d.cudaDevice = nil
	}
	if d.metalDevice != nil {
		d.metalDevice.Release()
		d.metalDevice = nil
	}
	if d.openclDevice != nil {
		d.openclDevice.Release()
		d.openclDevice = nil
	}
	if d.vulkanDevice != nil {
		d.vulkanDevice.Release()
		d.vulkanDevice = nil
	}
	d.backend = BackendNone
	d.cache.Clear()
}

// IsAvailable returns whether at least one accelerator was detected.
func (d *Detector) IsAvailable() bool {
	return d.backend != BackendNone
}

// Backend returns the active detection backend.
func (d *Detector) Backend() Backend {
	return d.backend
}

// DeviceName returns the default device's name, or "CPU" when no
// accelerator was detected.
func (d *Detector) DeviceName() string {
	switch d.backend {
	case BackendCUDA:
		if d.cudaDevice != nil {
			return d.cudaDevice.Name()
		}
	case BackendMetal:
		if d.metalDevice != nil {
			return d.metalDevice.Name()
		}
	case BackendOpenCL:
		if d.openclDevice != nil {
			return d.openclDevice.Name()
		}
	case BackendVulkan:
		if d.vulkanDevice != nil {
			return d.vulkanDevice.Name()
		}
	}
	return "CPU"
}

// DeviceMemoryMB returns the default device's memory in megabytes.
func (d *Detector) DeviceMemoryMB() int {
	switch d.backend {
	case BackendCUDA:
		if d.cudaDevice != nil {
			return d.cudaDevice.MemoryMB()
		}
	case BackendMetal:
		if d.metalDevice != nil {
			return d.metalDevice.MemoryMB()
		}
	case BackendOpenCL:
		if d.openclDevice != nil {
			return d.openclDevice.MemoryMB()
		}
	case BackendVulkan:
		if d.vulkanDevice != nil {
			return d.vulkanDevice.MemoryMB()
		}
	}
	return 0
}

// Devices enumerates every detected device on the active backend.
//
// Results are served from the probe cache within the configured TTL; a
// returned slice is a transient snapshot the caller may keep or discard.
// An empty slice means no device was detected.
func (d *Detector) Devices() []DeviceInfo {
	if !d.IsAvailable() {
		return nil
	}

	key := d.cache.Key(d.backend.String(), "devices")
	if cached, ok := d.cache.Get(key); ok {
		d.mu.Lock()
		d.stats.CacheHits++
		d.mu.Unlock()
		return cached.([]DeviceInfo)
	}

	devices := d.enumerate()

	d.mu.Lock()
	d.stats.HardwareProbes++
	d.stats.DevicesFound = len(devices)
	d.mu.Unlock()

	d.cache.Put(key, devices)
	return devices
}

// enumerate walks the active backend's device list.
func (d *Detector) enumerate() []DeviceInfo {
	switch d.backend {
	case BackendCUDA:
		return d.enumerateCUDA()
	case BackendMetal:
		if d.metalDevice == nil {
			return nil
		}
		return []DeviceInfo{{
			Index:    d.metalDevice.ID(),
			Name:     d.metalDevice.Name(),
			Backend:  BackendMetal,
			MemoryMB: d.metalDevice.MemoryMB(),
		}}
	case BackendOpenCL:
		if d.openclDevice == nil {
			return nil
		}
		return []DeviceInfo{{
			Index:    d.openclDevice.ID(),
			Name:     d.openclDevice.Name(),
			Backend:  BackendOpenCL,
			MemoryMB: d.openclDevice.MemoryMB(),
		}}
	case BackendVulkan:
		if d.vulkanDevice == nil {
			return nil
		}
		return []DeviceInfo{{
			Index:    d.vulkanDevice.ID(),
			Name:     d.vulkanDevice.Name(),
			Backend:  BackendVulkan,
			MemoryMB: d.vulkanDevice.MemoryMB(),
		}}
	default:
		return nil
	}
}

// enumerateCUDA opens every CUDA device in turn and snapshots it.
// NVML refcounts initialization, so briefly opening each device while the
// detector already holds device 0 is safe.
func (d *Detector) enumerateCUDA() []DeviceInfo {
	count := cuda.DeviceCount()
	if count == 0 {
		return nil
	}

	driver := cuda.DriverVersion()
	devices := make([]DeviceInfo, 0, count)

	for i := 0; i < count; i++ {
		dev, err := cuda.NewDevice(i)
		if err != nil {
			continue
		}

		major, minor := dev.ComputeCapability()
		devices = append(devices, DeviceInfo{
			Index:         dev.ID(),
			Name:          dev.Name(),
			UUID:          dev.UUID(),
			Backend:       BackendCUDA,
			MemoryMB:      dev.MemoryMB(),
			CCMajor:       major,
			CCMinor:       minor,
			DriverVersion: driver,
		})
		dev.Release()
	}

	return devices
}

// DefaultDevice returns the descriptor of device 0 on the active backend.
func (d *Detector) DefaultDevice() (DeviceInfo, error) {
	if !d.config.Enabled {
		return DeviceInfo{}, ErrGPUDisabled
	}

	devices := d.Devices()
	if len(devices) == 0 {
		return DeviceInfo{}, ErrGPUNotAvailable
	}
	return devices[0], nil
}

// Device returns the descriptor of the device at the given index.
func (d *Detector) Device(index int) (DeviceInfo, error) {
	devices := d.Devices()
	for _, dev := range devices {
		if dev.Index == index {
			return dev, nil
		}
	}
	return DeviceInfo{}, ErrNoSuchDevice
}

// Stats returns probe statistics.
func (d *Detector) Stats() DetectorStats {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.stats
}

// CacheStats returns the probe cache's hit/miss statistics.
func (d *Detector) CacheStats() cache.CacheStats {
	return d.cache.Stats()
}
