package gpu

import (
	"fmt"

	"github.com/orneryd/gpucheck/pkg/gpu/cuda"
)

// Backend identifies a GPU detection backend.
type Backend int

const (
	BackendNone Backend = iota
	BackendCUDA
	BackendMetal
	BackendOpenCL
	BackendVulkan
)

// String returns the backend name used in logs and reports.
func (b Backend) String() string {
	switch b {
	case BackendCUDA:
		return "cuda"
	case BackendMetal:
		return "metal"
	case BackendOpenCL:
		return "opencl"
	case BackendVulkan:
		return "vulkan"
	default:
		return "none"
	}
}

// ParseBackend converts a backend name to a Backend. Unknown names map to
// BackendNone, which means "auto-detect" to the detector.
func ParseBackend(name string) Backend {
	switch name {
	case "cuda":
		return BackendCUDA
	case "metal":
		return BackendMetal
	case "opencl":
		return BackendOpenCL
	case "vulkan":
		return BackendVulkan
	default:
		return BackendNone
	}
}

// DeviceInfo describes one detected accelerator.
//
// It is a transient snapshot: created by an enumeration query, consumed by
// a renderer or a report, then discarded. Holding one does not keep any
// driver handle open.
type DeviceInfo struct {
	Index   int     `json:"index"`
	Name    string  `json:"name"`
	UUID    string  `json:"uuid,omitempty"`
	Backend Backend `json:"-"`

	MemoryMB int `json:"memory_mb"`

	// Compute capability is CUDA-specific; both components are zero for
	// other backends.
	CCMajor int `json:"cc_major"`
	CCMinor int `json:"cc_minor"`

	DriverVersion string `json:"driver_version,omitempty"`
}

// ComputeCapability returns the CUDA compute capability version tuple.
func (d DeviceInfo) ComputeCapability() (int, int) {
	return d.CCMajor, d.CCMinor
}

// ArchFamily returns the architecture family name for CUDA devices, or
// the backend name for everything else.
func (d DeviceInfo) ArchFamily() string {
	if d.Backend == BackendCUDA {
		return cuda.ArchFamily(d.CCMajor, d.CCMinor)
	}
	return d.Backend.String()
}

// String renders a one-line device summary, e.g.
// "device 0: NVIDIA GeForce RTX 3080 (cuda, 10240 MB, cc 8.6)".
func (d DeviceInfo) String() string {
	if d.Backend == BackendCUDA {
		return fmt.Sprintf("device %d: %s (%s, %d MB, cc %d.%d)",
			d.Index, d.Name, d.Backend, d.MemoryMB, d.CCMajor, d.CCMinor)
	}
	return fmt.Sprintf("device %d: %s (%s, %d MB)", d.Index, d.Name, d.Backend, d.MemoryMB)
}
