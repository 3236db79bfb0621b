// Package cuda detects NVIDIA GPUs and reports their properties via NVML.
//
// This package answers two questions about the local machine:
//   - Is at least one CUDA-capable device present?
//   - What are its properties (name, memory, compute capability, driver)?
//
// It deliberately stops at detection. There is no kernel launching, no
// memory management, no runtime of any kind.
//
// Detection uses the NVIDIA Management Library (NVML) through
// github.com/NVIDIA/go-nvml, which loads libnvidia-ml.so at runtime.
// NVML ships with the NVIDIA driver, so no CUDA Toolkit install is needed
// on the probed machine.
//
// Build tags:
//   - Build with: go build -tags nvml (Linux only)
//   - Without the tag: builds with stub implementations that report
//     no devices, so callers degrade gracefully on any platform.
//
// Example usage:
//
//	if cuda.IsAvailable() {
//	    device, err := cuda.NewDevice(0)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer device.Release()
//
//	    major, minor := device.ComputeCapability()
//	    fmt.Printf("%s: compute capability %d.%d (%s)\n",
//	        device.Name(), major, minor, cuda.ArchFamily(major, minor))
//	}
package cuda
