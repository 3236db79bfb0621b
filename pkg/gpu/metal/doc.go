// Package metal detects Apple GPUs on macOS via the Metal API.
//
// On Apple Silicon every Mac has exactly one GPU sharing unified memory
// with the CPU, so detection here is simpler than on NVIDIA systems:
// there is no compute capability versioning and no separate device memory
// pool to report. Feature support is expressed through Metal GPU families
// instead of version tuples.
//
// Build Requirements:
//   - macOS 10.15+
//   - Xcode Command Line Tools
//   - CGO enabled, build with: go build -tags metal
//
// Without the metal tag (or off macOS) the stub implementation compiles
// instead and reports no devices.
//
// Usage:
//
//	if metal.IsAvailable() {
//	    device, _ := metal.NewDevice(0)
//	    defer device.Release()
//	    fmt.Println(device.Name()) // e.g. "Apple M2 Max"
//	}
package metal
