// Package opencl detects GPUs through OpenCL, covering AMD, Intel and
// other vendors that do not expose NVML.
//
// OpenCL reports devices per platform; this package flattens that into a
// single index space so callers enumerate the same way they do for CUDA.
// Like the other backend packages it is detection-only.
//
// Build tags:
//   - Build with: go build -tags opencl (requires an OpenCL ICD loader)
//   - Without the tag: stub implementation, reports no devices.
package opencl
