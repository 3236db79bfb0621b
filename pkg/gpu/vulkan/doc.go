// Package vulkan detects GPUs through the Vulkan API.
//
// Vulkan is the fallback backend: nearly every modern GPU ships a Vulkan
// driver, so a device visible here but not to CUDA or OpenCL still counts
// as a detected accelerator. Detection-only, like the other backends.
//
// Build tags:
//   - Build with: go build -tags vulkan (requires the Vulkan loader)
//   - Without the tag: stub implementation, reports no devices.
package vulkan
