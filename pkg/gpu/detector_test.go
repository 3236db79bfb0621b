package gpu

import (
	"errors"
	"testing"
)

func TestNewDetector(t *testing.T) {
	t.Run("disabled by config", func(t *testing.T) {
		det, err := NewDetector(&Config{Enabled: false})
		if err != nil {
			t.Fatalf("NewDetector() error = %v", err)
		}
		defer det.Release()

		if det.IsAvailable() {
			t.Error("should not be available when disabled")
		}
		if det.Backend() != BackendNone {
			t.Error("backend should be none")
		}
		if _, err := det.DefaultDevice(); !errors.Is(err, ErrGPUDisabled) {
			t.Errorf("DefaultDevice() error = %v, want ErrGPUDisabled", err)
		}
	})

	t.Run("defaults with fallback", func(t *testing.T) {
		det, err := NewDetector(nil)
		if err != nil {
			t.Fatalf("NewDetector() error = %v", err)
		}
		defer det.Release()

		// With no GPU build tags the detector must fall back gracefully
		if det.IsAvailable() {
			t.Logf("GPU detected: %s (%s)", det.DeviceName(), det.Backend())
		} else {
			t.Log("no GPU detected, CPU-only environment")
		}
	})

	t.Run("device info", func(t *testing.T) {
		det, err := NewDetector(nil)
		if err != nil {
			t.Fatalf("NewDetector() error = %v", err)
		}
		defer det.Release()

		name := det.DeviceName()
		mem := det.DeviceMemoryMB()

		if det.IsAvailable() {
			if name == "" || name == "CPU" {
				t.Error("expected GPU device name")
			}
			t.Logf("Device: %s, Memory: %d MB", name, mem)
		} else {
			if name != "CPU" {
				t.Errorf("DeviceName() = %q, want CPU when unavailable", name)
			}
			if mem != 0 {
				t.Errorf("DeviceMemoryMB() = %d, want 0 when unavailable", mem)
			}
		}
	})
}

func TestDetectorDevices(t *testing.T) {
	det, _ := NewDetector(nil)
	defer det.Release()

	devices := det.Devices()

	if det.IsAvailable() && len(devices) == 0 {
		t.Error("available detector returned no devices")
	}
	if !det.IsAvailable() && len(devices) != 0 {
		t.Error("unavailable detector returned devices")
	}

	for _, dev := range devices {
		if dev.Name == "" {
			t.Errorf("device %d has empty name", dev.Index)
		}
		t.Log(dev.String())
	}
}

func TestDetectorDevicesCached(t *testing.T) {
	det, _ := NewDetector(nil)
	defer det.Release()

	if !det.IsAvailable() {
		t.Skip("no GPU available")
	}

	det.Devices()
	det.Devices()

	stats := det.Stats()
	if stats.HardwareProbes != 1 {
		t.Errorf("HardwareProbes = %d, want 1 (second call should hit cache)", stats.HardwareProbes)
	}
	if stats.CacheHits != 1 {
		t.Errorf("CacheHits = %d, want 1", stats.CacheHits)
	}
}

func TestDetectorDeviceLookup(t *testing.T) {
	det, _ := NewDetector(nil)
	defer det.Release()

	if !det.IsAvailable() {
		if _, err := det.DefaultDevice(); !errors.Is(err, ErrGPUNotAvailable) {
			t.Errorf("DefaultDevice() error = %v, want ErrGPUNotAvailable", err)
		}
		return
	}

	dev, err := det.DefaultDevice()
	if err != nil {
		t.Fatalf("DefaultDevice() error = %v", err)
	}
	if dev.Index != 0 {
		t.Errorf("default device index = %d, want 0", dev.Index)
	}

	if _, err := det.Device(9999); !errors.Is(err, ErrNoSuchDevice) {
		t.Errorf("Device(9999) error = %v, want ErrNoSuchDevice", err)
	}
}

func TestDetectorRelease(t *testing.T) {
	det, _ := NewDetector(nil)

	det.Release()
	if det.IsAvailable() {
		t.Error("detector should not be available after Release")
	}

	// Double release should not panic
	det.Release()
}

func TestBackendString(t *testing.T) {
	tests := []struct {
		backend Backend
		want    string
	}{
		{BackendNone, "none"},
		{BackendCUDA, "cuda"},
		{BackendMetal, "metal"},
		{BackendOpenCL, "opencl"},
		{BackendVulkan, "vulkan"},
		{Backend(42), "none"},
	}

	for _, tt := range tests {
		if got := tt.backend.String(); got != tt.want {
			t.Errorf("Backend(%d).String() = %q, want %q", tt.backend, got, tt.want)
		}
	}
}

func TestParseBackend(t *testing.T) {
	for _, name := range []string{"cuda", "metal", "opencl", "vulkan"} {
		if got := ParseBackend(name); got.String() != name {
			t.Errorf("ParseBackend(%q) = %v", name, got)
		}
	}
	if ParseBackend("tpu") != BackendNone {
		t.Error("unknown backend should parse to BackendNone")
	}
	if ParseBackend("") != BackendNone {
		t.Error("empty backend should parse to BackendNone")
	}
}

func TestDeviceInfoString(t *testing.T) {
	cudaDev := DeviceInfo{
		Index:    0,
		Name:     "NVIDIA GeForce RTX 3080",
		Backend:  BackendCUDA,
		MemoryMB: 10240,
		CCMajor:  8,
		CCMinor:  6,
	}
	want := "device 0: NVIDIA GeForce RTX 3080 (cuda, 10240 MB, cc 8.6)"
	if got := cudaDev.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if cudaDev.ArchFamily() != "ampere" {
		t.Errorf("ArchFamily() = %q, want ampere", cudaDev.ArchFamily())
	}

	metalDev := DeviceInfo{Index: 0, Name: "Apple M2", Backend: BackendMetal, MemoryMB: 16384}
	want = "device 0: Apple M2 (metal, 16384 MB)"
	if got := metalDev.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if metalDev.ArchFamily() != "metal" {
		t.Errorf("ArchFamily() = %q, want metal", metalDev.ArchFamily())
	}
}
