package gpu

import "time"

// Config controls how the detector probes the machine.
type Config struct {
	// Enabled controls whether hardware is probed at all. When false the
	// detector reports no devices without touching any driver.
	Enabled bool

	// PreferredBackend is tried before the platform default order.
	// BackendNone means pure auto-detection.
	PreferredBackend Backend

	// FallbackOnError makes probe failures behave like "no device found"
	// instead of surfacing an error from NewDetector.
	FallbackOnError bool

	// CacheTTL bounds how long enumeration results are reused before the
	// hardware is probed again. Zero disables caching.
	CacheTTL time.Duration
}

// DefaultConfig returns the detection defaults: probing enabled, graceful
// fallback, 30-second probe cache.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		FallbackOnError: true,
		CacheTTL:        30 * time.Second,
	}
}
