// Package report defines environment verification reports and their
// persistent history.
//
// A Report is the durable record of one doctor run: what host it ran on,
// which devices were detected, and whether the capability check passed.
// Device descriptors are transient everywhere else in gpucheck; a report
// is the one place they are kept, and only when the user asks to save it.
package report

import (
	"fmt"
	"time"

	"github.com/orneryd/gpucheck/pkg/capability"
	"github.com/orneryd/gpucheck/pkg/gpu"
	"github.com/orneryd/gpucheck/pkg/hostinfo"
)

// Report is the outcome of one environment verification run.
type Report struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	Fingerprint string    `json:"fingerprint"`

	Host    hostinfo.HostInfo `json:"host"`
	Backend string            `json:"backend"`
	Devices []gpu.DeviceInfo  `json:"devices"`

	Capability capability.CheckResult `json:"capability"`
	Features   []capability.Feature   `json:"features,omitempty"`

	// Passed means a device was detected and its capability check passed.
	Passed bool `json:"passed"`
}

// DeviceCount returns the number of detected devices.
func (r *Report) DeviceCount() int {
	return len(r.Devices)
}

// Summary renders a one-line verdict for listings.
func (r *Report) Summary() string {
	verdict := "FAIL"
	if r.Passed {
		verdict = "PASS"
	}
	if len(r.Devices) == 0 {
		return fmt.Sprintf("%s  no compatible accelerator detected", verdict)
	}
	return fmt.Sprintf("%s  %d device(s), %s, cc %d.%d",
		verdict, len(r.Devices), r.Devices[0].Name,
		r.Capability.Major, r.Capability.Minor)
}
