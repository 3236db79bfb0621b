// Package doctor runs full environment verification: device presence,
// compute capability, host facts.
//
// A doctor run is the programmatic version of the checks an engineer
// performs by hand when setting up a GPU machine: "is a device visible?",
// "is it new enough?", "what is the host?". The result is a report.Report
// that can be rendered for a terminal or saved to history.
//
// Usage:
//
//	doc, err := doctor.New(doctor.Options{})
//	if err != nil {
//		return err
//	}
//	defer doc.Close()
//
//	rep, err := doc.Run(ctx)
//	doctor.RenderReport(os.Stdout, rep)
package doctor

import (
	"context"
	"time"

	"github.com/orneryd/gpucheck/pkg/capability"
	"github.com/orneryd/gpucheck/pkg/gpu"
	"github.com/orneryd/gpucheck/pkg/hostinfo"
	"github.com/orneryd/gpucheck/pkg/logging"
	"github.com/orneryd/gpucheck/pkg/report"
)

// NoDeviceMessage is printed when detection finds no accelerator.
const NoDeviceMessage = "No compatible GPU device was detected on this machine."

// Options configures a doctor run.
type Options struct {
	// Requirement is the minimum compute capability. Zero value means
	// capability.Default().
	Requirement capability.Requirement

	// PreferredBackend is probed before the platform default order.
	PreferredBackend gpu.Backend

	// DeviceIndex selects which device the capability check runs against.
	DeviceIndex int

	// CacheTTL bounds reuse of probe results. Zero keeps the detector
	// default.
	CacheTTL time.Duration
}

// Doctor owns a detector for the duration of one or more runs.
type Doctor struct {
	opts Options
	det  *gpu.Detector
}

// New creates a doctor and probes for an accelerator. A machine with no
// GPU still gets a working doctor; the absence shows up in the report.
func New(opts Options) (*Doctor, error) {
	if opts.Requirement == (capability.Requirement{}) {
		opts.Requirement = capability.Default()
	}

	cfg := gpu.DefaultConfig()
	cfg.PreferredBackend = opts.PreferredBackend
	if opts.CacheTTL > 0 {
		cfg.CacheTTL = opts.CacheTTL
	}

	det, err := gpu.NewDetector(cfg)
	if err != nil {
		return nil, err
	}

	return &Doctor{opts: opts, det: det}, nil
}

// Detector exposes the underlying detector, mainly for commands that only
// need enumeration.
func (d *Doctor) Detector() *gpu.Detector {
	return d.det
}

// Run executes the verification sequence and assembles a report.
//
// The sequence mirrors what it verifies, in order: host facts, device
// presence, capability of the selected device. Steps degrade rather than
// abort: a host-info failure still produces a device report.
func (d *Doctor) Run(ctx context.Context) (*report.Report, error) {
	rep := &report.Report{
		CreatedAt:   time.Now(),
		Fingerprint: hostinfo.Fingerprint(),
		Backend:     d.det.Backend().String(),
	}

	host, err := hostinfo.Collect(ctx)
	if err != nil {
		logging.ErrorLogger.Err(err).Msg("host info collection incomplete")
	}
	rep.Host = host

	rep.Devices = d.det.Devices()
	if len(rep.Devices) == 0 {
		logging.InfoLogger.Info().Msg("no accelerator detected")
		rep.Capability = capability.CheckResult{
			Required:  d.opts.Requirement.String(),
			Satisfied: false,
			Message:   NoDeviceMessage,
		}
		return rep, nil
	}

	dev, err := d.det.Device(d.opts.DeviceIndex)
	if err != nil {
		// Fall back to the default device rather than failing the run
		dev = rep.Devices[0]
	}

	major, minor := dev.ComputeCapability()
	rep.Capability = d.opts.Requirement.Check(major, minor)
	rep.Features = capability.Features(major, minor)
	rep.Passed = rep.Capability.Satisfied

	logging.InfoLogger.Info().
		Str("device", dev.Name).
		Str("backend", rep.Backend).
		Bool("passed", rep.Passed).
		Msg("verification run complete")

	return rep, nil
}

// Close releases the detector's driver handles.
func (d *Doctor) Close() {
	d.det.Release()
}
