// Package capability checks CUDA compute capability against requirements.
//
// Compute capability is NVIDIA's hardware feature version: a (major, minor)
// tuple where major tracks the architecture generation and minor tracks
// revisions within it. Software that needs a hardware feature states a
// minimum tuple; this package evaluates whether a detected device meets it.
//
// Usage:
//
//	req := capability.Default() // major >= 2, minor >= 1
//	result := req.Check(major, minor)
//	fmt.Println(result.Message)
package capability

import "fmt"

// Requirement is a minimum compute capability. Each component is checked
// against its own minimum: a device passes when major >= MinMajor AND
// minor >= MinMinor.
type Requirement struct {
	MinMajor int
	MinMinor int
}

// Default returns the baseline requirement used by environment
// verification: major >= 2, minor >= 1.
func Default() Requirement {
	return Requirement{MinMajor: 2, MinMinor: 1}
}

// Satisfied reports whether the given version tuple meets the requirement.
// Both components must meet their respective minimum.
func (r Requirement) Satisfied(major, minor int) bool {
	return major >= r.MinMajor && minor >= r.MinMinor
}

// String formats the requirement as a version, e.g. "2.1".
func (r Requirement) String() string {
	return fmt.Sprintf("%d.%d", r.MinMajor, r.MinMinor)
}

// CheckResult is the outcome of a capability check, with the message to
// show the user.
type CheckResult struct {
	Major     int    `json:"major"`
	Minor     int    `json:"minor"`
	Required  string `json:"required"`
	Satisfied bool   `json:"satisfied"`
	Message   string `json:"message"`
}

// Check evaluates a device's version tuple and returns a result carrying
// one of two fixed messages.
func (r Requirement) Check(major, minor int) CheckResult {
	result := CheckResult{
		Major:     major,
		Minor:     minor,
		Required:  r.String(),
		Satisfied: r.Satisfied(major, minor),
	}

	if result.Satisfied {
		result.Message = fmt.Sprintf(
			"GPU compute capability %d.%d meets the required minimum %s", major, minor, r)
	} else {
		result.Message = fmt.Sprintf(
			"GPU compute capability %d.%d is below the required minimum %s", major, minor, r)
	}

	return result
}
