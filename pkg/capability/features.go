package capability

// Feature is a hardware feature gated on a minimum compute capability.
// Unlike Requirement, feature gates compare version tuples
// lexicographically, matching how NVIDIA documents them: 5.3 supports a
// feature introduced at 5.3, and so does 6.0.
type Feature struct {
	Name      string `json:"name"`
	MinMajor  int    `json:"min_major"`
	MinMinor  int    `json:"min_minor"`
	Supported bool   `json:"supported"`
}

// featureGates lists notable CUDA features and the capability that
// introduced them.
var featureGates = []Feature{
	{Name: "dynamic parallelism", MinMajor: 3, MinMinor: 5},
	{Name: "fp16 arithmetic", MinMajor: 5, MinMinor: 3},
	{Name: "unified memory with page faulting", MinMajor: 6, MinMinor: 0},
	{Name: "tensor cores", MinMajor: 7, MinMinor: 0},
	{Name: "bf16 arithmetic", MinMajor: 8, MinMinor: 0},
	{Name: "fp8 tensor cores", MinMajor: 8, MinMinor: 9},
}

// versionAtLeast compares version tuples lexicographically.
func versionAtLeast(major, minor, minMajor, minMinor int) bool {
	if major != minMajor {
		return major > minMajor
	}
	return minor >= minMinor
}

// Features returns the feature table evaluated for the given compute
// capability.
func Features(major, minor int) []Feature {
	features := make([]Feature, len(featureGates))
	for i, f := range featureGates {
		f.Supported = versionAtLeast(major, minor, f.MinMajor, f.MinMinor)
		features[i] = f
	}
	return features
}
