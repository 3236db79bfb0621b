package capability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	req := Default()
	assert.Equal(t, 2, req.MinMajor)
	assert.Equal(t, 1, req.MinMinor)
	assert.Equal(t, "2.1", req.String())
}

func TestRequirementSatisfied(t *testing.T) {
	req := Default()

	tests := []struct {
		name         string
		major, minor int
		want         bool
	}{
		{"exactly at minimum", 2, 1, true},
		{"both above", 8, 6, true},
		{"major above minor at minimum", 7, 5, true},
		{"major below", 1, 3, false},
		{"minor below", 8, 0, false},
		{"both below", 1, 0, false},
		{"zero tuple", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, req.Satisfied(tt.major, tt.minor),
				"Satisfied(%d, %d)", tt.major, tt.minor)
		})
	}
}

func TestCheck(t *testing.T) {
	t.Run("pass", func(t *testing.T) {
		result := Default().Check(8, 6)
		require.True(t, result.Satisfied)
		assert.Equal(t, 8, result.Major)
		assert.Equal(t, 6, result.Minor)
		assert.Equal(t, "2.1", result.Required)
		assert.Equal(t,
			"GPU compute capability 8.6 meets the required minimum 2.1",
			result.Message)
	})

	t.Run("fail", func(t *testing.T) {
		result := Default().Check(1, 3)
		require.False(t, result.Satisfied)
		assert.Equal(t,
			"GPU compute capability 1.3 is below the required minimum 2.1",
			result.Message)
	})

	t.Run("custom requirement", func(t *testing.T) {
		req := Requirement{MinMajor: 7, MinMinor: 0}
		assert.True(t, req.Check(7, 0).Satisfied)
		assert.False(t, req.Check(6, 1).Satisfied)
	})
}

func TestFeatures(t *testing.T) {
	byName := func(features []Feature, name string) Feature {
		for _, f := range features {
			if f.Name == name {
				return f
			}
		}
		t.Fatalf("feature %q not in table", name)
		return Feature{}
	}

	t.Run("pascal", func(t *testing.T) {
		features := Features(6, 1)
		assert.True(t, byName(features, "dynamic parallelism").Supported)
		assert.True(t, byName(features, "fp16 arithmetic").Supported)
		assert.True(t, byName(features, "unified memory with page faulting").Supported)
		assert.False(t, byName(features, "tensor cores").Supported)
	})

	t.Run("ampere", func(t *testing.T) {
		features := Features(8, 6)
		assert.True(t, byName(features, "tensor cores").Supported)
		assert.True(t, byName(features, "bf16 arithmetic").Supported)
		assert.False(t, byName(features, "fp8 tensor cores").Supported)
	})

	t.Run("ada", func(t *testing.T) {
		features := Features(8, 9)
		assert.True(t, byName(features, "fp8 tensor cores").Supported)
	})

	t.Run("lexicographic gate comparison", func(t *testing.T) {
		// 6.0 supports a 5.3-gated feature even though 0 < 3
		features := Features(6, 0)
		assert.True(t, byName(features, "fp16 arithmetic").Supported)
	})

	t.Run("no device", func(t *testing.T) {
		for _, f := range Features(0, 0) {
			assert.False(t, f.Supported, "feature %q should be unsupported", f.Name)
		}
	})
}
