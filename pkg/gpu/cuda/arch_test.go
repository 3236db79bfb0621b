package cuda

import (
	"testing"
)

func TestArchFamily(t *testing.T) {
	tests := []struct {
		major, minor int
		want         string
	}{
		{1, 0, "tesla"},
		{2, 0, "fermi"},
		{2, 1, "fermi"},
		{3, 5, "kepler"},
		{5, 2, "maxwell"},
		{6, 1, "pascal"},
		{7, 0, "volta"},
		{7, 2, "volta"},
		{7, 5, "turing"},
		{8, 0, "ampere"},
		{8, 6, "ampere"},
		{8, 9, "ada-lovelace"},
		{9, 0, "hopper"},
		{10, 0, "blackwell"},
		{12, 0, "blackwell"},
		{4, 0, "undefined"},
		{0, 0, "undefined"},
		{99, 0, "undefined"},
	}

	for _, tt := range tests {
		got := ArchFamily(tt.major, tt.minor)
		if got != tt.want {
			t.Errorf("ArchFamily(%d, %d) = %q, want %q", tt.major, tt.minor, got, tt.want)
		}
	}
}
