// Package testutil provides shared test helpers for the simulator packages.
package testutil

import (
	"math"
	"testing"
)

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}

// AssertIntsEqual compares two int slices element by element.
func AssertIntsEqual(t *testing.T, name string, want, got []int) {
	t.Helper()
	if len(want) != len(got) {
		t.Errorf("%s: got %v (len %d), want %v (len %d)", name, got, len(got), want, len(want))
		return
	}
	for i := range want {
		if want[i] != got[i] {
			t.Errorf("%s[%d]: got %d, want %d (full: got %v, want %v)", name, i, got[i], want[i], got, want)
			return
		}
	}
}
