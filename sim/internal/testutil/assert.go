// Package testutil provides shared test infrastructure for the bank simulator.
// It consolidates assertion helpers and seeded streams used across the sim/
// test packages.
package testutil

import (
	"math"
	"math/rand"
	"testing"
)

// SeededRand returns a deterministic stream for tests.
func SeededRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

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

// AssertWithin fails the test if got lies outside [lo, hi].
func AssertWithin(t *testing.T, name string, lo, hi, got float64) {
	t.Helper()
	if got < lo || got > hi {
		t.Errorf("%s: got %v, want within [%v, %v]", name, got, lo, hi)
	}
}
