package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance). A NaN matches only NaN.
func RequireSliceNearlyEqual(t testing.TB, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if msg, ok := nearlyEqual(got[i], want[i], eps); !ok {
			t.Fatalf("index %d: %s", i, msg)
		}
	}
}

// Rows is a q x w grid of samples such as *sqw.Spectrum.
type Rows interface {
	NQ() int
	Row(i int) []float64
}

// RequireRowsNearlyEqual compares every row of got with the matching row of
// want under RequireSliceNearlyEqual rules.
func RequireRowsNearlyEqual(t testing.TB, got Rows, want [][]float64, eps float64) {
	t.Helper()
	if got.NQ() != len(want) {
		t.Fatalf("row count mismatch: got %d, want %d", got.NQ(), len(want))
	}
	for i := range want {
		row := got.Row(i)
		if len(row) != len(want[i]) {
			t.Fatalf("row %d: length mismatch: got %d, want %d", i, len(row), len(want[i]))
		}
		for j := range row {
			if msg, ok := nearlyEqual(row[j], want[i][j], eps); !ok {
				t.Fatalf("row %d, index %d: %s", i, j, msg)
			}
		}
	}
}

func nearlyEqual(got, want, eps float64) (string, bool) {
	if got == want {
		return "", true
	}
	if math.IsNaN(got) || math.IsNaN(want) {
		if math.IsNaN(got) && math.IsNaN(want) {
			return "", true
		}
		return fmt.Sprintf("got %v, want %v", got, want), false
	}
	if diff := math.Abs(got - want); diff > eps {
		return fmt.Sprintf("got %v, want %v (diff %v > eps %v)", got, want, diff, eps), false
	}
	return "", true
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t testing.TB, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireNonNegative fails t if any element is below zero.
func RequireNonNegative(t testing.TB, data []float64) {
	t.Helper()
	for i, v := range data {
		if v < 0 {
			t.Fatalf("index %d: negative value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
