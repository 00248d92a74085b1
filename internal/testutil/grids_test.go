package testutil

import (
	"math"
	"testing"
)

func TestLinspace(t *testing.T) {
	got := Linspace(-1, 1, 5)
	RequireSliceNearlyEqual(t, got, []float64{-1, -0.5, 0, 0.5, 1}, 1e-15)

	if one := Linspace(3, 7, 1); len(one) != 1 || one[0] != 3 {
		t.Fatalf("Linspace n=1 = %v, want [3]", one)
	}
	if Linspace(0, 1, 0) != nil {
		t.Fatal("Linspace n=0 should return nil")
	}
}

func TestSymmetricGridHasExactZero(t *testing.T) {
	g := SymmetricGrid(100, 0.01)
	if len(g) != 201 {
		t.Fatalf("len = %d, want 201", len(g))
	}
	if g[100] != 0 {
		t.Fatalf("centre = %v, want 0", g[100])
	}
	if math.Abs(g[200]-1) > 1e-12 {
		t.Fatalf("last = %v, want 1", g[200])
	}
}

func TestRiemannSum(t *testing.T) {
	if got := RiemannSum([]float64{1, 2, 3}, 0.5); got != 3 {
		t.Fatalf("RiemannSum = %v, want 3", got)
	}
}
