package conv

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-qens/internal/testutil"
)

func TestDirect(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want []float64
	}{
		{"box", []float64{1, 2, 3}, []float64{1, 1, 1}, []float64{1, 3, 6, 5, 3}},
		{"impulse", []float64{1, 2, 3, 4, 5}, []float64{1}, []float64{1, 2, 3, 4, 5}},
		{"delayed impulse", []float64{1, 2, 3}, []float64{0, 0, 1}, []float64{0, 0, 1, 2, 3}},
		{"symmetric", []float64{1, 2, 1}, []float64{1, 2, 1}, []float64{1, 4, 6, 4, 1}},
		{"zeros skipped", []float64{0, 1, 0}, []float64{2, 3, 4, 5}, []float64{0, 2, 3, 4, 5, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Direct(tt.a, tt.b)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.RequireSliceNearlyEqual(t, got, tt.want, 1e-12)
		})
	}
}

func TestErrors(t *testing.T) {
	if _, err := Direct(nil, []float64{1}); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Direct: expected ErrEmptyInput, got %v", err)
	}
	if _, err := Direct([]float64{1}, nil); !errors.Is(err, ErrEmptyKernel) {
		t.Errorf("Direct: expected ErrEmptyKernel, got %v", err)
	}
	if _, err := Convolve(nil, []float64{1}); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Convolve: expected ErrEmptyInput, got %v", err)
	}
	if _, err := NewOverlapAdd(nil, 0); !errors.Is(err, ErrEmptyKernel) {
		t.Errorf("NewOverlapAdd: expected ErrEmptyKernel, got %v", err)
	}
}

func TestOverlapAddMatchesDirect(t *testing.T) {
	signal := make([]float64, 1000)
	for i := range signal {
		signal[i] = math.Sin(2*math.Pi*float64(i)/37) + 0.25*math.Cos(float64(i))
	}

	kernel := make([]float64, 150)
	for i := range kernel {
		kernel[i] = math.Exp(-float64(i) / 30)
	}

	want, err := Direct(signal, kernel)
	if err != nil {
		t.Fatal(err)
	}

	for _, blockSize := range []int{0, 64, 300} {
		oa, err := NewOverlapAdd(kernel, blockSize)
		if err != nil {
			t.Fatalf("blockSize %d: %v", blockSize, err)
		}
		if oa.FFTSize() < oa.BlockSize()+len(kernel)-1 {
			t.Fatalf("fft size %d too small for block %d", oa.FFTSize(), oa.BlockSize())
		}

		got, err := oa.Process(signal)
		if err != nil {
			t.Fatal(err)
		}
		testutil.RequireSliceNearlyEqual(t, got, want, 1e-9)
	}
}

func TestConvolveSelectsByLength(t *testing.T) {
	a := testutil.Linspace(-1, 1, 300)
	short := []float64{0.25, 0.5, 0.25}
	long := testutil.Linspace(0, 1, 100)

	for _, b := range [][]float64{short, long} {
		got, err := Convolve(a, b)
		if err != nil {
			t.Fatal(err)
		}
		want, _ := Direct(a, b)
		testutil.RequireSliceNearlyEqual(t, got, want, 1e-9)

		swapped, err := Convolve(b, a)
		if err != nil {
			t.Fatal(err)
		}
		testutil.RequireSliceNearlyEqual(t, swapped, want, 1e-9)
	}
}
