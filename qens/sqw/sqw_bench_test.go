package sqw

import (
	"testing"

	"github.com/cwbudde/algo-qens/internal/testutil"
	"github.com/cwbudde/algo-qens/qens/param"
)

func BenchmarkDeltaTwoLorentz(b *testing.B) {
	w := testutil.Linspace(-2, 2, 1024)
	q := testutil.Linspace(0.2, 2, 16)

	p := DefaultDeltaTwoLorentzParams()
	p.A0 = param.Scalar(0.2)
	p.A1 = param.Scalar(0.5)
	p.HWHM1 = param.Scalar(0.05)
	p.HWHM2 = param.Scalar(0.5)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = DeltaTwoLorentz(w, q, p)
	}
}

func BenchmarkJumpTranslationalDiffusion(b *testing.B) {
	w := testutil.Linspace(-2, 2, 1024)
	q := testutil.Linspace(0.2, 2, 16)
	p := DefaultJumpTranslationalDiffusionParams()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = JumpTranslationalDiffusion(w, q, p)
	}
}
