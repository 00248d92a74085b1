package conv

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-qens/internal/testutil"
)

func BenchmarkConvolve(b *testing.B) {
	signal := testutil.Linspace(-1, 1, 2048)

	for _, m := range []int{16, 64, 256, 1024} {
		kernel := testutil.Linspace(0, 1, m)
		b.Run(fmt.Sprintf("kernel=%d", m), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = Convolve(signal, kernel)
			}
		})
	}
}
