package matrix_test

import (
	"testing"

	"github.com/katalvlaran/motrans/matrix"
)

// BenchmarkGemmTT measures the transposed-both product used by the
// half-transform passes.
func BenchmarkGemmTT(b *testing.B) {
	const n = 64
	x, _ := matrix.NewDense(n, n)
	y, _ := matrix.NewDense(n, n)
	dst, _ := matrix.NewDense(n, n)
	for i := range x.Data() {
		x.Data()[i] = float64(i%7) - 3
		y.Data()[i] = float64(i%5) - 2
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = matrix.Gemm(true, true, 1, x, y, 0, dst)
	}
}
