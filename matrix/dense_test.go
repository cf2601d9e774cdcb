// Package matrix_test contains unit tests for Dense and the GEMM kernels.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/motrans/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseData(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDataLength)

	_, err = matrix.NewDenseRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)

	require.NoError(t, m.Set(1, 0, 7.89))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 7.89, v)
	require.Equal(t, 7.89, m.Data()[2]) // row-major offset 1*2+0
}

// TestStringOutput checks the diagnostic rendering.
func TestStringOutput(t *testing.T) {
	m, err := matrix.NewDenseRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}

// TestGemm_AgainstGonum compares every transpose combination with gonum/mat.
func TestGemm_AgainstGonum(t *testing.T) {
	a, _ := matrix.NewDenseRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	b, _ := matrix.NewDenseRows([][]float64{{7, 8}, {9, 10}, {11, 12}})
	at, err := matrix.FromGonum(a.ToGonum().T())
	require.NoError(t, err)
	bt, err := matrix.FromGonum(b.ToGonum().T())
	require.NoError(t, err)

	var want mat.Dense
	want.Mul(a.ToGonum(), b.ToGonum())
	ref, err := matrix.FromGonum(&want)
	require.NoError(t, err)

	cases := []struct {
		name   string
		tA, tB bool
		x, y   *matrix.Dense
	}{
		{"NN", false, false, a, b},
		{"TN", true, false, at, b},
		{"NT", false, true, a, bt},
		{"TT", true, true, at, bt},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dst, _ := matrix.NewDense(2, 2)
			require.NoError(t, matrix.Gemm(tc.tA, tc.tB, 1, tc.x, tc.y, 0, dst))
			ok, err := matrix.AllClose(dst, ref, 0, 1e-12)
			require.NoError(t, err)
			assert.True(t, ok, "got\n%s", dst)
		})
	}
}

// TestGemm_ShapeMismatch ensures invalid products are rejected, not panicking.
func TestGemm_ShapeMismatch(t *testing.T) {
	a, _ := matrix.NewDense(2, 3)
	b, _ := matrix.NewDense(2, 3)
	dst, _ := matrix.NewDense(2, 3)
	require.ErrorIs(t, matrix.Gemm(false, false, 1, a, b, 0, dst), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.Gemm(false, false, 1, nil, b, 0, dst), matrix.ErrNilMatrix)

	_, err := matrix.Mul(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MulTransA(a, b)
	require.NoError(t, err) // aᵀb is 3×3
}

// TestTraceSymmetry covers Trace, IsSymmetric and IsOrthonormal.
func TestTraceSymmetry(t *testing.T) {
	m, _ := matrix.NewDenseRows([][]float64{{2, 1}, {1, 3}})
	tr, err := matrix.Trace(m)
	require.NoError(t, err)
	assert.Equal(t, 5.0, tr)
	assert.True(t, matrix.IsSymmetric(m, 0))

	rect, _ := matrix.NewDense(2, 3)
	_, err = matrix.Trace(rect)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	rot, _ := matrix.NewDenseRows([][]float64{{0.6, 0.8}, {0.8, -0.6}})
	assert.True(t, matrix.IsOrthonormal(rot, 1e-12))
	assert.False(t, matrix.IsOrthonormal(m, 1e-12))
}
