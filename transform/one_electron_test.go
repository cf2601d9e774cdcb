package transform_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/motrans/integrals"
	"github.com/katalvlaran/motrans/matrix"
	"github.com/katalvlaran/motrans/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func randomOneElectron(t *testing.T, rng *rand.Rand, n int) *integrals.OneElectron {
	t.Helper()
	h, err := integrals.NewOneElectron(n)
	require.NoError(t, err)
	for p := 0; p < n; p++ {
		for q := 0; q <= p; q++ {
			require.NoError(t, h.Set(p, q, rng.Float64()-0.5))
		}
	}

	return h
}

// TestOneElectronDense_Rotation rotates diag(2,3) by an orthonormal 2×2
// mixing matrix: trace and symmetry survive.
func TestOneElectronDense_Rotation(t *testing.T) {
	h, err := integrals.NewOneElectron(2)
	require.NoError(t, err)
	require.NoError(t, h.Set(0, 0, 2.0))
	require.NoError(t, h.Set(1, 1, 3.0))
	c, err := matrix.NewDenseRows([][]float64{{0.6, 0.8}, {0.8, -0.6}})
	require.NoError(t, err)

	out, err := transform.OneElectronDense(h, c)
	require.NoError(t, err)

	tr, err := matrix.Trace(out.Matrix())
	require.NoError(t, err)
	assert.InDelta(t, 5.0, tr, tol)
	assert.True(t, matrix.IsSymmetric(out.Matrix(), tol))

	want := [][]float64{{2.64, -0.48}, {-0.48, 2.36}}
	for i := range want {
		for j := range want[i] {
			v, err := out.At(i, j)
			require.NoError(t, err)
			assert.InDelta(t, want[i][j], v, tol)
		}
	}
}

func TestTransformOneElectron_Identity(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	f := newFixture(t, c2vLabels, []int{2, 1, 0, 2}, []int{2, 1, 0, 2}, nil)
	h := randomOneElectron(t, rng, f.so.Orbitals())

	out, err := f.engine.TransformOneElectron(h)
	require.NoError(t, err)
	ok, err := matrix.AllClose(h.Matrix(), out.Matrix(), 0, tol)
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestTransformOneElectron_Reference compares with Cᵀ·H·C computed by gonum.
func TestTransformOneElectron_Reference(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	f := newFixture(t, d2hLabels, []int{2, 1, 0, 1, 0, 1, 1, 2}, []int{1, 1, 0, 0, 0, 1, 1, 2}, rng)
	h := randomOneElectron(t, rng, f.so.Orbitals())

	out, err := f.engine.TransformOneElectron(h)
	require.NoError(t, err)
	assert.Equal(t, f.mo.Orbitals(), out.Size())
	assert.True(t, matrix.IsSymmetric(out.Matrix(), tol))

	c, err := f.engine.FullCoefficients()
	require.NoError(t, err)
	var hc, want mat.Dense
	hc.Mul(h.Matrix().ToGonum(), c.ToGonum())
	want.Mul(c.ToGonum().T(), &hc)
	assert.True(t, mat.EqualApprox(&want, out.Matrix().ToGonum(), tol))
}

func TestTransformOneElectron_Errors(t *testing.T) {
	f := newFixture(t, c1Labels, []int{3}, []int{3}, nil)

	_, err := f.engine.TransformOneElectron(nil)
	require.ErrorIs(t, err, transform.ErrNilDependency)

	wrong, err := integrals.NewOneElectron(2)
	require.NoError(t, err)
	_, err = f.engine.TransformOneElectron(wrong)
	require.ErrorIs(t, err, transform.ErrShape)

	_, err = transform.OneElectronDense(wrong, nil)
	require.ErrorIs(t, err, transform.ErrNilDependency)
}
