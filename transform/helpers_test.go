package transform_test

import (
	"io"
	"math/rand"
	"testing"

	"github.com/katalvlaran/motrans/integrals"
	"github.com/katalvlaran/motrans/iwl"
	"github.com/katalvlaran/motrans/matrix"
	"github.com/katalvlaran/motrans/symmetry"
	"github.com/katalvlaran/motrans/transform"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const tol = 1e-10

var (
	c1Labels  = []string{"A"}
	c2vLabels = []string{"A1", "A2", "B1", "B2"}
	d2hLabels = []string{"Ag", "B1g", "B2g", "B3g", "Au", "B1u", "B2u", "B3u"}
)

// fixture bundles the catalogs and engine of one SO/MO basis pair.
type fixture struct {
	so, mo           *symmetry.Basis
	soPairs, moPairs *symmetry.PairCatalog
	soCat, moCat     *symmetry.Catalog
	coef             *transform.BlockCoefficients
	engine           *transform.Engine
}

// newFixture builds an engine for nso/nmo counts per irrep. A nil rng gives
// identity coefficients (nso must equal nmo); otherwise each block holds
// the leading columns of a random orthogonal matrix.
func newFixture(t testing.TB, labels []string, nso, nmo []int, rng *rand.Rand, opts ...transform.Option) *fixture {
	t.Helper()
	so, err := symmetry.NewBasis(labels, nso)
	require.NoError(t, err)
	mo, err := symmetry.NewBasis(labels, nmo)
	require.NoError(t, err)

	f := &fixture{
		so:      so,
		mo:      mo,
		soPairs: symmetry.NewPairCatalog(so),
		moPairs: symmetry.NewPairCatalog(mo),
		soCat:   symmetry.NewCatalog(so),
		moCat:   symmetry.NewCatalog(mo),
	}
	if rng == nil {
		f.coef, err = transform.IdentityCoefficients(so)
		require.NoError(t, err)
	} else {
		blocks := make([]*matrix.Dense, len(labels))
		for h := range blocks {
			if nso[h] > 0 && nmo[h] > 0 {
				blocks[h] = randomOrthonormal(t, rng, nso[h], nmo[h])
			}
		}
		f.coef = transform.NewBlockCoefficients(blocks)
	}

	f.engine, err = transform.NewEngine(f.config(), opts...)
	require.NoError(t, err)

	return f
}

func (f *fixture) config() transform.Config {
	return transform.Config{
		SOPairs:      f.soPairs,
		MOPairs:      f.moPairs,
		SO:           f.soCat,
		MO:           f.moCat,
		Coefficients: f.coef,
	}
}

// randomOrthonormal returns the first m columns of the Q factor of a random
// n×n matrix.
func randomOrthonormal(t testing.TB, rng *rand.Rand, n, m int) *matrix.Dense {
	t.Helper()
	raw := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			raw.Set(i, j, rng.NormFloat64())
		}
	}
	var qr mat.QR
	qr.Factorize(raw)
	var q mat.Dense
	qr.QTo(&q)

	blk, err := matrix.FromGonum(q.Slice(0, n, 0, m))
	require.NoError(t, err)

	return blk
}

// randomStore fills every symmetry-allowed canonical slot with a value in [-0.5, 0.5).
func randomStore(rng *rand.Rand, pairs symmetry.Indexer) *integrals.PackedStore {
	s := integrals.NewPackedStore(pairs)
	s.Allocate()
	for h := 0; h < pairs.Irreps(); h++ {
		blk := s.Block(h)
		for i := range blk {
			blk[i] = rng.Float64() - 0.5
		}
	}

	return s
}

// dense4 expands a store into a full n⁴ array.
func dense4(t testing.TB, s *integrals.PackedStore, n int) []float64 {
	t.Helper()
	out := make([]float64, n*n*n*n)
	for p := 0; p < n; p++ {
		for q := 0; q < n; q++ {
			for r := 0; r < n; r++ {
				for u := 0; u < n; u++ {
					v, err := s.Get(p, q, r, u)
					require.NoError(t, err)
					out[((p*n+q)*n+r)*n+u] = v
				}
			}
		}
	}

	return out
}

// referenceTEI transforms the full SO tensor one index at a time with the
// full coefficient matrix c (n×m). The result is indexed like dense4 with m.
func referenceTEI(src []float64, c *matrix.Dense) []float64 {
	n, m := c.Rows(), c.Cols()
	cd := c.Data()
	cur, dims := src, [4]int{n, n, n, n}
	for leg := 0; leg < 4; leg++ {
		next := dims
		next[leg] = m
		out := make([]float64, next[0]*next[1]*next[2]*next[3])
		for a := 0; a < next[0]; a++ {
			for b := 0; b < next[1]; b++ {
				for e := 0; e < next[2]; e++ {
					for g := 0; g < next[3]; g++ {
						idx := [4]int{a, b, e, g}
						sum := 0.0
						for p := 0; p < n; p++ {
							in := idx
							in[leg] = p
							off := ((in[0]*dims[1]+in[1])*dims[2]+in[2])*dims[3] + in[3]
							sum += cd[p*m+idx[leg]] * cur[off]
						}
						out[((a*next[1]+b)*next[2]+e)*next[3]+g] = sum
					}
				}
			}
		}
		cur, dims = out, next
	}

	return cur
}

// recordSource replays recs and then io.EOF.
type recordSource struct {
	recs []iwl.Record
}

func (s *recordSource) Next() (iwl.Record, error) {
	if len(s.recs) == 0 {
		return iwl.Record{}, io.EOF
	}
	r := s.recs[0]
	s.recs = s.recs[1:]

	return r, nil
}
