package integrals_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/katalvlaran/motrans/integrals"
	"github.com/katalvlaran/motrans/iwl"
	"github.com/katalvlaran/motrans/symmetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sliceSource replays records and then io.EOF (or a custom error).
type sliceSource struct {
	recs []iwl.Record
	end  error
}

func (s *sliceSource) Next() (iwl.Record, error) {
	if len(s.recs) == 0 {
		if s.end != nil {
			return iwl.Record{}, s.end
		}
		return iwl.Record{}, io.EOF
	}
	r := s.recs[0]
	s.recs = s.recs[1:]

	return r, nil
}

func mustPairs(t *testing.T, labels []string, counts []int) *symmetry.PairCatalog {
	t.Helper()
	b, err := symmetry.NewBasis(labels, counts)
	require.NoError(t, err)

	return symmetry.NewPairCatalog(b)
}

// TestAllocate_SizesAndIdempotence checks block sizes and that a second
// Allocate keeps existing values.
func TestAllocate_SizesAndIdempotence(t *testing.T) {
	pc := mustPairs(t, []string{"A1", "A2", "B1", "B2"}, []int{2, 0, 1, 1})
	s := integrals.NewPackedStore(pc)
	assert.False(t, s.Allocated())

	s.Allocate()
	require.True(t, s.Allocated())
	for h := 0; h < pc.Irreps(); h++ {
		n := pc.PairCount(h)
		assert.Len(t, s.Block(h), n*(n+1)/2, "irrep %d", h)
	}

	require.NoError(t, s.Set(0, 0, 0, 0, 1.5))
	s.Allocate()
	v, err := s.Get(0, 0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.5, v)

	s.Release()
	assert.False(t, s.Allocated())
	v, err = s.Get(0, 0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}

// TestReadTwoElectron_EightFold verifies every permutation of a record reads
// back the same value and unwritten slots read zero.
func TestReadTwoElectron_EightFold(t *testing.T) {
	pc := mustPairs(t, []string{"A'", "A\""}, []int{3, 2})
	src := &sliceSource{recs: []iwl.Record{
		{P: 2, Q: 1, R: 4, S: 3, Value: 0.75},
		{P: 3, Q: 0, R: 4, S: 1, Value: -0.5},
		{P: 0, Q: 0, R: 0, S: 0, Value: 1.0},
		{P: 0, Q: 0, R: 0, S: 0, Value: 2.0}, // last write wins
	}}
	s := integrals.NewPackedStore(pc)
	n, err := s.ReadTwoElectron(src)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	perms := func(p, q, r, u int) [][4]int {
		return [][4]int{
			{p, q, r, u}, {q, p, r, u}, {p, q, u, r}, {q, p, u, r},
			{r, u, p, q}, {u, r, p, q}, {r, u, q, p}, {u, r, q, p},
		}
	}
	for _, ix := range perms(2, 1, 4, 3) {
		v, err := s.Get(ix[0], ix[1], ix[2], ix[3])
		require.NoError(t, err)
		assert.Equal(t, 0.75, v, "%v", ix)
	}
	for _, ix := range perms(3, 0, 4, 1) {
		v, _ := s.Get(ix[0], ix[1], ix[2], ix[3])
		assert.Equal(t, -0.5, v, "%v", ix)
	}
	v, _ := s.Get(0, 0, 0, 0)
	assert.Equal(t, 2.0, v)

	v, err = s.Get(1, 1, 2, 2) // allocated, never written
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)

	v, err = s.Get(3, 0, 0, 0) // symmetry-forbidden
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}

// TestReadTwoElectron_Errors covers range, symmetry and stream errors.
func TestReadTwoElectron_Errors(t *testing.T) {
	pc := mustPairs(t, []string{"A'", "A\""}, []int{2, 1})

	s := integrals.NewPackedStore(pc)
	_, err := s.ReadTwoElectron(&sliceSource{recs: []iwl.Record{{P: 5}}})
	assert.ErrorIs(t, err, symmetry.ErrOrbitalOutOfRange)

	_, err = s.ReadTwoElectron(&sliceSource{recs: []iwl.Record{{P: 2, Q: 0, R: 0, S: 0, Value: 1}}})
	assert.ErrorIs(t, err, integrals.ErrSymmetryForbidden)

	n, err := s.ReadTwoElectron(&sliceSource{
		recs: []iwl.Record{{Value: 1}},
		end:  io.ErrUnexpectedEOF,
	})
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Equal(t, 1, n)

	_, err = s.Get(0, 0, 9, 0)
	assert.ErrorIs(t, err, symmetry.ErrOrbitalOutOfRange)
	assert.ErrorIs(t, s.Set(2, 0, 1, 1, 1), integrals.ErrSymmetryForbidden)
}

// TestReadTwoElectron_FromStream reads through a real iwl stream.
func TestReadTwoElectron_FromStream(t *testing.T) {
	pc := mustPairs(t, []string{"A"}, []int{3})
	var buf bytes.Buffer
	w := iwl.NewWriter(&buf, iwl.WithCapacity(2))
	for p := 0; p < 3; p++ {
		require.NoError(t, w.Write(iwl.Record{P: p, Q: p, R: p, S: p, Value: float64(p + 1)}))
	}
	require.NoError(t, w.Close())

	s := integrals.NewPackedStore(pc)
	n, err := s.ReadTwoElectron(iwl.NewReader(&buf, iwl.WithCapacity(2)))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	v, _ := s.Get(2, 2, 2, 2)
	assert.Equal(t, 3.0, v)
}

// TestEachAndChecksum checks canonical iteration and checksum sensitivity.
func TestEachAndChecksum(t *testing.T) {
	pc := mustPairs(t, []string{"A"}, []int{2})
	a := integrals.NewPackedStore(pc)
	b := integrals.NewPackedStore(pc)
	require.NoError(t, a.Set(1, 0, 0, 0, 0.5))
	require.NoError(t, b.Set(0, 0, 0, 1, 0.5))
	assert.Equal(t, a.Checksum(), b.Checksum())

	var got [][4]int
	require.NoError(t, a.Each(func(p, q, r, u int, v float64) error {
		got = append(got, [4]int{p, q, r, u})
		assert.Equal(t, 0.5, v)
		return nil
	}))
	assert.Equal(t, [][4]int{{1, 0, 0, 0}}, got)

	stop := errors.New("stop")
	assert.ErrorIs(t, a.Each(func(int, int, int, int, float64) error { return stop }), stop)

	require.NoError(t, b.Set(1, 1, 1, 1, 1e-12))
	assert.NotEqual(t, a.Checksum(), b.Checksum())
}
