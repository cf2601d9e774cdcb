// SPDX-License-Identifier: MIT

package integrals

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/motrans/iwl"
	"github.com/katalvlaran/motrans/symmetry"
)

const (
	opAllocate = "Allocate"
	opRead     = "ReadTwoElectron"
	opGet      = "Get"
	opSet      = "Set"
)

// RecordSource supplies integral records until it returns io.EOF.
// *iwl.Reader satisfies it.
type RecordSource interface {
	Next() (iwl.Record, error)
}

// PackedStore is a symmetry-packed two-electron integral tensor: one
// independently sized block per irrep, sized once from the pair catalog and
// never resized.
type PackedStore struct {
	pairs  symmetry.Indexer
	blocks [][]float64 // irrep → packed block; nil until Allocate or for empty irreps
	log    *slog.Logger
}

// NewPackedStore returns an unallocated store addressed by pairs.
// Panics on a nil catalog (programmer error).
func NewPackedStore(pairs symmetry.Indexer, opts ...Option) *PackedStore {
	if pairs == nil {
		panic(ErrNilCatalog.Error())
	}
	o := gatherOptions(opts...)

	return &PackedStore{pairs: pairs, log: o.logger}
}

// Pairs returns the catalog addressing this store.
func (s *PackedStore) Pairs() symmetry.Indexer { return s.pairs }

// Allocated reports whether Allocate has run since creation or Release.
func (s *PackedStore) Allocated() bool { return s.blocks != nil }

// Allocate creates a zero-filled block of PackedSize(PairCount(h)) values for
// every irrep with at least one pair. It is a no-op when already allocated.
// Out-of-memory is fatal (Go runtime abort), never returned.
func (s *PackedStore) Allocate() {
	if s.blocks != nil {
		return
	}
	s.blocks = make([][]float64, s.pairs.Irreps())
	for h := range s.blocks {
		n := s.pairs.PairCount(h)
		if n == 0 {
			continue
		}
		s.blocks[h] = make([]float64, symmetry.PackedSize(n))
		s.log.Debug("allocated integral block", "op", opAllocate, "irrep", h, "pairs", n, "size", len(s.blocks[h]))
	}
}

// Release drops every block. A later Allocate starts from zeros again.
func (s *PackedStore) Release() { s.blocks = nil }

// Block returns the packed block of irrep h (shared, not copied), or nil.
func (s *PackedStore) Block(h int) []float64 {
	if h < 0 || h >= len(s.blocks) {
		return nil
	}

	return s.blocks[h]
}

// Len returns the number of stored (canonical) slots over all irreps.
func (s *PackedStore) Len() int {
	n := 0
	for _, b := range s.blocks {
		n += len(b)
	}

	return n
}

// locate returns the irrep and packed offset of (pq|rs).
// ok is false for symmetry-forbidden combinations.
func (s *PackedStore) locate(p, q, r, t int) (h, off int, ok bool, err error) {
	h, pq, err := s.pairs.Tuple(p, q)
	if err != nil {
		return 0, 0, false, err
	}
	hrs, rs, err := s.pairs.Tuple(r, t)
	if err != nil {
		return 0, 0, false, err
	}
	if h != hrs {
		return 0, 0, false, nil
	}

	return h, symmetry.Pack(pq, rs), true, nil
}

// ReadTwoElectron copies every record of src into the store.
//
// Implementation:
//   - Stage 1: Allocate (no-op when already allocated).
//   - Stage 2: pull records until io.EOF; locate (pq|rs) through the pair
//     catalog and write block[irrep(p,q)][Pack(rel(p,q), rel(r,s))].
//
// Inputs:
//   - src: any RecordSource, typically *iwl.Reader. Labels are absolute
//     orbital indices of the catalog's basis, in any permutation order.
//
// Returns:
//   - the number of records stored before the end of data or the first error.
//
// Determinism:
//   - A repeated location keeps the last value read.
//
// Errors:
//   - stream errors other than io.EOF (e.g. io.ErrUnexpectedEOF), wrapped.
//   - symmetry.ErrOrbitalOutOfRange for labels outside the basis.
//   - ErrSymmetryForbidden when (p,q) and (r,s) belong to different irreps.
func (s *PackedStore) ReadTwoElectron(src RecordSource) (int, error) {
	s.Allocate()
	count := 0
	for {
		rec, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return count, integralsErrorf(opRead, err)
		}
		h, off, ok, err := s.locate(rec.P, rec.Q, rec.R, rec.S)
		if err != nil {
			return count, integralsErrorf(opRead, err)
		}
		if !ok {
			return count, integralsErrorf(opRead, fmt.Errorf("(%d %d|%d %d): %w", rec.P, rec.Q, rec.R, rec.S, ErrSymmetryForbidden))
		}
		s.blocks[h][off] = rec.Value
		count++
	}
	s.log.Info("read two-electron integrals", "records", count)

	return count, nil
}

// Get returns (pq|rs) for any index order. Symmetry-forbidden combinations,
// unwritten slots and an unallocated store all read as 0.
func (s *PackedStore) Get(p, q, r, t int) (float64, error) {
	h, off, ok, err := s.locate(p, q, r, t)
	if err != nil {
		return 0, integralsErrorf(opGet, err)
	}
	if !ok || s.blocks == nil || s.blocks[h] == nil {
		return 0, nil
	}

	return s.blocks[h][off], nil
}

// Set stores v at (pq|rs), allocating the store first if needed.
func (s *PackedStore) Set(p, q, r, t int, v float64) error {
	h, off, ok, err := s.locate(p, q, r, t)
	if err != nil {
		return integralsErrorf(opSet, err)
	}
	if !ok {
		return integralsErrorf(opSet, fmt.Errorf("(%d %d|%d %d): %w", p, q, r, t, ErrSymmetryForbidden))
	}
	s.Allocate()
	s.blocks[h][off] = v

	return nil
}

// Each calls fn for every canonical non-zero entry (p≥q, r≥s, pq≥rs within
// the irrep) in block order. Iteration stops at the first error from fn.
func (s *PackedStore) Each(fn func(p, q, r, t int, v float64) error) error {
	for h, block := range s.blocks {
		n := s.pairs.PairCount(h)
		for pq := 0; pq < n; pq++ {
			for rs := 0; rs <= pq; rs++ {
				v := block[symmetry.Pack(pq, rs)]
				if v == 0 {
					continue
				}
				p, q, err := s.pairs.Pair(h, pq)
				if err != nil {
					return err
				}
				r, t, err := s.pairs.Pair(h, rs)
				if err != nil {
					return err
				}
				if err = fn(p, q, r, t, v); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// Checksum fingerprints every block (irrep, length and IEEE-754 bits) with
// xxhash. Two stores compare equal only if they hold bit-identical values.
func (s *PackedStore) Checksum() uint64 {
	d := xxhash.New()
	var word [8]byte
	for h, block := range s.blocks {
		binary.LittleEndian.PutUint64(word[:], uint64(h))
		_, _ = d.Write(word[:])
		binary.LittleEndian.PutUint64(word[:], uint64(len(block)))
		_, _ = d.Write(word[:])
		for _, v := range block {
			binary.LittleEndian.PutUint64(word[:], math.Float64bits(v))
			_, _ = d.Write(word[:])
		}
	}

	return d.Sum64()
}
