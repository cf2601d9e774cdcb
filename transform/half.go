// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"

	"github.com/katalvlaran/motrans/integrals"
	"github.com/katalvlaran/motrans/symmetry"
)

// halfBlock is one irrep of a half-transformed tensor, row-major
// rows × cols: rows are MO pairs, cols are SO pairs (MO pairs after pass 2).
type halfBlock struct {
	rows, cols int
	data       []float64
}

// HalfTransformed is the intermediate (ij|rs) tensor produced by
// Engine.HalfTransform. Engine.CompleteTransform overwrites it so that it
// holds (ij|kl); Complete then reports true.
type HalfTransformed struct {
	soPairs  symmetry.Indexer
	moPairs  symmetry.Indexer
	blocks   []*halfBlock // irrep → block; nil when the irrep has no SO or no MO pairs
	complete bool
}

func newHalfTransformed(soPairs, moPairs symmetry.Indexer) *HalfTransformed {
	t := &HalfTransformed{
		soPairs: soPairs,
		moPairs: moPairs,
		blocks:  make([]*halfBlock, soPairs.Irreps()),
	}
	for h := range t.blocks {
		rows, cols := moPairs.PairCount(h), soPairs.PairCount(h)
		if rows*cols > 0 {
			t.blocks[h] = &halfBlock{rows: rows, cols: cols, data: make([]float64, rows*cols)}
		}
	}

	return t
}

// Irreps returns the number of irrep blocks.
func (t *HalfTransformed) Irreps() int { return len(t.blocks) }

// Complete reports whether the second half-transform has run.
func (t *HalfTransformed) Complete() bool { return t.complete }

// Shape returns the dimensions of block h (0,0 for empty or invalid irreps).
func (t *HalfTransformed) Shape(h int) (rows, cols int) {
	if h < 0 || h >= len(t.blocks) || t.blocks[h] == nil {
		return 0, 0
	}

	return t.blocks[h].rows, t.blocks[h].cols
}

// At returns the value stored for MO pair ij and (SO or MO) pair col of irrep h.
// Valid but unallocated positions read as 0.
func (t *HalfTransformed) At(h, ij, col int) (float64, error) {
	if h < 0 || h >= len(t.blocks) {
		return 0, transformErrorf("At", fmt.Errorf("irrep %d: %w", h, ErrIrrepOutOfRange))
	}
	b := t.blocks[h]
	if b == nil {
		return 0, nil
	}
	if ij < 0 || ij >= b.rows || col < 0 || col >= b.cols {
		return 0, transformErrorf("At", fmt.Errorf("(%d,%d) in %d×%d: %w", ij, col, b.rows, b.cols, ErrPairOutOfRange))
	}

	return b.data[ij*b.cols+col], nil
}

// Pack copies the lower triangle (ij ≥ kl) of every completed block into a
// PackedStore addressed by the MO pair catalog.
func (t *HalfTransformed) Pack(opts ...integrals.Option) (*integrals.PackedStore, error) {
	if !t.complete {
		return nil, transformErrorf("Pack", ErrIncomplete)
	}
	out := integrals.NewPackedStore(t.moPairs, opts...)
	out.Allocate()
	for h, b := range t.blocks {
		if b == nil {
			continue
		}
		dst := out.Block(h)
		for ij := 0; ij < b.rows; ij++ {
			for kl := 0; kl <= ij; kl++ {
				dst[symmetry.Pack(ij, kl)] = b.data[ij*b.cols+kl]
			}
		}
	}

	return out, nil
}
