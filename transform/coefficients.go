// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"

	"github.com/katalvlaran/motrans/matrix"
	"github.com/katalvlaran/motrans/symmetry"
)

// CoefficientProvider supplies, per irrep, the SO→MO coefficient block:
// rows are the SO functions of the irrep, columns its MOs. Irreps without
// SO functions or without MOs return (nil, nil).
type CoefficientProvider interface {
	Block(h int) (*matrix.Dense, error)
}

// BlockCoefficients is an in-memory CoefficientProvider.
type BlockCoefficients struct {
	blocks []*matrix.Dense
}

var _ CoefficientProvider = (*BlockCoefficients)(nil)

// NewBlockCoefficients wraps one block per irrep (nil for empty irreps).
// The blocks are not copied.
func NewBlockCoefficients(blocks []*matrix.Dense) *BlockCoefficients {
	return &BlockCoefficients{blocks: append([]*matrix.Dense(nil), blocks...)}
}

// IdentityCoefficients returns identity blocks for every non-empty irrep of b,
// i.e. the MO basis equals the SO basis.
func IdentityCoefficients(b *symmetry.Basis) (*BlockCoefficients, error) {
	blocks := make([]*matrix.Dense, b.Irreps())
	for h := range blocks {
		n := b.Count(h)
		if n == 0 {
			continue
		}
		var err error
		if blocks[h], err = matrix.NewIdentity(n); err != nil {
			return nil, transformErrorf("IdentityCoefficients", fmt.Errorf("irrep %s: %w", b.Label(h), err))
		}
	}

	return &BlockCoefficients{blocks: blocks}, nil
}

// Irreps returns the number of blocks.
func (c *BlockCoefficients) Irreps() int { return len(c.blocks) }

// Block returns the coefficient block of irrep h.
func (c *BlockCoefficients) Block(h int) (*matrix.Dense, error) {
	if h < 0 || h >= len(c.blocks) {
		return nil, transformErrorf("Block", fmt.Errorf("irrep %d: %w", h, ErrIrrepOutOfRange))
	}

	return c.blocks[h], nil
}

// FullMatrix assembles the block-diagonal nso×nmo coefficient matrix from
// per-irrep blocks placed at (so.First(h), mo.First(h)).
func FullMatrix(p CoefficientProvider, so, mo *symmetry.Catalog) (*matrix.Dense, error) {
	full, err := matrix.NewDense(so.Size(), mo.Size())
	if err != nil {
		return nil, transformErrorf("FullMatrix", err)
	}
	data := full.Data()
	cols := mo.Size()
	for h := 0; h < so.Irreps(); h++ {
		blk, err := p.Block(h)
		if err != nil {
			return nil, transformErrorf("FullMatrix", err)
		}
		if blk == nil {
			continue
		}
		r0, c0 := so.First(h), mo.First(h)
		bc := blk.Cols()
		for i, v := range blk.Data() {
			data[(r0+i/bc)*cols+c0+i%bc] = v
		}
	}

	return full, nil
}
