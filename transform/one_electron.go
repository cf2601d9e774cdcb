// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"

	"github.com/katalvlaran/motrans/integrals"
	"github.com/katalvlaran/motrans/matrix"
)

const opOEI = "TransformOneElectron"

// TransformOneElectron returns Cᵀ·H·C for the SO matrix H, using the full
// block-diagonal coefficient matrix.
func (e *Engine) TransformOneElectron(src *integrals.OneElectron) (*integrals.OneElectron, error) {
	if src == nil {
		return nil, transformErrorf(opOEI, ErrNilDependency)
	}
	e.log.Info("transforming one-electron integrals")

	c, err := e.FullCoefficients()
	if err != nil {
		return nil, transformErrorf(opOEI, err)
	}

	return OneElectronDense(src, c)
}

// OneElectronDense computes target[i][j] = Σ_{p,q} C[p][i]·H[p][q]·C[q][j]
// as two products, A = H·C then target = Cᵀ·A. C is any N×M matrix; no
// symmetry restriction is applied.
func OneElectronDense(src *integrals.OneElectron, c *matrix.Dense) (*integrals.OneElectron, error) {
	if src == nil || c == nil {
		return nil, transformErrorf(opOEI, ErrNilDependency)
	}
	if src.Size() != c.Rows() {
		return nil, transformErrorf(opOEI, fmt.Errorf("size %d, coefficients %d×%d: %w", src.Size(), c.Rows(), c.Cols(), ErrShape))
	}
	a, err := matrix.Mul(src.Matrix(), c)
	if err != nil {
		return nil, transformErrorf(opOEI, err)
	}
	t, err := matrix.MulTransA(c, a)
	if err != nil {
		return nil, transformErrorf(opOEI, err)
	}

	return integrals.OneElectronFrom(t)
}
