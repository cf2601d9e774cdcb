// SPDX-License-Identifier: MIT

package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// ToGonum returns a *mat.Dense that shares m's storage.
func (m *Dense) ToGonum() *mat.Dense { return mat.NewDense(m.r, m.c, m.data) }

// FromGonum copies any gonum matrix into a new Dense.
func FromGonum(src mat.Matrix) (*Dense, error) {
	r, c := src.Dims()
	res, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	res.ToGonum().Copy(src)

	return res, nil
}

// IsOrthonormal reports whether the columns of m are orthonormal,
// i.e. mᵀm == I within eps. Rectangular m (more rows than columns) is allowed.
func IsOrthonormal(m *Dense, eps float64) bool {
	if m == nil || m.r < m.c {
		return false
	}
	g := m.ToGonum()
	var gram mat.Dense
	gram.Mul(g.T(), g)
	for i := 0; i < m.c; i++ {
		for j := 0; j < m.c; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(gram.At(i, j)-want) > eps {
				return false
			}
		}
	}

	return true
}
