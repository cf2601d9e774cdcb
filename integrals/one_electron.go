// SPDX-License-Identifier: MIT

package integrals

import (
	"fmt"
	"io"

	"github.com/katalvlaran/motrans/iwl"
	"github.com/katalvlaran/motrans/matrix"
	"github.com/katalvlaran/motrans/symmetry"
)

// OneElectron is a dense symmetric N×N one-electron integral matrix.
type OneElectron struct {
	m *matrix.Dense
}

// NewOneElectron returns an n×n zero matrix.
func NewOneElectron(n int) (*OneElectron, error) {
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, integralsErrorf("NewOneElectron", err)
	}

	return &OneElectron{m: m}, nil
}

// OneElectronFrom wraps a square matrix (not copied).
func OneElectronFrom(m *matrix.Dense) (*OneElectron, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, integralsErrorf("OneElectronFrom", err)
	}

	return &OneElectron{m: m}, nil
}

// ReadOneElectron reads an n×n matrix stored as a packed lower triangle.
func ReadOneElectron(r io.Reader, n int) (*OneElectron, error) {
	tri, err := iwl.ReadTriangle(r, n)
	if err != nil {
		return nil, integralsErrorf("ReadOneElectron", err)
	}
	o, err := NewOneElectron(n)
	if err != nil {
		return nil, err
	}
	if err = o.LoadTriangle(tri); err != nil {
		return nil, err
	}

	return o, nil
}

// Size returns N.
func (o *OneElectron) Size() int { return o.m.Rows() }

// Matrix exposes the underlying dense matrix (shared).
func (o *OneElectron) Matrix() *matrix.Dense { return o.m }

// At returns h[p][q].
func (o *OneElectron) At(p, q int) (float64, error) { return o.m.At(p, q) }

// Set writes v to both h[p][q] and h[q][p].
func (o *OneElectron) Set(p, q int, v float64) error {
	if err := o.m.Set(p, q, v); err != nil {
		return err
	}

	return o.m.Set(q, p, v)
}

// LoadTriangle fills the matrix from tri[Pack(p,q)], mirroring each value.
func (o *OneElectron) LoadTriangle(tri []float64) error {
	n := o.Size()
	if len(tri) != symmetry.PackedSize(n) {
		return integralsErrorf("LoadTriangle", fmt.Errorf("len=%d n=%d: %w", len(tri), n, ErrShape))
	}
	data := o.m.Data()
	for p := 0; p < n; p++ {
		for q := 0; q < n; q++ {
			data[p*n+q] = tri[symmetry.Pack(p, q)]
		}
	}

	return nil
}

// Triangle returns the packed lower triangle (p≥q) in Pack order.
func (o *OneElectron) Triangle() []float64 {
	n := o.Size()
	data := o.m.Data()
	tri := make([]float64, symmetry.PackedSize(n))
	for p := 0; p < n; p++ {
		for q := 0; q <= p; q++ {
			tri[symmetry.Pack(p, q)] = data[p*n+q]
		}
	}

	return tri
}
