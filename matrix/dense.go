// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a flat row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Expose the raw slice (Data) for hot loops that have already validated shapes.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1).

package matrix

import (
	"fmt"
	"strings"
)

const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int
	data []float64
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix.
//
// Errors:
//   - ErrInvalidDimensions if rows <= 0 or cols <= 0.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseData wraps data (row-major, len == rows*cols) without copying.
// The caller must not retain data for other purposes.
//
// Errors:
//   - ErrInvalidDimensions for non-positive shape.
//   - ErrDataLength if len(data) != rows*cols.
func NewDenseData(rows, cols int, data []float64) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("NewDenseData(%d,%d): len=%d: %w", rows, cols, len(data), ErrDataLength)
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// NewDenseRows builds a matrix from a rectangular [][]float64 (copied).
func NewDenseRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	m, _ := NewDense(len(rows), len(rows[0]))
	for i, row := range rows {
		if len(row) != m.c {
			return nil, fmt.Errorf("NewDenseRows: row %d has %d cols, want %d: %w", i, len(row), m.c, ErrDimensionMismatch)
		}
		copy(m.data[i*m.c:(i+1)*m.c], row)
	}

	return m, nil
}

// NewIdentity returns I_n.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Data exposes the row-major backing slice. Writes are visible in m.
func (m *Dense) Data() []float64 { return m.data }

func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// String renders matrix rows as "[a, b]\n" lines for diagnostics.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
