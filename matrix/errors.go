// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels (optionally wrapped with an operation
// tag via %w) and tests match them with errors.Is. No kernel panics on
// user-triggered error conditions.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDataLength indicates a backing slice whose length is not rows*cols.
	ErrDataLength = errors.New("matrix: data length does not match shape")

	// ErrNilMatrix indicates that a nil *Dense was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
