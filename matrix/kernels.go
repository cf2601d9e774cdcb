// SPDX-License-Identifier: MIT
// Package matrix: GEMM-backed kernels.
//
// Purpose:
//   - Route every product through gonum's blas64 so the dense multiply is the
//     tuned (and possibly internally parallel) implementation.
//   - Keep shape validation in validators.go; kernels only wrap with op tags.
//
// Determinism:
//   - Results depend only on operand values; accumulation order is BLAS-defined
//     and agrees with a naive triple loop within rounding.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

const (
	opGemm      = "Gemm"
	opMul       = "Mul"
	opMulTransA = "MulTransA"
	opTrace     = "Trace"
	opAllClose  = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

func general(m *Dense) blas64.General {
	return blas64.General{Rows: m.r, Cols: m.c, Stride: m.c, Data: m.data}
}

func transFlag(t bool) blas.Transpose {
	if t {
		return blas.Trans
	}

	return blas.NoTrans
}

// Gemm computes dst = alpha·op(a)·op(b) + beta·dst in place, where op(X) is
// Xᵀ when the matching trans flag is true.
//
// Implementation:
//   - Stage 1: ValidateGemm checks op(a) is m×k, op(b) is k×n and dst is m×n.
//   - Stage 2: view each Dense as a row-major blas64.General (no copy) and
//     call blas64.Gemm.
//
// Inputs:
//   - a, b: operands; dst must not alias either.
//   - alpha, beta: scalars; beta = 0 ignores the previous dst contents.
//
// Returns:
//   - nil on success; dst holds the product.
//
// Determinism:
//   - Accumulation order is fixed by the BLAS implementation, so repeated
//     calls with equal inputs give bit-identical results.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Gemm").
//
// Complexity: O(m·n·k).
func Gemm(transA, transB bool, alpha float64, a, b *Dense, beta float64, dst *Dense) error {
	if err := ValidateGemm(transA, transB, a, b, dst); err != nil {
		return matrixErrorf(opGemm, err)
	}
	blas64.Gemm(transFlag(transA), transFlag(transB), alpha, general(a), general(b), beta, general(dst))

	return nil
}

// Mul returns a·b as a new matrix.
func Mul(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}
	res, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err = Gemm(false, false, 1, a, b, 0, res); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return res, nil
}

// MulTransA returns aᵀ·b as a new matrix.
func MulTransA(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opMulTransA, ErrNilMatrix)
	}
	if a.r != b.r {
		return nil, matrixErrorf(opMulTransA, ErrDimensionMismatch)
	}
	res, err := NewDense(a.c, b.c)
	if err != nil {
		return nil, matrixErrorf(opMulTransA, err)
	}
	if err = Gemm(true, false, 1, a, b, 0, res); err != nil {
		return nil, matrixErrorf(opMulTransA, err)
	}

	return res, nil
}

// Trace returns Σ m[i,i] for a square m.
func Trace(m *Dense) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	sum := 0.0
	for i := 0; i < m.r; i++ {
		sum += m.data[i*m.c+i]
	}

	return sum, nil
}

// AllClose reports whether |a-b| <= atol + rtol*|b| element-wise.
func AllClose(a, b *Dense, rtol, atol float64) (bool, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	for i, av := range a.data {
		bv := b.data[i]
		if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
			return false, nil
		}
	}

	return true, nil
}

// IsSymmetric reports whether m is square and |m[i,j]-m[j,i]| <= eps.
func IsSymmetric(m *Dense, eps float64) bool {
	if ValidateSquare(m) != nil {
		return false
	}
	for i := 0; i < m.r; i++ {
		for j := 0; j < i; j++ {
			if math.Abs(m.data[i*m.c+j]-m.data[j*m.c+i]) > eps {
				return false
			}
		}
	}

	return true
}
