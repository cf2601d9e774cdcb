// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for nil/shape checks used by the kernels.
//   - Return plain sentinel errors (no wrapping) so call sites wrap uniformly.

package matrix

// ValidateNotNil ensures the matrix reference is non-nil.
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square.
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return ErrNonSquare
	}

	return nil
}

// ValidateSameShape checks that a and b are non-nil with equal dimensions.
func ValidateSameShape(a, b *Dense) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.r != b.r || a.c != b.c {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateGemm checks that op(a)·op(b) is defined and fits dst.
// op(X) is Xᵀ when the corresponding trans flag is set.
func ValidateGemm(transA, transB bool, a, b, dst *Dense) error {
	if a == nil || b == nil || dst == nil {
		return ErrNilMatrix
	}
	m, k := a.r, a.c
	if transA {
		m, k = k, m
	}
	kb, n := b.r, b.c
	if transB {
		kb, n = n, kb
	}
	if k != kb || dst.r != m || dst.c != n {
		return ErrDimensionMismatch
	}

	return nil
}
