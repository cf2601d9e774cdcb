// Package matrix provides the dense linear-algebra primitives used by the
// integral transformation: a row-major Dense matrix with safe accessors and
// GEMM-style kernels.
//
// What & Why:
//
//	Dense stores r×c float64 values in one flat slice (offset = i*c + j).
//	The flat layout maps 1:1 onto a BLAS general matrix, so every product
//	in this package is delegated to gonum's blas64 without copying.
//
// Kernels:
//   - Gemm(transA, transB, α, A, B, β, C): C = α·op(A)·op(B) + β·C in place.
//   - Mul, MulTransA: allocating conveniences over Gemm.
//   - Trace, AllClose, IsSymmetric, IsOrthonormal.
//
// Gonum bridge:
//
//	ToGonum shares storage with a *mat.Dense; FromGonum copies any mat.Matrix.
//
// Complexity:
//
//	At/Set O(1); Gemm O(m·n·k).
package matrix
