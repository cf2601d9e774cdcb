// Package transform carries integrals from the symmetry-orbital (SO) basis to
// the molecular-orbital (MO) basis.
//
// Two-electron integrals are transformed in two half-transform passes, each
// replacing one orbital-pair leg of (pq|rs):
//
//	pass 1:  (pq|rs) → (ij|rs)   for every SO pair rs
//	pass 2:  (ij|rs) → (ij|kl)   for every MO pair ij
//
// Each pass loops over irrep pairs (h_p ≥ h_q) whose product equals the irrep
// of the untouched leg, gathers a dense A[q][p] block, and contracts it with
// the per-irrep coefficient blocks as two GEMMs:
//
//	B = C_pᵀ·Aᵀ        (B[i][q] = Σ_p C_p[p][i]·A[q][p])
//	D = C_qᵀ·Bᵀ        (D[j][i] = Σ_q C_q[q][j]·B[i][q])
//
// Coefficients are block-diagonal by symmetry, so combinations that break the
// product rule are never visited, and combinations with an empty irrep are
// skipped: their contribution is exactly zero.
//
// One-electron integrals use the dense path target = Cᵀ·(H·C) with the full
// block-diagonal coefficient matrix.
//
// An Engine is single-threaded and owns every buffer it allocates for the
// duration of a call. Dependencies (catalogs, coefficients) are injected
// read-only at construction.
package transform
