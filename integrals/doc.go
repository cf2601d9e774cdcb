// Package integrals holds one- and two-electron integrals in memory.
//
// PackedStore keeps two-electron integrals (pq|rs) in one flat slice per
// irrep, addressed by Pack(rel(p,q), rel(r,s)) where rel comes from a pair
// catalog. Only the canonical entries of the 8-fold permutation symmetry are
// stored; Get canonicalizes every request, so any index order may be used.
//
// OneElectron keeps a dense symmetric N×N matrix (no symmetry blocking).
//
// Reading an allocated but never written location returns 0. Stores never
// signal "missing"; a truncated input stream therefore shows up as zeros.
package integrals
