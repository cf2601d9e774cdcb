// Package symmetry maps orbital indices and orbital pairs onto irreducible
// representations (irreps) of an Abelian point group and packs them into
// per-irrep relative indices.
//
// What is here?
//
//	A Basis lists how many orbitals belong to each irrep (Pitzer order:
//	all orbitals of irrep 0 first, then irrep 1, ...). Two catalogs are
//	built from it:
//	  • Catalog:     single orbitals: p → (irrep, p - First(irrep))
//	  • PairCatalog: unordered pairs p≥q: (p,q) → (irrep(p) ⊗ irrep(q), rel)
//
// Group multiplication:
//
//	Abelian groups with 1, 2, 4 or 8 irreps (D2h and its subgroups) have a
//	multiplication table that reduces to the bitwise XOR of irrep labels,
//	so Product(a, b) == a ^ b.
//
// Packing:
//
//	Pack(a,b) = max*(max+1)/2 + min stores the lower triangle of a symmetric
//	index space in a flat slice; PackedSize(n) is the slice length for n
//	entries. Both are pure and allocate nothing.
//
// Usage:
//
//	b, _ := symmetry.NewBasis([]string{"Ag", "B1u"}, []int{3, 2})
//	pairs := symmetry.NewPairCatalog(b)
//	h, rel, err := pairs.Tuple(4, 1)
//
// All catalogs are immutable after construction and safe for concurrent reads.
package symmetry
