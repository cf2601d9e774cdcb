// SPDX-License-Identifier: MIT

package symmetry

import "fmt"

// Indexer is the read-only contract shared by pair catalogs: per-irrep pair
// counts, the global offset of each irrep's first pair, and the
// (irrep, relative index) of any unordered orbital pair.
type Indexer interface {
	Irreps() int
	PairCount(h int) int
	First(h int) int
	Tuple(a, b int) (h, rel int, err error)
	Pair(h, rel int) (p, q int, err error)
}

// Catalog indexes single orbitals of a Basis. It is the "element index"
// used to enumerate the orbitals of one irrep inside a transformation.
type Catalog struct {
	basis *Basis
}

// NewCatalog returns a single-orbital catalog over b.
func NewCatalog(b *Basis) *Catalog { return &Catalog{basis: b} }

// Basis returns the underlying basis.
func (c *Catalog) Basis() *Basis { return c.basis }

// Irreps returns the number of irreps.
func (c *Catalog) Irreps() int { return c.basis.Irreps() }

// Size returns the number of orbitals.
func (c *Catalog) Size() int { return c.basis.Orbitals() }

// Count returns the number of orbitals in irrep h.
func (c *Catalog) Count(h int) int { return c.basis.Count(h) }

// First returns the absolute index of the first orbital in irrep h.
func (c *Catalog) First(h int) int { return c.basis.First(h) }

// Rel returns the irrep and the index of orbital p relative to that irrep.
func (c *Catalog) Rel(p int) (h, rel int, err error) {
	h, err = c.basis.Irrep(p)
	if err != nil {
		return 0, 0, err
	}

	return h, p - c.basis.First(h), nil
}

// PairCatalog indexes unordered orbital pairs (p≥q) of a Basis. Pair (p,q)
// belongs to irrep Product(irrep(p), irrep(q)); inside an irrep, pairs are
// numbered in order of increasing Pack(p,q).
type PairCatalog struct {
	basis  *Basis
	counts []int      // pairs per irrep
	first  []int      // global offset of the first pair of each irrep
	irrep  []int      // Pack(p,q) → irrep
	rel    []int      // Pack(p,q) → relative index within the irrep
	pairs  [][][2]int // irrep → rel → canonical (p,q)
}

// Compile-time check that PairCatalog satisfies Indexer.
var _ Indexer = (*PairCatalog)(nil)

// NewPairCatalog enumerates every canonical pair of b once.
// Complexity: O(n²) time and memory for n orbitals.
func NewPairCatalog(b *Basis) *PairCatalog {
	n := b.Orbitals()
	size := PackedSize(n)
	pc := &PairCatalog{
		basis:  b,
		counts: make([]int, b.Irreps()),
		first:  make([]int, b.Irreps()),
		irrep:  make([]int, size),
		rel:    make([]int, size),
		pairs:  make([][][2]int, b.Irreps()),
	}

	// p outer, q inner visits pairs in increasing Pack order.
	for p := 0; p < n; p++ {
		for q := 0; q <= p; q++ {
			h := Product(b.sym[p], b.sym[q])
			idx := Pack(p, q)
			pc.irrep[idx] = h
			pc.rel[idx] = pc.counts[h]
			pc.counts[h]++
			pc.pairs[h] = append(pc.pairs[h], [2]int{p, q})
		}
	}
	offset := 0
	for h, cnt := range pc.counts {
		pc.first[h] = offset
		offset += cnt
	}

	return pc
}

// Basis returns the underlying basis.
func (pc *PairCatalog) Basis() *Basis { return pc.basis }

// Irreps returns the number of irreps.
func (pc *PairCatalog) Irreps() int { return len(pc.counts) }

// Size returns the total number of canonical pairs, n*(n+1)/2.
func (pc *PairCatalog) Size() int { return len(pc.irrep) }

// PairCount returns the number of pairs of irrep h (0 when out of range).
func (pc *PairCatalog) PairCount(h int) int {
	if h < 0 || h >= len(pc.counts) {
		return 0
	}

	return pc.counts[h]
}

// First returns the global index of the first pair of irrep h.
func (pc *PairCatalog) First(h int) int {
	if h < 0 || h >= len(pc.first) {
		return 0
	}

	return pc.first[h]
}

// Tuple canonicalizes (a,b) and returns its irrep and relative index.
// Inputs may come in any order. Indices outside [0, Orbitals()) yield
// ErrOrbitalOutOfRange.
func (pc *PairCatalog) Tuple(a, b int) (h, rel int, err error) {
	n := pc.basis.Orbitals()
	if a < 0 || a >= n || b < 0 || b >= n {
		return 0, 0, fmt.Errorf("Tuple(%d,%d): %w", a, b, ErrOrbitalOutOfRange)
	}
	idx := Pack(a, b)

	return pc.irrep[idx], pc.rel[idx], nil
}

// Pair is the inverse of Tuple: the canonical (p≥q) pair with relative index
// rel in irrep h.
func (pc *PairCatalog) Pair(h, rel int) (p, q int, err error) {
	if h < 0 || h >= len(pc.pairs) {
		return 0, 0, fmt.Errorf("Pair(%d,%d): %w", h, rel, ErrIrrepOutOfRange)
	}
	if rel < 0 || rel >= len(pc.pairs[h]) {
		return 0, 0, fmt.Errorf("Pair(%d,%d): %w", h, rel, ErrOrbitalOutOfRange)
	}
	pq := pc.pairs[h][rel]

	return pq[0], pq[1], nil
}
