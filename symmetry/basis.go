// SPDX-License-Identifier: MIT

package symmetry

import "fmt"

// Basis describes how a set of orbitals splits into irreps.
// Orbitals are numbered in Pitzer order: the Count(0) orbitals of irrep 0
// come first, then those of irrep 1, and so on.
type Basis struct {
	labels []string // irrep labels (e.g. "Ag", "B3u"); len == Irreps()
	counts []int    // orbitals per irrep
	first  []int    // absolute index of the first orbital of each irrep
	sym    []int    // irrep of every absolute orbital index
}

// NewBasis validates labels/counts and builds a Basis.
//
// Errors:
//   - ErrLabelCount      if len(labels) != len(counts).
//   - ErrIrrepCount      if the irrep count is not 1, 2, 4 or 8.
//   - ErrNegativeCount   if any count is negative.
//   - ErrEmptyBasis      if the counts sum to zero.
//
// Complexity: O(irreps + orbitals).
func NewBasis(labels []string, counts []int) (*Basis, error) {
	if len(labels) != len(counts) {
		return nil, fmt.Errorf("NewBasis: %d labels, %d counts: %w", len(labels), len(counts), ErrLabelCount)
	}
	switch len(counts) {
	case 1, 2, 4, 8:
	default:
		return nil, fmt.Errorf("NewBasis: %d irreps: %w", len(counts), ErrIrrepCount)
	}

	b := &Basis{
		labels: append([]string(nil), labels...),
		counts: append([]int(nil), counts...),
		first:  make([]int, len(counts)),
	}
	total := 0
	for h, n := range counts {
		if n < 0 {
			return nil, fmt.Errorf("NewBasis: irrep %s has %d orbitals: %w", labels[h], n, ErrNegativeCount)
		}
		b.first[h] = total
		total += n
	}
	if total == 0 {
		return nil, ErrEmptyBasis
	}

	b.sym = make([]int, 0, total)
	for h, n := range counts {
		for i := 0; i < n; i++ {
			b.sym = append(b.sym, h)
		}
	}

	return b, nil
}

// Irreps returns the number of irreps of the group.
func (b *Basis) Irreps() int { return len(b.counts) }

// Orbitals returns the total number of orbitals.
func (b *Basis) Orbitals() int { return len(b.sym) }

// Label returns the label of irrep h, or "" when h is out of range.
func (b *Basis) Label(h int) string {
	if h < 0 || h >= len(b.labels) {
		return ""
	}

	return b.labels[h]
}

// Count returns the number of orbitals in irrep h (0 when out of range).
func (b *Basis) Count(h int) int {
	if h < 0 || h >= len(b.counts) {
		return 0
	}

	return b.counts[h]
}

// First returns the absolute index of the first orbital in irrep h.
func (b *Basis) First(h int) int {
	if h < 0 || h >= len(b.first) {
		return 0
	}

	return b.first[h]
}

// Irrep returns the irrep of orbital p.
func (b *Basis) Irrep(p int) (int, error) {
	if p < 0 || p >= len(b.sym) {
		return 0, fmt.Errorf("Irrep(%d): %w", p, ErrOrbitalOutOfRange)
	}

	return b.sym[p], nil
}

// Compatible reports whether two bases share the same group (same irrep
// count and labels). Orbital counts may differ.
func (b *Basis) Compatible(o *Basis) bool {
	if o == nil || len(b.labels) != len(o.labels) {
		return false
	}
	for h := range b.labels {
		if b.labels[h] != o.labels[h] {
			return false
		}
	}

	return true
}
