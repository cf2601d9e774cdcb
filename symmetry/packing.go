// SPDX-License-Identifier: MIT

package symmetry

// Canonical orders an unordered index pair so that the first element is the
// larger one. Pack, the catalogs and the integral stores address storage only
// through canonical pairs.
func Canonical(a, b int) (int, int) {
	if a >= b {
		return a, b
	}

	return b, a
}

// Pack returns the lower-triangle offset of the unordered pair (a,b):
//
//	Pack(a,b) = max(a,b)*(max(a,b)+1)/2 + min(a,b)
//
// Pre: a, b >= 0. Post: Pack(a,b) == Pack(b,a) and the result is unique per
// unordered pair. Complexity: O(1).
func Pack(a, b int) int {
	hi, lo := Canonical(a, b)

	return hi*(hi+1)/2 + lo
}

// PackedSize is the number of canonical pairs over n indices,
// Pack(n-1,n-1)+1 == n*(n+1)/2, and 0 when n <= 0.
func PackedSize(n int) int {
	if n <= 0 {
		return 0
	}

	return Pack(n-1, n-1) + 1
}

// Product multiplies two irreps of an Abelian group with XOR multiplication.
func Product(a, b int) int { return a ^ b }
