// Package motrans is a symmetry-blocked SO→MO integral transformation
// library for quantum-chemistry codes.
//
// Integrals are addressed by orbital pairs, and pairs are grouped by the
// irreducible representation (irrep) of an abelian point group with 1, 2,
// 4 or 8 irreps. Blocks that symmetry forces to zero are never stored or
// computed.
//
// Packages:
//
//	symmetry/    irrep bases, triangular packing, single and pair catalogs
//	matrix/      row-major Dense and GEMM kernels (gonum blas64)
//	iwl/         buffered binary integral stream reader/writer
//	integrals/   PackedStore (two-electron) and OneElectron matrices
//	transform/   Engine: two half-transform passes and the one-electron transform
//	cmd/motrans  command-line driver reading a TOML run file
//
// Typical flow:
//
//	so, _ := symmetry.NewBasis([]string{"A1", "A2", "B1", "B2"}, []int{4, 1, 2, 2})
//	pairs := symmetry.NewPairCatalog(so)
//	src := integrals.NewPackedStore(pairs)
//	_, _ = src.ReadTwoElectron(iwl.NewReader(f))
//	e, _ := transform.NewEngine(transform.Config{...})
//	mo, _ := e.TransformTwoElectron(src)
//	v, _ := mo.Get(0, 0, 1, 1)
package motrans
