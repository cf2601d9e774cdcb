// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"

	"github.com/katalvlaran/motrans/integrals"
	"github.com/katalvlaran/motrans/matrix"
	"github.com/katalvlaran/motrans/symmetry"
)

const (
	opHalf     = "HalfTransform"
	opComplete = "CompleteTransform"
	opTEI      = "TransformTwoElectron"
)

// scatterEntry maps D[j][i] (flat offset d) to the relative MO pair index of (i,j).
type scatterEntry struct {
	d, pair int
}

// legPlan is the per-(h_p,h_q) state of a half-transform: coefficient
// blocks, scratch matrices reused across the inner loop, and the
// gather/scatter index maps. It lives for one irrep combination only.
type legPlan struct {
	cp, cq  *matrix.Dense
	a, b, d *matrix.Dense  // A: nso(q)×nso(p), B: nmo(p)×nso(q), D: nmo(q)×nmo(p)
	gather  []int          // A offset → relative SO pair index of (p,q)
	scatter []scatterEntry // only (i,j) with i_abs ≥ j_abs
}

// plan prepares the (hp, hq) combination. ok is false when any SO or MO
// dimension of the two irreps is zero: the combination contributes nothing.
func (e *Engine) plan(hp, hq int) (lp *legPlan, ok bool, err error) {
	nsoP, nsoQ := e.so.Count(hp), e.so.Count(hq)
	nmoP, nmoQ := e.mo.Count(hp), e.mo.Count(hq)
	if nsoP == 0 || nsoQ == 0 || nmoP == 0 || nmoQ == 0 {
		return nil, false, nil
	}

	lp = &legPlan{cp: e.coef[hp], cq: e.coef[hq]}
	if lp.a, err = matrix.NewDense(nsoQ, nsoP); err != nil {
		return nil, false, err
	}
	if lp.b, err = matrix.NewDense(nmoP, nsoQ); err != nil {
		return nil, false, err
	}
	if lp.d, err = matrix.NewDense(nmoQ, nmoP); err != nil {
		return nil, false, err
	}

	hpq := symmetry.Product(hp, hq)
	lp.gather = make([]int, nsoQ*nsoP)
	for q := 0; q < nsoQ; q++ {
		qAbs := q + e.so.First(hq)
		for p := 0; p < nsoP; p++ {
			rel, err := pairRel(e.soPairs, hpq, p+e.so.First(hp), qAbs)
			if err != nil {
				return nil, false, err
			}
			lp.gather[q*nsoP+p] = rel
		}
	}

	lp.scatter = make([]scatterEntry, 0, nmoP*nmoQ)
	for i := 0; i < nmoP; i++ {
		iAbs := i + e.mo.First(hp)
		for j := 0; j < nmoQ; j++ {
			jAbs := j + e.mo.First(hq)
			if iAbs < jAbs {
				continue
			}
			rel, err := pairRel(e.moPairs, hpq, iAbs, jAbs)
			if err != nil {
				return nil, false, err
			}
			lp.scatter = append(lp.scatter, scatterEntry{d: j*nmoP + i, pair: rel})
		}
	}

	return lp, true, nil
}

// pairRel returns the relative index of pair (a,b), which must lie in irrep h.
func pairRel(pairs symmetry.Indexer, h, a, b int) (int, error) {
	got, rel, err := pairs.Tuple(a, b)
	if err != nil {
		return 0, err
	}
	if got != h || rel < 0 || rel >= pairs.PairCount(h) {
		return 0, fmt.Errorf("pair (%d,%d) -> irrep %d rel %d, want irrep %d: %w", a, b, got, rel, h, ErrCatalogMismatch)
	}

	return rel, nil
}

// contract computes B = C_pᵀ·Aᵀ and then D = C_qᵀ·Bᵀ.
func (lp *legPlan) contract() error {
	if err := matrix.Gemm(true, true, 1, lp.cp, lp.a, 0, lp.b); err != nil {
		return err
	}

	return matrix.Gemm(true, true, 1, lp.cq, lp.b, 0, lp.d)
}

// HalfTransform runs pass 1: (pq|rs) → (ij|rs).
//
// Implementation:
//   - Stage 1: allocate one MO-pair × SO-pair block per irrep h_rs.
//   - Stage 2: for each h_p ≥ h_q with h_p⊗h_q = h_rs, build the leg plan
//     (skipped when any SO or MO dimension is zero).
//   - Stage 3: for every rs, gather A[q][p] = (pq|rs), contract with C_p and
//     C_q, and scatter D[j][i] to (ij|rs) for i_abs ≥ j_abs.
//
// Inputs:
//   - src: SO integrals addressed by the engine's SO pair catalog. An
//     unallocated src reads as all zeros.
//
// Returns:
//   - *HalfTransformed holding (ij|rs); Complete() is false.
//
// Errors:
//   - ErrNilDependency if src is nil.
//   - ErrCatalogMismatch if src uses another catalog, or a catalog lookup
//     leaves the expected irrep.
//
// Determinism:
//   - Irrep combinations and rs run in a fixed order; results depend only on
//     the inputs and the BLAS accumulation order.
//
// Complexity:
//   - Time O(Σ_h npairs_so(h) · Σ_{hp⊗hq=h} nso(p)·nso(q)·(nmo(p)+nmo(q))).
func (e *Engine) HalfTransform(src *integrals.PackedStore) (*HalfTransformed, error) {
	if src == nil {
		return nil, transformErrorf(opHalf, ErrNilDependency)
	}
	if src.Pairs() != e.soPairs {
		return nil, transformErrorf(opHalf, fmt.Errorf("source store: %w", ErrCatalogMismatch))
	}

	half := newHalfTransformed(e.soPairs, e.moPairs)
	e.log.Info("beginning first-half integral transform")
	for hrs := 0; hrs < e.irreps; hrs++ {
		hb, in := half.blocks[hrs], src.Block(hrs)
		if hb == nil || in == nil {
			continue
		}
		for hp := 0; hp < e.irreps; hp++ {
			hq := symmetry.Product(hrs, hp)
			if hp < hq {
				continue
			}
			lp, ok, err := e.plan(hp, hq)
			if err != nil {
				return nil, transformErrorf(opHalf, err)
			}
			if !ok {
				continue
			}
			e.log.Debug("half-transform block", "pass", 1, "irrep", hrs, "hp", hp, "hq", hq)

			a, d := lp.a.Data(), lp.d.Data()
			for rs := 0; rs < hb.cols; rs++ {
				for k, pq := range lp.gather {
					a[k] = in[symmetry.Pack(pq, rs)]
				}
				if err = lp.contract(); err != nil {
					return nil, transformErrorf(opHalf, err)
				}
				for _, sc := range lp.scatter {
					hb.data[sc.pair*hb.cols+rs] = d[sc.d]
				}
			}
		}
	}

	return half, nil
}

// CompleteTransform runs pass 2: (ij|rs) → (ij|kl) in place on half.
//
// Implementation:
//   - Stage 1: for each irrep h_ij, allocate an MO-pair × MO-pair output.
//   - Stage 2: for each h_r ≥ h_s with h_r⊗h_s = h_ij and every row ij,
//     gather A[s][r] = (ij|rs), contract with C_r and C_s, and scatter D[l][k]
//     to (ij|kl) for k_abs ≥ l_abs.
//   - Stage 3: once every combination of h_ij has run, replace the block.
//     The source row is still needed while any combination reads it, and
//     the output may be narrower when nmo < nso.
//
// Inputs:
//   - half: result of HalfTransform on this engine.
//
// Errors:
//   - ErrNilDependency if half is nil.
//   - ErrCatalogMismatch if half was produced by another engine's catalogs.
//
// Determinism:
//   - Calling it on a completed tensor is a no-op; the tensor is never
//     transformed twice.
//
// Complexity:
//   - Time O(Σ_h npairs_mo(h) · Σ_{hr⊗hs=h} nso(r)·nso(s)·(nmo(r)+nmo(s))).
func (e *Engine) CompleteTransform(half *HalfTransformed) error {
	if half == nil {
		return transformErrorf(opComplete, ErrNilDependency)
	}
	if half.soPairs != e.soPairs || half.moPairs != e.moPairs {
		return transformErrorf(opComplete, ErrCatalogMismatch)
	}
	if half.complete {
		return nil
	}

	e.log.Info("beginning second-half integral transform")
	for hij := 0; hij < e.irreps; hij++ {
		hb := half.blocks[hij]
		if hb == nil {
			continue
		}
		nkl := e.moPairs.PairCount(hij)
		out := make([]float64, hb.rows*nkl)
		for hr := 0; hr < e.irreps; hr++ {
			hs := symmetry.Product(hij, hr)
			if hr < hs {
				continue
			}
			lp, ok, err := e.plan(hr, hs)
			if err != nil {
				return transformErrorf(opComplete, err)
			}
			if !ok {
				continue
			}
			e.log.Debug("half-transform block", "pass", 2, "irrep", hij, "hr", hr, "hs", hs)

			a, d := lp.a.Data(), lp.d.Data()
			for ij := 0; ij < hb.rows; ij++ {
				row := hb.data[ij*hb.cols : (ij+1)*hb.cols]
				for k, rs := range lp.gather {
					a[k] = row[rs]
				}
				if err = lp.contract(); err != nil {
					return transformErrorf(opComplete, err)
				}
				for _, sc := range lp.scatter {
					out[ij*nkl+sc.pair] = d[sc.d]
				}
			}
		}
		hb.data, hb.cols = out, nkl
	}
	half.complete = true
	e.log.Info("end of integral transform")

	return nil
}

// TransformTwoElectron runs both passes and returns the (ij|kl) tensor packed
// by the MO pair catalog. opts configure the returned store.
func (e *Engine) TransformTwoElectron(src *integrals.PackedStore, opts ...integrals.Option) (*integrals.PackedStore, error) {
	half, err := e.HalfTransform(src)
	if err != nil {
		return nil, transformErrorf(opTEI, err)
	}
	if err = e.CompleteTransform(half); err != nil {
		return nil, transformErrorf(opTEI, err)
	}
	out, err := half.Pack(opts...)
	if err != nil {
		return nil, transformErrorf(opTEI, err)
	}

	return out, nil
}
