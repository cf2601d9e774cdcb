// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/motrans/matrix"
	"github.com/katalvlaran/motrans/symmetry"
)

const opNewEngine = "NewEngine"

// Config lists the read-only collaborators of an Engine. Their lifetime is
// that of the basis/molecule they describe; the Engine never mutates them.
type Config struct {
	SOPairs      symmetry.Indexer    // pairs of SO functions ("rs" space)
	MOPairs      symmetry.Indexer    // pairs of MOs ("ij" space)
	SO           *symmetry.Catalog   // single SO functions per irrep
	MO           *symmetry.Catalog   // single MOs per irrep
	Coefficients CoefficientProvider // per-irrep SO×MO blocks
}

// Engine performs the SO→MO transformation of one- and two-electron integrals.
type Engine struct {
	soPairs symmetry.Indexer
	moPairs symmetry.Indexer
	so, mo  *symmetry.Catalog
	coef    []*matrix.Dense // irrep → SO×MO block (nil for empty irreps)
	full    *matrix.Dense   // block-diagonal SO×MO matrix, built lazily
	irreps  int
	log     *slog.Logger
}

// NewEngine validates cfg and captures the coefficient blocks.
//
// Implementation:
//   - Stage 1: reject nil collaborators and catalogs of different groups.
//   - Stage 2: walk every canonical orbital pair of SO and of MO and check
//     that the pair catalog places it in irrep(p)⊗irrep(q) at a distinct,
//     in-range relative index.
//   - Stage 3: fetch one coefficient block per irrep and check its shape
//     (and orthonormality when WithOrthonormalityCheck is set).
//
// Inputs:
//   - cfg: read-only catalogs and coefficient provider; kept by reference.
//   - opts: WithLogger, WithOrthonormalityCheck.
//
// Returns:
//   - *Engine ready for HalfTransform/CompleteTransform/TransformOneElectron.
//
// Errors:
//   - ErrNilDependency     if any Config field is nil.
//   - ErrIrrepMismatch     if catalogs report different irrep counts or labels.
//   - ErrCatalogMismatch   if a pair catalog disagrees with its orbital catalog.
//   - ErrCoefficientShape  if a block is not SO.Count(h)×MO.Count(h) (or nil for an empty irrep).
//   - ErrNotOrthonormal    if WithOrthonormalityCheck is set and a block fails it.
//
// Complexity:
//   - Time O(nso² + nmo²) for the pair walk plus O(Σ nso(h)·nmo(h)²) for the
//     optional orthonormality check.
func NewEngine(cfg Config, opts ...Option) (*Engine, error) {
	if cfg.SOPairs == nil || cfg.MOPairs == nil || cfg.SO == nil || cfg.MO == nil || cfg.Coefficients == nil {
		return nil, transformErrorf(opNewEngine, ErrNilDependency)
	}
	o := gatherOptions(opts...)

	irreps := cfg.SO.Irreps()
	if cfg.MO.Irreps() != irreps || cfg.SOPairs.Irreps() != irreps || cfg.MOPairs.Irreps() != irreps {
		return nil, transformErrorf(opNewEngine, ErrIrrepMismatch)
	}
	if !cfg.SO.Basis().Compatible(cfg.MO.Basis()) {
		return nil, transformErrorf(opNewEngine, fmt.Errorf("irrep labels differ: %w", ErrIrrepMismatch))
	}
	if err := validateCoverage(cfg.SOPairs, cfg.SO); err != nil {
		return nil, transformErrorf(opNewEngine, fmt.Errorf("SO pairs: %w", err))
	}
	if err := validateCoverage(cfg.MOPairs, cfg.MO); err != nil {
		return nil, transformErrorf(opNewEngine, fmt.Errorf("MO pairs: %w", err))
	}

	e := &Engine{
		soPairs: cfg.SOPairs,
		moPairs: cfg.MOPairs,
		so:      cfg.SO,
		mo:      cfg.MO,
		coef:    make([]*matrix.Dense, irreps),
		irreps:  irreps,
		log:     o.logger,
	}
	for h := 0; h < irreps; h++ {
		blk, err := cfg.Coefficients.Block(h)
		if err != nil {
			return nil, transformErrorf(opNewEngine, err)
		}
		nso, nmo := cfg.SO.Count(h), cfg.MO.Count(h)
		if nso == 0 || nmo == 0 {
			continue // nothing of this irrep survives; the block is ignored
		}
		if blk == nil || blk.Rows() != nso || blk.Cols() != nmo {
			return nil, transformErrorf(opNewEngine, fmt.Errorf("irrep %d want %d×%d: %w", h, nso, nmo, ErrCoefficientShape))
		}
		if o.orthoEps > 0 && !matrix.IsOrthonormal(blk, o.orthoEps) {
			return nil, transformErrorf(opNewEngine, fmt.Errorf("irrep %d: %w", h, ErrNotOrthonormal))
		}
		e.coef[h] = blk
	}

	return e, nil
}

// validateCoverage checks that pairs indexes the n(n+1)/2 canonical pairs of
// c exactly once each, in irrep Product(irrep(p), irrep(q)).
func validateCoverage(pairs symmetry.Indexer, c *symmetry.Catalog) error {
	total := 0
	seen := make([][]bool, pairs.Irreps())
	for h := range seen {
		total += pairs.PairCount(h)
		seen[h] = make([]bool, pairs.PairCount(h))
	}
	if total != symmetry.PackedSize(c.Size()) {
		return fmt.Errorf("%d pairs for %d orbitals: %w", total, c.Size(), ErrCatalogMismatch)
	}

	for p := 0; p < c.Size(); p++ {
		hp, _, err := c.Rel(p)
		if err != nil {
			return err
		}
		for q := 0; q <= p; q++ {
			hq, _, err := c.Rel(q)
			if err != nil {
				return err
			}
			h, rel, err := pairs.Tuple(p, q)
			if err != nil {
				return fmt.Errorf("pair (%d,%d): %v: %w", p, q, err, ErrCatalogMismatch)
			}
			if h != symmetry.Product(hp, hq) || h >= len(seen) || rel < 0 || rel >= len(seen[h]) || seen[h][rel] {
				return fmt.Errorf("pair (%d,%d) -> irrep %d rel %d: %w", p, q, h, rel, ErrCatalogMismatch)
			}
			seen[h][rel] = true
		}
	}

	return nil
}

// Irreps returns the number of irreps handled by the engine.
func (e *Engine) Irreps() int { return e.irreps }

// SOPairs returns the SO pair catalog.
func (e *Engine) SOPairs() symmetry.Indexer { return e.soPairs }

// MOPairs returns the MO pair catalog.
func (e *Engine) MOPairs() symmetry.Indexer { return e.moPairs }

// FullCoefficients returns the block-diagonal SO×MO matrix (built once, shared).
func (e *Engine) FullCoefficients() (*matrix.Dense, error) {
	if e.full != nil {
		return e.full, nil
	}
	full, err := FullMatrix(NewBlockCoefficients(e.coef), e.so, e.mo)
	if err != nil {
		return nil, err
	}
	e.full = full

	return full, nil
}
