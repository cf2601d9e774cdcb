// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/motrans/iwl"
	"github.com/katalvlaran/motrans/matrix"
	"github.com/katalvlaran/motrans/symmetry"
	"github.com/katalvlaran/motrans/transform"
	"github.com/pelletier/go-toml/v2"
)

var (
	errMissingTEI   = errors.New("run file: tei path is required")
	errMOCount      = errors.New("run file: mo count must be in [0, so]")
	errCoefficients = errors.New("run file: coefficient block does not match so×mo")
)

// RunFile describes one transformation run.
//
//	tei = "so_tei.iwl"
//	oei = "so_oei.bin"
//
//	[[irrep]]
//	label = "A1"
//	so = 2
//	mo = 2
//	coefficients = [[0.6, 0.8], [0.8, -0.6]]
//
// Coefficient rows are SO functions, columns MOs. An irrep without
// coefficients and with so == mo uses the identity. Relative paths are
// resolved against the run file's directory.
type RunFile struct {
	TEI            string      `toml:"tei"`
	OEI            string      `toml:"oei"`
	Capacity       int         `toml:"capacity"`
	OrthonormalEps float64     `toml:"orthonormality_eps"`
	Irreps         []IrrepSpec `toml:"irrep"`

	dir string
}

// IrrepSpec is one [[irrep]] table.
type IrrepSpec struct {
	Label        string      `toml:"label"`
	SO           int         `toml:"so"`
	MO           int         `toml:"mo"`
	Coefficients [][]float64 `toml:"coefficients"`
}

// LoadRunFile decodes and validates the TOML run file at path.
func LoadRunFile(path string) (*RunFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open run file: %w", err)
	}
	defer f.Close()

	var rf RunFile
	if err = toml.NewDecoder(f).DisallowUnknownFields().Decode(&rf); err != nil {
		return nil, fmt.Errorf("failed to parse run file %s: %w", path, err)
	}
	rf.dir = filepath.Dir(path)
	if rf.Capacity == 0 {
		rf.Capacity = iwl.DefaultCapacity
	}
	if err = rf.validate(); err != nil {
		return nil, err
	}

	return &rf, nil
}

func (rf *RunFile) validate() error {
	if rf.Capacity < 0 {
		return fmt.Errorf("run file: capacity %d must be positive", rf.Capacity)
	}
	for _, ir := range rf.Irreps {
		if ir.MO < 0 || ir.MO > ir.SO {
			return fmt.Errorf("irrep %q: %w", ir.Label, errMOCount)
		}
		if ir.Coefficients == nil {
			if ir.SO != ir.MO {
				return fmt.Errorf("irrep %q: %d×%d needs explicit coefficients: %w", ir.Label, ir.SO, ir.MO, errCoefficients)
			}
			continue
		}
		if len(ir.Coefficients) != ir.SO {
			return fmt.Errorf("irrep %q: %d rows: %w", ir.Label, len(ir.Coefficients), errCoefficients)
		}
		for _, row := range ir.Coefficients {
			if len(row) != ir.MO {
				return fmt.Errorf("irrep %q: row of %d: %w", ir.Label, len(row), errCoefficients)
			}
		}
	}

	return nil
}

// path resolves p against the run file's directory.
func (rf *RunFile) path(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}

	return filepath.Join(rf.dir, p)
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}

	return p
}

// Bases builds the SO and MO bases described by the irrep tables.
func (rf *RunFile) Bases() (so, mo *symmetry.Basis, err error) {
	labels := make([]string, len(rf.Irreps))
	nso := make([]int, len(rf.Irreps))
	nmo := make([]int, len(rf.Irreps))
	for h, ir := range rf.Irreps {
		labels[h], nso[h], nmo[h] = ir.Label, ir.SO, ir.MO
	}
	if so, err = symmetry.NewBasis(labels, nso); err != nil {
		return nil, nil, fmt.Errorf("SO basis: %w", err)
	}
	if mo, err = symmetry.NewBasis(labels, nmo); err != nil {
		return nil, nil, fmt.Errorf("MO basis: %w", err)
	}

	return so, mo, nil
}

// Coefficients returns the per-irrep coefficient blocks.
func (rf *RunFile) Coefficients() (*transform.BlockCoefficients, error) {
	blocks := make([]*matrix.Dense, len(rf.Irreps))
	for h, ir := range rf.Irreps {
		if ir.SO == 0 || ir.MO == 0 {
			continue
		}
		var err error
		if ir.Coefficients == nil {
			blocks[h], err = matrix.NewIdentity(ir.SO)
		} else {
			blocks[h], err = matrix.NewDenseRows(ir.Coefficients)
		}
		if err != nil {
			return nil, fmt.Errorf("irrep %q: %w", ir.Label, err)
		}
	}

	return transform.NewBlockCoefficients(blocks), nil
}
