// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/motrans/integrals"
	"github.com/katalvlaran/motrans/iwl"
	"github.com/katalvlaran/motrans/symmetry"
	"github.com/katalvlaran/motrans/transform"
)

// newEngine wires catalogs and coefficients described by rf.
func newEngine(rf *RunFile, log *slog.Logger) (*transform.Engine, error) {
	so, mo, err := rf.Bases()
	if err != nil {
		return nil, err
	}
	coef, err := rf.Coefficients()
	if err != nil {
		return nil, err
	}
	opts := []transform.Option{transform.WithLogger(log)}
	if rf.OrthonormalEps > 0 {
		opts = append(opts, transform.WithOrthonormalityCheck(rf.OrthonormalEps))
	}

	return transform.NewEngine(transform.Config{
		SOPairs:      symmetry.NewPairCatalog(so),
		MOPairs:      symmetry.NewPairCatalog(mo),
		SO:           symmetry.NewCatalog(so),
		MO:           symmetry.NewCatalog(mo),
		Coefficients: coef,
	}, opts...)
}

// runTransform reads the SO integrals named by rf, transforms them and
// writes the non-zero canonical MO integrals to out.
func runTransform(rf *RunFile, out io.Writer, log *slog.Logger) error {
	if rf.TEI == "" {
		return errMissingTEI
	}
	e, err := newEngine(rf, log)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(out)

	if err = transformTEI(rf, e, w, log); err != nil {
		return err
	}
	if rf.OEI != "" {
		if err = transformOEI(rf, e, w); err != nil {
			return err
		}
	}

	return w.Flush()
}

func transformTEI(rf *RunFile, e *transform.Engine, w io.Writer, log *slog.Logger) error {
	f, err := os.Open(rf.path(rf.TEI))
	if err != nil {
		return fmt.Errorf("failed to open two-electron stream: %w", err)
	}
	defer f.Close()

	src := integrals.NewPackedStore(e.SOPairs(), integrals.WithLogger(log))
	stream := iwl.NewReader(f, iwl.WithCapacity(rf.Capacity))
	if _, err = src.ReadTwoElectron(stream); err != nil {
		return fmt.Errorf("failed to read %s after %d records: %w", rf.TEI, stream.Records(), err)
	}
	log.Debug("SO integrals stored", "slots", src.Len())
	res, err := e.TransformTwoElectron(src, integrals.WithLogger(log))
	if err != nil {
		return err
	}
	src.Release()

	fmt.Fprintln(w, "# two-electron (ij|kl)")
	err = res.Each(func(i, j, k, l int, v float64) error {
		_, err := fmt.Fprintf(w, "%4d %4d %4d %4d %20.12f\n", i, j, k, l, v)
		return err
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "# checksum %016x\n", res.Checksum())

	return err
}

func transformOEI(rf *RunFile, e *transform.Engine, w io.Writer) error {
	f, err := os.Open(rf.path(rf.OEI))
	if err != nil {
		return fmt.Errorf("failed to open one-electron file: %w", err)
	}
	defer f.Close()

	n := 0
	for _, ir := range rf.Irreps {
		n += ir.SO
	}
	h, err := integrals.ReadOneElectron(bufio.NewReader(f), n)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", rf.OEI, err)
	}
	res, err := e.TransformOneElectron(h)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "# one-electron h(i,j)")
	for i := 0; i < res.Size(); i++ {
		for j := 0; j <= i; j++ {
			v, err := res.At(i, j)
			if err != nil {
				return err
			}
			if v == 0 {
				continue
			}
			if _, err = fmt.Fprintf(w, "%4d %4d %20.12f\n", i, j, v); err != nil {
				return err
			}
		}
	}

	return nil
}

// describe prints the irrep layout and pair counts of rf.
func describe(rf *RunFile, out io.Writer) error {
	so, mo, err := rf.Bases()
	if err != nil {
		return err
	}
	soPairs, moPairs := symmetry.NewPairCatalog(so), symmetry.NewPairCatalog(mo)
	fmt.Fprintf(out, "%-6s %5s %5s %9s %9s\n", "irrep", "so", "mo", "so pairs", "mo pairs")
	for h := 0; h < so.Irreps(); h++ {
		fmt.Fprintf(out, "%-6s %5d %5d %9d %9d\n", so.Label(h), so.Count(h), mo.Count(h), soPairs.PairCount(h), moPairs.PairCount(h))
	}
	_, err = fmt.Fprintf(out, "%-6s %5d %5d %9d %9d\n", "total", so.Orbitals(), mo.Orbitals(), soPairs.Size(), moPairs.Size())

	return err
}
