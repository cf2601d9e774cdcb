// SPDX-License-Identifier: MIT
// Package transform: sentinel error set ("transform: ..." prefix).

package transform

import (
	"errors"
	"fmt"
)

var (
	// ErrNilDependency indicates a Config with a nil catalog or provider.
	ErrNilDependency = errors.New("transform: nil dependency")

	// ErrIrrepMismatch indicates catalogs built for different point groups.
	ErrIrrepMismatch = errors.New("transform: catalogs disagree on irrep count")

	// ErrCatalogMismatch indicates a pair catalog that does not cover its
	// orbital catalog, or a store addressed by a different catalog.
	ErrCatalogMismatch = errors.New("transform: catalog mismatch")

	// ErrCoefficientShape indicates a coefficient block whose shape is not
	// SO count × MO count of its irrep.
	ErrCoefficientShape = errors.New("transform: coefficient block has wrong shape")

	// ErrNotOrthonormal indicates a coefficient block failing the optional
	// orthonormality check.
	ErrNotOrthonormal = errors.New("transform: coefficient block is not orthonormal")

	// ErrIncomplete indicates use of a half-transformed tensor before pass 2.
	ErrIncomplete = errors.New("transform: second half-transform has not run")

	// ErrIrrepOutOfRange indicates an irrep label outside the provider's range.
	ErrIrrepOutOfRange = errors.New("transform: irrep out of range")

	// ErrPairOutOfRange indicates a pair index outside a half-transformed block.
	ErrPairOutOfRange = errors.New("transform: pair index out of range")

	// ErrShape indicates a one-electron matrix of the wrong dimension.
	ErrShape = errors.New("transform: shape mismatch")
)

func transformErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
