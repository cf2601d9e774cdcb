// SPDX-License-Identifier: MIT

package integrals

import (
	"errors"
	"fmt"
)

var (
	// ErrSymmetryForbidden indicates a record (pq|rs) whose two pairs belong to
	// different irreps; such integrals vanish by symmetry and have no slot.
	ErrSymmetryForbidden = errors.New("integrals: pairs belong to different irreps")

	// ErrShape indicates a one-electron array or matrix of the wrong size.
	ErrShape = errors.New("integrals: shape mismatch")

	// ErrNilCatalog indicates a store built without a pair catalog.
	ErrNilCatalog = errors.New("integrals: nil pair catalog")
)

func integralsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
