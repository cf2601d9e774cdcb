// SPDX-License-Identifier: MIT
// Package symmetry: sentinel error set.
// Every message is prefixed with "symmetry: ..." so callers can grep logs;
// match them with errors.Is.

package symmetry

import "errors"

var (
	// ErrEmptyBasis is returned when a basis declares no irreps or no orbitals.
	ErrEmptyBasis = errors.New("symmetry: basis has no orbitals")

	// ErrIrrepCount indicates an irrep count that is not 1, 2, 4 or 8.
	// Only those groups have an XOR multiplication table.
	ErrIrrepCount = errors.New("symmetry: irrep count must be 1, 2, 4 or 8")

	// ErrNegativeCount indicates a negative number of orbitals in an irrep.
	ErrNegativeCount = errors.New("symmetry: negative orbital count")

	// ErrLabelCount indicates that labels and counts have different lengths.
	ErrLabelCount = errors.New("symmetry: labels and counts differ in length")

	// ErrOrbitalOutOfRange indicates an orbital index outside [0, Orbitals()).
	ErrOrbitalOutOfRange = errors.New("symmetry: orbital index out of range")

	// ErrIrrepOutOfRange indicates an irrep label outside [0, Irreps()).
	ErrIrrepOutOfRange = errors.New("symmetry: irrep out of range")
)
