// SPDX-License-Identifier: MIT

package iwl

import "errors"

var (
	// ErrCorruptBuffer indicates a buffer header with an impossible record count.
	ErrCorruptBuffer = errors.New("iwl: corrupt buffer header")

	// ErrLabelRange indicates a label that does not fit the int16 encoding.
	ErrLabelRange = errors.New("iwl: label out of int16 range")

	// ErrClosed indicates a write after Close.
	ErrClosed = errors.New("iwl: writer closed")

	// ErrBufferSize indicates a non-positive buffer capacity.
	ErrBufferSize = errors.New("iwl: buffer capacity must be > 0")
)
