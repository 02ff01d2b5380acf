// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions in this package return these sentinels (optionally wrapped with
// call-site context via fmt.Errorf("%s: %w")) and tests match them via errors.Is.
// No exported function panics on user-triggered error conditions.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0, c<=0)
	// or when row literals passed to NewDenseFrom are ragged.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNotVector signals that a row or column vector (one dimension == 1)
	// was required but both dimensions exceed 1.
	ErrNotVector = errors.New("matrix: matrix is not a row or column vector")
)
