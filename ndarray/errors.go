// SPDX-License-Identifier: MIT
// Package ndarray: sentinel error set.
// Every exported function returns one of these sentinels wrapped with the
// operation name ("Reshape: ndarray: size mismatch"); match with errors.Is.

package ndarray

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned for an empty shape (rank 0) or a negative dimension.
	ErrBadShape = errors.New("ndarray: invalid shape")

	// ErrSizeMismatch indicates that the number of values does not equal the
	// product of the requested dimensions.
	ErrSizeMismatch = errors.New("ndarray: size mismatch")

	// ErrOutOfRange indicates an index outside the array bounds or an index
	// tuple whose length differs from the rank.
	ErrOutOfRange = errors.New("ndarray: index out of range")

	// ErrBroadcast indicates operand shapes that cannot be broadcast together.
	ErrBroadcast = errors.New("ndarray: shapes cannot be broadcast together")

	// ErrNilArray indicates a nil *Array operand.
	ErrNilArray = errors.New("ndarray: nil array")
)

// arrayErrorf wraps err with the operation tag.
func arrayErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
