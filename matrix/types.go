// SPDX-License-Identifier: MIT

// Package matrix: the Matrix interface consumed by the logistic normalizer.
package matrix

// Matrix is a read-only view over a two-dimensional array of float64 values.
// Anything that satisfies it is treated as "matrix-like" input by the
// logistic package: row and column vectors are flattened, everything else is
// rejected.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)
}
