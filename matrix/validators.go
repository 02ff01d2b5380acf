// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for the checks applied to matrix-like input.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly and tests can match with errors.Is.
//
// Determinism & Performance:
//  - Validators are pure and allocate nothing.
//  - Flatten allocates exactly one slice of Rows()*Cols() values.

package matrix

import (
	"fmt"
	"reflect"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including a typed
// nil pointer stored in the interface (e.g. (*Dense)(nil)).
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if v := reflect.ValueOf(m); v.Kind() == reflect.Pointer && v.IsNil() {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateVector – Composite: NotNil → (Rows == 1 || Cols == 1).
//
// Errors: ErrNilMatrix, ErrBadShape for an empty matrix, ErrNotVector when both
// dimensions exceed 1.
// Complexity: O(1).
func ValidateVector(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateVector", err)
	}
	r, c := m.Rows(), m.Cols()
	if r <= 0 || c <= 0 {
		return validatorErrorf("ValidateVector", ErrBadShape)
	}
	if r != 1 && c != 1 {
		return validatorErrorf("ValidateVector", ErrNotVector)
	}

	return nil
}

// Flatten returns the values of a row or column vector in order.
// Both orientations produce the same slice: a 1×n row and an n×1 column
// holding the same values flatten identically.
//
// Errors: anything ValidateVector reports, or an At error from a misbehaving
// implementation.
// Complexity: O(n).
func Flatten(m Matrix) ([]float64, error) {
	if err := ValidateVector(m); err != nil {
		return nil, validatorErrorf("Flatten", err)
	}
	r, c := m.Rows(), m.Cols()
	out := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, validatorErrorf("Flatten", err)
			}
			out = append(out, v)
		}
	}

	return out, nil
}
