// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/irt/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateVector covers nil inputs, row/column vectors and full matrices.
func TestValidateVector(t *testing.T) {
	t.Parallel()

	dense := func(r, c int) matrix.Matrix {
		m, err := matrix.NewDense(r, c)
		require.NoError(t, err)
		return m
	}
	var typedNil *matrix.Dense

	tests := []struct {
		name    string
		m       matrix.Matrix
		wantErr error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"typed nil", typedNil, matrix.ErrNilMatrix},
		{"1x1", dense(1, 1), nil},
		{"row 1x4", dense(1, 4), nil},
		{"column 4x1", dense(4, 1), nil},
		{"full 2x3", dense(2, 3), matrix.ErrNotVector},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateVector(tc.m)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Truef(t, errors.Is(err, tc.wantErr),
				"expected errors.Is(%v, %v)", err, tc.wantErr)
		})
	}
}

func TestFlatten_RowAndColumnAgree(t *testing.T) {
	t.Parallel()

	row, err := matrix.NewDenseFrom([][]float64{{1, 2, 3}})
	require.NoError(t, err)
	col, err := matrix.NewDenseFrom([][]float64{{1}, {2}, {3}})
	require.NoError(t, err)

	gotRow, err := matrix.Flatten(row)
	require.NoError(t, err)
	gotCol, err := matrix.Flatten(col)
	require.NoError(t, err)

	require.Equal(t, []float64{1, 2, 3}, gotRow)
	require.Equal(t, gotRow, gotCol)
}

func TestFlatten_RejectsFullMatrix(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDenseFrom([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	_, err = matrix.Flatten(m)
	require.ErrorIs(t, err, matrix.ErrNotVector)
}
