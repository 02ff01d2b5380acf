// SPDX-License-Identifier: MIT

package logistic_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/irt/logistic"
	"github.com/katalvlaran/irt/matrix"
	"github.com/katalvlaran/irt/ndarray"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModel_EndToEnd(t *testing.T) {
	t.Parallel()

	m, err := logistic.New(1.0, 0.0, 0.0)
	require.NoError(t, err)

	assert.Equal(t, []float64{0.5}, m.Probability().Data())
	assert.Equal(t, []float64{0.25}, m.FirstDerivative().Data())
	assert.Equal(t, []float64{0.25}, m.SecondDerivative().Data())
	assert.Equal(t, []int{1}, m.Shape())
}

func TestModel_ScalarFormula(t *testing.T) {
	t.Parallel()

	cases := [][3]float64{
		{1, 0, 0},
		{1.7, -0.3, 1.2},
		{0.4, 2, -2},
		{2.5, 1, 1.5},
	}
	for _, c := range cases {
		a, b, theta := c[0], c[1], c[2]
		m, err := logistic.New(a, b, theta)
		require.NoError(t, err)

		e := math.Exp(a * (theta - b))
		want := e / (1 + e)
		got := m.Probability().Data()[0]
		assert.Equal(t, want, got, "a=%v b=%v θ=%v", a, b, theta)
		assert.Greater(t, got, 0.0)
		assert.Less(t, got, 1.0)
	}
}

func TestModel_Memoized(t *testing.T) {
	t.Parallel()

	m, err := logistic.New([]float64{0.8, 1.2, 1.6}, []float64{-1, 0, 1}, 0.3)
	require.NoError(t, err)

	p1, p2 := m.Probability(), m.Probability()
	require.Same(t, p1, p2)
	require.True(t, p1.Equal(p2))

	require.Same(t, m.FirstDerivative(), m.FirstDerivative())
	require.Same(t, m.SecondDerivative(), m.SecondDerivative())
}

func TestModel_MonotoneInTheta(t *testing.T) {
	t.Parallel()

	thetas := make([]float64, 0, 81)
	for x := -4.0; x <= 4.0; x += 0.1 {
		thetas = append(thetas, x)
	}
	m, err := logistic.New(1.3, 0.2, thetas)
	require.NoError(t, err)

	p := m.Probability()
	require.Equal(t, []int{len(thetas), 1}, p.Shape())
	data := p.Data()
	for i := 1; i < len(data); i++ {
		require.GreaterOrEqual(t, data[i], data[i-1], "θ=%v", thetas[i])
	}
}

func TestModel_DerivativeConsistency(t *testing.T) {
	t.Parallel()

	col, err := matrix.NewDenseFrom([][]float64{{0.5}, {1}, {1.5}})
	require.NoError(t, err)
	thetaCol, err := ndarray.New([]float64{-1, 0, 1, 2}, 4, 1)
	require.NoError(t, err)

	tests := []struct {
		name                   string
		slop, threshold, theta any
		shape                  []int
	}{
		{"items vector", []float64{0.5, 1, 1.5}, []float64{-1, 0, 1}, 0.25, []int{3}},
		{"items column", []float64{0.5, 1, 1.5}, [][]float64{{-1}, {0}, {1}}, 0.25, []int{3, 1}},
		{"matrix slop", col, []float64{-1, 0, 1}, []float64{0.25}, []int{3}},
		{"examinees vector", 1.2, 0.5, []float64{-1, 0, 1, 2}, []int{4, 1}},
		{"examinees column", []float64{1.2}, []float64{0.5}, thetaCol, []int{4, 1}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			m, err := logistic.New(tc.slop, tc.threshold, tc.theta)
			require.NoError(t, err)
			require.Equal(t, tc.shape, m.Shape())

			a := m.Discrimination().Data()
			p := m.Probability().Data()
			dp := m.FirstDerivative().Data()
			ddp := m.SecondDerivative().Data()
			require.Len(t, dp, len(p))
			require.Len(t, ddp, len(p))
			for i := range p {
				ai := a[i%len(a)]
				assert.Equal(t, ai*p[i]*(1-p[i]), dp[i], "first derivative [%d]", i)
				assert.Equal(t, ai*dp[i], ddp[i], "second derivative [%d]", i)
			}
		})
	}
}

func TestModel_ShapeCoercion(t *testing.T) {
	t.Parallel()

	m, err := logistic.New([]int{1, 2, 3}, [][]int{{1}, {2}, {3}}, 1)
	require.NoError(t, err)
	require.Equal(t, []int{3, 1}, m.Discrimination().Shape())
	require.Equal(t, []int{3, 1}, m.Difficulty().Shape())
	require.Equal(t, []int{3, 1}, m.Probability().Shape())
}

func TestModel_ConstructionErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                   string
		slop, threshold, theta any
		want                   error
		param                  logistic.Parameter
	}{
		{"string slop", "a", 1, 1, logistic.ErrInvalidParameterType, logistic.Discrimination},
		{"string difficulty", 1, "a", 1, logistic.ErrInvalidParameterType, logistic.Difficulty},
		{"string trait", 1, 1, "a", logistic.ErrInvalidParameterType, logistic.Trait},
		{"string element", []any{1, "2", 3}, []int{1, 2, 3}, 1, logistic.ErrInvalidElementType, logistic.Discrimination},
		{"rank 3", []any{[]any{[]any{1, 2, 3}}}, []int{1, 2, 3}, 1, logistic.ErrShapeRank, logistic.Discrimination},
		{"count mismatch", []int{1, 2, 3}, []int{1, 2}, 1, logistic.ErrItemCountMismatch, logistic.Discrimination},
		{"square slop", [][]int{{1, 2, 3}, {1, 2, 3}, {1, 2, 3}}, []int{1, 2, 3}, 1, logistic.ErrSlopShape, logistic.Discrimination},
		{"row slop literal", [][]int{{1, 2, 3}}, []int{1, 2, 3}, 1, nil, ""},
		{"row trait", []int{1, 2, 3}, []int{1, 2, 3}, [][]int{{1, 2}}, logistic.ErrThetaShape, logistic.Trait},
		{"items and examinees", []int{1, 2, 3}, []int{1, 2, 3}, []int{1, 2}, logistic.ErrItemTraitConflict, logistic.Trait},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			m, err := logistic.New(tc.slop, tc.threshold, tc.theta)
			if tc.want == nil {
				require.NoError(t, err)
				require.NotNil(t, m)
				return
			}
			require.Nil(t, m)
			require.ErrorIs(t, err, tc.want)
			require.Contains(t, err.Error(), string(tc.param))
		})
	}
}

func TestModel_Saturation(t *testing.T) {
	t.Parallel()

	m, err := logistic.New(1000.0, 0.0, []float64{1, -1})
	require.NoError(t, err)

	p := m.Probability().Data()
	require.Equal(t, []float64{1, 0}, p)
	require.Equal(t, []float64{0, 0}, m.FirstDerivative().Data())
	require.False(t, math.IsNaN(m.SecondDerivative().Data()[0]))
}

func TestModel_InputsNotMutated(t *testing.T) {
	t.Parallel()

	theta, err := ndarray.New([]float64{-1, 0, 1}, 3)
	require.NoError(t, err)
	m, err := logistic.New(1, 0, theta)
	require.NoError(t, err)

	require.Equal(t, []int{3}, theta.Shape(), "caller's array keeps its shape")
	require.Equal(t, []int{3, 1}, m.Trait().Shape())
}
