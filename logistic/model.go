// SPDX-License-Identifier: MIT

package logistic

import (
	"math"

	"github.com/katalvlaran/irt/ndarray"
)

// Model is a two-parameter logistic item response model evaluated over
// reconciled discrimination a, difficulty b and trait θ arrays.
//
// The three parameter arrays are owned by the Model and never change after
// New returns. Probability, FirstDerivative and SecondDerivative are computed
// on first access and cached for the lifetime of the Model. A Model is not
// safe for concurrent first access; callers sharing one across goroutines
// must synchronize the first call of each accessor.
type Model struct {
	slop      *ndarray.Array
	threshold *ndarray.Array
	theta     *ndarray.Array
	shape     []int

	prob   *ndarray.Array // P(θ), nil until first access
	dprob  *ndarray.Array // P'(θ), nil until first access
	ddprob *ndarray.Array // a·P'(θ), nil until first access
}

// New normalizes and reconciles the raw parameters and returns a Model.
// Each argument accepts a number, a (nested) sequence of numbers, an
// *ndarray.Array or a row/column matrix.Matrix.
//
// Errors: a *ParameterError wrapping one of the package sentinels; no
// partially built Model is ever returned.
func New(slop, threshold, theta any) (*Model, error) {
	a, err := Normalize(slop, Discrimination)
	if err != nil {
		return nil, err
	}
	b, err := Normalize(threshold, Difficulty)
	if err != nil {
		return nil, err
	}
	t, err := Normalize(theta, Trait)
	if err != nil {
		return nil, err
	}

	a, t, err = Reconcile(a, b, t)
	if err != nil {
		return nil, err
	}
	shape, err := ndarray.BroadcastShapes(a.Shape(), b.Shape(), t.Shape())
	if err != nil {
		return nil, paramErrorf(Trait, t.Shape(), ErrItemTraitConflict, "%v", err)
	}

	return &Model{slop: a, threshold: b, theta: t, shape: shape}, nil
}

// Discrimination returns the reconciled discrimination array.
func (m *Model) Discrimination() *ndarray.Array { return m.slop }

// Difficulty returns the difficulty array exactly as normalized.
func (m *Model) Difficulty() *ndarray.Array { return m.threshold }

// Trait returns the reconciled trait array.
func (m *Model) Trait() *ndarray.Array { return m.theta }

// Shape returns the shape shared by all computed values.
func (m *Model) Shape() []int { return append([]int(nil), m.shape...) }

// Probability returns P(θ) = exp(a(θ-b)) / (1 + exp(a(θ-b))).
// When exp overflows the value saturates at 1, the limit of the curve.
func (m *Model) Probability() *ndarray.Array {
	if m.prob == nil {
		z := must(ndarray.Sub(m.theta, m.threshold))
		z = must(ndarray.Mul(m.slop, z))
		m.prob = must(ndarray.Map(z, logistic))
	}

	return m.prob
}

// FirstDerivative returns dP/dθ = a·P·(1-P).
func (m *Model) FirstDerivative() *ndarray.Array {
	if m.dprob == nil {
		p := m.Probability()
		ap := must(ndarray.Mul(m.slop, p))
		m.dprob = must(ndarray.Apply(ap, p, func(x, q float64) float64 { return x * (1 - q) }))
	}

	return m.dprob
}

// SecondDerivative returns a·FirstDerivative().
func (m *Model) SecondDerivative() *ndarray.Array {
	if m.ddprob == nil {
		m.ddprob = must(ndarray.Mul(m.slop, m.FirstDerivative()))
	}

	return m.ddprob
}

// logistic evaluates e^z / (1 + e^z).
func logistic(z float64) float64 {
	e := math.Exp(z)
	if math.IsInf(e, 1) {
		return 1
	}

	return e / (1 + e)
}

// must unwraps kernel results whose shapes were validated by New.
func must(a *ndarray.Array, err error) *ndarray.Array {
	if err != nil {
		panic("logistic: " + err.Error())
	}

	return a
}
