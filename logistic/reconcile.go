// SPDX-License-Identifier: MIT

package logistic

import (
	"github.com/katalvlaran/irt/ndarray"
)

// Reconcile validates the dimensional compatibility of normalized parameters
// and reshapes discrimination and trait so that the logistic formula
// broadcasts over items or examinees. Difficulty is returned untouched by
// construction: it is never reshaped.
//
// Stage 1 (Rank): every parameter must be rank 1 or 2 (ErrShapeRank).
// Stage 2 (Discrimination):
//   - rank 1: len must equal difficulty's leading dimension
//     (ErrItemCountMismatch); promoted to (n,1) when difficulty is rank 2.
//   - rank 2: must be (n,1) or (1,n) (ErrSlopShape) with n equal to
//     difficulty's leading dimension (ErrItemCountMismatch); demoted to (n,)
//     when difficulty is rank 1 and turned into (n,1) when difficulty is rank 2.
//
// Stage 3 (Trait): rank 2 must be (m,1) (ErrThetaShape); rank 1 with m != 1
// is promoted to (m,1).
// Stage 4 (Cross-check): more than one item together with more than one
// examinee is ErrItemTraitConflict.
//
// Complexity: O(1); reshapes share storage.
func Reconcile(slop, threshold, theta *ndarray.Array) (*ndarray.Array, *ndarray.Array, error) {
	params := []struct {
		p Parameter
		a *ndarray.Array
	}{{Discrimination, slop}, {Difficulty, threshold}, {Trait, theta}}
	for _, x := range params {
		if x.a == nil {
			return nil, nil, paramErrorf(x.p, nil, ErrInvalidParameterType, "nil array")
		}
		if r := x.a.Rank(); r < 1 || r > 2 {
			return nil, nil, paramErrorf(x.p, x.a.Shape(), ErrShapeRank, "rank %d", r)
		}
	}

	slop, err := reconcileSlop(slop, threshold)
	if err != nil {
		return nil, nil, err
	}
	theta, err = reconcileTheta(theta)
	if err != nil {
		return nil, nil, err
	}

	items := max(slop.Size(), threshold.Size())
	if examinees := theta.Size(); items > 1 && examinees > 1 {
		return nil, nil, paramErrorf(Trait, theta.Shape(), ErrItemTraitConflict,
			"%d examinees against %d items", examinees, items)
	}
	if _, err := ndarray.BroadcastShapes(slop.Shape(), threshold.Shape(), theta.Shape()); err != nil {
		e := paramErrorf(Trait, theta.Shape(), ErrItemTraitConflict, "")
		e.Cause = err
		return nil, nil, e
	}

	return slop, theta, nil
}

// reconcileSlop applies Stage 2 of Reconcile.
func reconcileSlop(slop, threshold *ndarray.Array) (*ndarray.Array, error) {
	n := threshold.Len()
	shape := slop.Shape()

	if slop.Rank() == 1 {
		if shape[0] != n {
			return nil, paramErrorf(Discrimination, shape, ErrItemCountMismatch,
				"%d items, difficulty has %d", shape[0], n)
		}
		if threshold.Rank() == 2 {
			return mustReshape(slop, n, 1), nil
		}
		return slop, nil
	}

	var k int
	switch rows, cols := shape[0], shape[1]; {
	case cols == 1:
		k = rows
	case rows == 1:
		k = cols
	default:
		return nil, paramErrorf(Discrimination, shape, ErrSlopShape, "")
	}
	if k != n {
		return nil, paramErrorf(Discrimination, shape, ErrItemCountMismatch,
			"%d items, difficulty has %d", k, n)
	}
	if threshold.Rank() == 1 {
		return mustReshape(slop, k), nil
	}

	// Keep items on the leading axis; a (1,n) row against an (n,...) difficulty
	// would otherwise broadcast into an n×n grid.
	return mustReshape(slop, k, 1), nil
}

// reconcileTheta applies Stage 3 of Reconcile.
func reconcileTheta(theta *ndarray.Array) (*ndarray.Array, error) {
	shape := theta.Shape()
	if theta.Rank() == 2 {
		if shape[1] != 1 {
			return nil, paramErrorf(Trait, shape, ErrThetaShape, "")
		}
		return theta, nil
	}
	if shape[0] != 1 {
		return mustReshape(theta, shape[0], 1), nil
	}

	return theta, nil
}

// mustReshape reshapes a to a shape with the same number of elements.
// A failure is a bug in this package, not a caller error.
func mustReshape(a *ndarray.Array, shape ...int) *ndarray.Array {
	out, err := a.Reshape(shape...)
	if err != nil {
		panic("logistic: " + err.Error())
	}

	return out
}
