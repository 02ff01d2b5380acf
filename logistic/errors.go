// SPDX-License-Identifier: MIT
// Package logistic: sentinel error set.
// Every error returned by Normalize, Reconcile and New is a *ParameterError
// naming the offending parameter and unwrapping to exactly one of the
// sentinels below; callers match with errors.Is and, when they need the
// parameter or shape, errors.As.
//
// ERROR PRIORITY (enforced in tests):
// parameter type -> element type -> rank -> discrimination shape
// -> item counts -> trait shape -> item/trait conflict.

package logistic

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidParameterType: the raw value is not a number, a sequence,
	// an *ndarray.Array or a row/column matrix.
	ErrInvalidParameterType = errors.New("logistic: invalid parameter type")

	// ErrInvalidElementType: a sequence holds something other than an
	// integer or floating-point number.
	ErrInvalidElementType = errors.New("logistic: invalid element type")

	// ErrShapeRank: a parameter is not of rank 1 or 2.
	ErrShapeRank = errors.New("logistic: discrimination, difficulty, or trait parameter may only be rank 1 or 2")

	// ErrSlopShape: discrimination is rank 2 but neither (n,1) nor (1,n).
	ErrSlopShape = errors.New("logistic: discrimination parameter of rank 2 must have shape (n,1) or (1,n)")

	// ErrItemCountMismatch: discrimination and difficulty describe a
	// different number of items.
	ErrItemCountMismatch = errors.New("logistic: discrimination and difficulty item counts differ")

	// ErrThetaShape: trait is rank 2 but not (m,1).
	ErrThetaShape = errors.New("logistic: trait parameter of rank 2 must have shape (m,1)")

	// ErrItemTraitConflict: more than one item was paired with more than one
	// examinee.
	ErrItemTraitConflict = errors.New("logistic: many items cannot be evaluated against many examinees")
)

// ParameterError reports a construction failure for one parameter.
type ParameterError struct {
	Param  Parameter // which parameter failed
	Shape  []int     // its shape at the time of failure, nil before normalization
	Detail string    // optional human-readable context
	Err    error     // one of the Err* sentinels
	Cause  error     // optional lower-level error (matrix, ndarray)
}

// Error renders "<param> [shape]: <detail>: <sentinel>".
func (e *ParameterError) Error() string {
	var sb strings.Builder
	sb.WriteString(string(e.Param))
	if e.Shape != nil {
		fmt.Fprintf(&sb, " %v", e.Shape)
	}
	if e.Detail != "" {
		sb.WriteString(": " + e.Detail)
	}
	sb.WriteString(": " + e.Err.Error())

	return sb.String()
}

// Unwrap exposes both the sentinel and the lower-level cause to errors.Is/As.
func (e *ParameterError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// paramErrorf builds a *ParameterError; format may be empty.
func paramErrorf(p Parameter, shape []int, sentinel error, format string, args ...any) *ParameterError {
	e := &ParameterError{Param: p, Shape: shape, Err: sentinel}
	if format != "" {
		e.Detail = fmt.Sprintf(format, args...)
	}

	return e
}
