// SPDX-License-Identifier: MIT
// Package: logistic
//
// Purpose:
//   - Turn a raw parameter value into an *ndarray.Array, or reject it with
//     ErrInvalidParameterType / ErrInvalidElementType naming the parameter.
//
// Accepted inputs:
//   - Go integer and float kinds (named types included): a length-1 vector.
//   - Slices and arrays of numbers, including []any decoded from YAML/JSON:
//     a vector; nested sequences keep their rank.
//   - *ndarray.Array and ndarray.Array: passed through unchanged.
//   - matrix.Matrix: flattened when it is a row or column vector.
//
// Determinism & Performance:
//   - Typed fast paths for []float64 and []int; everything else goes through
//     one reflective walk. O(number of elements). The input is never mutated.

package logistic

import (
	"fmt"
	"reflect"

	"github.com/katalvlaran/irt/matrix"
	"github.com/katalvlaran/irt/ndarray"
)

// Normalize coerces raw into a numeric array, labeling errors with p.
func Normalize(raw any, p Parameter) (*ndarray.Array, error) {
	switch v := raw.(type) {
	case nil:
		return nil, paramErrorf(p, nil, ErrInvalidParameterType, "nil value")
	case *ndarray.Array:
		if v == nil {
			return nil, paramErrorf(p, nil, ErrInvalidParameterType, "nil array")
		}
		return v, nil
	case ndarray.Array:
		// A zero Array has no shape; Reshape reports it as ErrBadShape.
		out, err := v.Reshape(v.Shape()...)
		if err != nil {
			e := paramErrorf(p, nil, ErrInvalidParameterType, "uninitialized array")
			e.Cause = err
			return nil, e
		}
		return out, nil
	case float64:
		return ndarray.Scalar(v), nil
	case int:
		return ndarray.Scalar(float64(v)), nil
	case []float64:
		return ndarray.Vector(v...), nil
	case []int:
		out := make([]float64, len(v))
		for i, x := range v {
			out[i] = float64(x)
		}
		return ndarray.Vector(out...), nil
	case matrix.Matrix:
		return normalizeMatrix(v, p)
	}

	rv := reflect.ValueOf(raw)
	if f, ok := numeric(rv); ok {
		return ndarray.Scalar(f), nil
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return normalizeSequence(rv, p)
	}

	return nil, paramErrorf(p, nil, ErrInvalidParameterType,
		"%T is not a number, sequence, array or row/column matrix", raw)
}

// normalizeMatrix flattens a row or column matrix into a vector.
func normalizeMatrix(m matrix.Matrix, p Parameter) (*ndarray.Array, error) {
	values, err := matrix.Flatten(m)
	if err != nil {
		var shape []int
		if matrix.ValidateNotNil(m) == nil {
			shape = []int{m.Rows(), m.Cols()}
		}
		e := paramErrorf(p, shape, ErrInvalidParameterType, "matrix must be a row or column vector")
		e.Cause = err
		return nil, e
	}

	return ndarray.Vector(values...), nil
}

// numeric reports whether v holds an integer or floating-point value and
// returns it as float64. Interfaces are unwrapped; bools are not numbers.
func numeric(v reflect.Value) (float64, bool) {
	for v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	}

	return 0, false
}

// sequence unwraps interfaces and reports whether v is a slice or array.
func sequence(v reflect.Value) (reflect.Value, bool) {
	for v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	k := v.Kind()

	return v, k == reflect.Slice || k == reflect.Array
}

// normalizeSequence walks a (possibly nested) sequence.
// Stage 1 (Shape): descend through first elements to fix the rank and dims.
// Stage 2 (Walk): visit every element; inconsistent nesting is a parameter
// type error, a non-numeric leaf is an element type error.
func normalizeSequence(rv reflect.Value, p Parameter) (*ndarray.Array, error) {
	shape := []int{rv.Len()}
	for cur := rv; cur.Len() > 0; {
		next, ok := sequence(cur.Index(0))
		if !ok {
			break
		}
		shape = append(shape, next.Len())
		cur = next
	}

	w := &walker{param: p, shape: shape}
	if err := w.walk(rv, 0, nil); err != nil {
		return nil, err
	}
	out, err := ndarray.New(w.data, shape...)
	if err != nil {
		e := paramErrorf(p, shape, ErrInvalidParameterType, "")
		e.Cause = err
		return nil, e
	}

	return out, nil
}

// walker accumulates leaf values in row-major order.
type walker struct {
	param Parameter
	shape []int
	data  []float64
}

func (w *walker) walk(v reflect.Value, depth int, path []int) error {
	if depth == len(w.shape) {
		f, ok := numeric(v)
		if !ok {
			return paramErrorf(w.param, nil, ErrInvalidElementType,
				"element %v is %s", path, describe(v))
		}
		w.data = append(w.data, f)
		return nil
	}

	seq, ok := sequence(v)
	if !ok || seq.Len() != w.shape[depth] {
		return paramErrorf(w.param, nil, ErrInvalidParameterType,
			"ragged sequence at %v, want %d elements along axis %d", path, w.shape[depth], depth)
	}
	for i := 0; i < seq.Len(); i++ {
		if err := w.walk(seq.Index(i), depth+1, append(path, i)); err != nil {
			return err
		}
	}

	return nil
}

// describe names the dynamic type of a non-numeric element.
func describe(v reflect.Value) string {
	for v.Kind() == reflect.Interface {
		if v.IsNil() {
			return "nil"
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return "nil"
	}

	return fmt.Sprintf("%s (%v)", v.Type(), v.Interface())
}
