// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - Elementwise kernels with trailing-axis broadcasting for the logistic
//     formulas: shapes are aligned on their trailing axes and every pair of
//     dimensions must be equal or contain a 1.
//
// Determinism & Performance:
//   - Same-shape operands take a flat fast path over both buffers.
//   - Broadcast operands walk the output in row-major order with per-operand
//     strides (stride 0 on broadcast axes); no intermediate copies.
//   - Every kernel allocates exactly one output buffer; O(size(out)) time.

package ndarray

import (
	"fmt"
	"math"
)

// BroadcastShapes returns the shape produced by broadcasting all given shapes.
// Returns ErrBadShape for an empty shape list and ErrBroadcast on conflict.
// Complexity: O(k * max rank).
func BroadcastShapes(shapes ...[]int) ([]int, error) {
	if len(shapes) == 0 {
		return nil, arrayErrorf("BroadcastShapes", ErrBadShape)
	}
	rank := 0
	for _, s := range shapes {
		if len(s) > rank {
			rank = len(s)
		}
	}
	out := make([]int, rank)
	for k := range out {
		out[k] = 1
	}
	for _, s := range shapes {
		off := rank - len(s)
		for k, d := range s {
			switch {
			case d == out[k+off]:
			case out[k+off] == 1:
				out[k+off] = d
			case d == 1:
			default:
				return nil, arrayErrorf(fmt.Sprintf("BroadcastShapes%v", shapes), ErrBroadcast)
			}
		}
	}

	return out, nil
}

// broadcastStrides returns the strides of an operand of the given shape when
// iterated over the out shape; broadcast axes get stride 0.
func broadcastStrides(shape, out []int) []int {
	st := make([]int, len(out))
	off := len(out) - len(shape)
	stride := 1
	for k := len(shape) - 1; k >= 0; k-- {
		if shape[k] != 1 {
			st[k+off] = stride
		}
		stride *= shape[k]
	}

	return st
}

// Apply computes out = fn(a, b) elementwise over the broadcast shape of a and b.
// Operands are never mutated.
// Errors: ErrNilArray, ErrBroadcast.
// Complexity: O(size(out)).
func Apply(a, b *Array, fn func(x, y float64) float64) (*Array, error) {
	if a == nil || b == nil {
		return nil, arrayErrorf("Apply", ErrNilArray)
	}

	// Same-shape fast path: single pass over the flat buffers.
	if sameShape(a.shape, b.shape) {
		data := make([]float64, len(a.data))
		for i := range data {
			data[i] = fn(a.data[i], b.data[i])
		}
		return wrap(data, a.Shape()), nil
	}

	out, err := BroadcastShapes(a.shape, b.shape)
	if err != nil {
		return nil, arrayErrorf("Apply", err)
	}
	size := 1
	for _, d := range out {
		size *= d
	}
	data := make([]float64, size)
	sa, sb := broadcastStrides(a.shape, out), broadcastStrides(b.shape, out)

	// Odometer walk over the output in row-major order.
	idx := make([]int, len(out))
	ia, ib := 0, 0
	for n := 0; n < size; n++ {
		data[n] = fn(a.data[ia], b.data[ib])
		for k := len(out) - 1; k >= 0; k-- {
			idx[k]++
			ia += sa[k]
			ib += sb[k]
			if idx[k] < out[k] {
				break
			}
			ia -= sa[k] * out[k]
			ib -= sb[k] * out[k]
			idx[k] = 0
		}
	}

	return wrap(data, out), nil
}

// Map computes out[i] = fn(a[i]) with the shape of a.
// Errors: ErrNilArray.
func Map(a *Array, fn func(x float64) float64) (*Array, error) {
	if a == nil {
		return nil, arrayErrorf("Map", ErrNilArray)
	}
	data := make([]float64, len(a.data))
	for i, v := range a.data {
		data[i] = fn(v)
	}

	return wrap(data, a.Shape()), nil
}

// Add returns a + b with broadcasting.
func Add(a, b *Array) (*Array, error) {
	return Apply(a, b, func(x, y float64) float64 { return x + y })
}

// Sub returns a - b with broadcasting.
func Sub(a, b *Array) (*Array, error) {
	return Apply(a, b, func(x, y float64) float64 { return x - y })
}

// Mul returns a * b with broadcasting.
func Mul(a, b *Array) (*Array, error) {
	return Apply(a, b, func(x, y float64) float64 { return x * y })
}

// Div returns a / b with broadcasting. Division by zero follows IEEE 754.
func Div(a, b *Array) (*Array, error) {
	return Apply(a, b, func(x, y float64) float64 { return x / y })
}

// Exp returns e**a elementwise.
func Exp(a *Array) (*Array, error) {
	return Map(a, math.Exp)
}
