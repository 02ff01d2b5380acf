// SPDX-License-Identifier: MIT

package ndarray

import (
	"fmt"
	"math"
	"strings"
)

// Array is an immutable, row-major, n-dimensional array of float64 values.
// The zero value is not usable; build arrays with New, Vector or Scalar.
//
// No method mutates an Array after construction, so arrays (and reshaped
// views produced by Reshape) may share backing storage safely.
type Array struct {
	shape []int     // dimension lengths, len(shape) == rank >= 1
	data  []float64 // flat storage, len(data) == product(shape)
}

// New builds an array of the given shape from a copy of data.
// Stage 1 (Validate): rank >= 1, every dimension >= 0, product == len(data).
// Stage 2 (Finalize): copy data and shape so the caller keeps ownership.
// Complexity: O(len(data)).
func New(data []float64, shape ...int) (*Array, error) {
	size, err := sizeOf(shape)
	if err != nil {
		return nil, arrayErrorf("New", err)
	}
	if size != len(data) {
		return nil, arrayErrorf(fmt.Sprintf("New(%v) with %d values", shape, len(data)), ErrSizeMismatch)
	}
	buf := make([]float64, len(data))
	copy(buf, data)

	return wrap(buf, append([]int(nil), shape...)), nil
}

// Vector returns a rank-1 array holding a copy of values.
func Vector(values ...float64) *Array {
	buf := make([]float64, len(values))
	copy(buf, values)

	return wrap(buf, []int{len(values)})
}

// Scalar returns the length-1 rank-1 array [v].
func Scalar(v float64) *Array {
	return wrap([]float64{v}, []int{1})
}

// wrap takes ownership of data and shape without validation.
func wrap(data []float64, shape []int) *Array {
	return &Array{shape: shape, data: data}
}

// sizeOf validates shape and returns the product of its dimensions.
func sizeOf(shape []int) (int, error) {
	if len(shape) == 0 {
		return 0, ErrBadShape
	}
	size := 1
	for _, d := range shape {
		if d < 0 {
			return 0, ErrBadShape
		}
		size *= d
	}

	return size, nil
}

// Shape returns a copy of the dimension lengths.
func (a *Array) Shape() []int { return append([]int(nil), a.shape...) }

// Rank returns the number of dimensions.
func (a *Array) Rank() int { return len(a.shape) }

// Len returns the length of the leading dimension.
func (a *Array) Len() int { return a.shape[0] }

// Size returns the total number of elements.
func (a *Array) Size() int { return len(a.data) }

// Data returns a copy of the values in row-major order.
func (a *Array) Data() []float64 {
	out := make([]float64, len(a.data))
	copy(out, a.data)

	return out
}

// At returns the element at the given index tuple.
// Complexity: O(rank).
func (a *Array) At(idx ...int) (float64, error) {
	if len(idx) != len(a.shape) {
		return 0, arrayErrorf(fmt.Sprintf("At%v", idx), ErrOutOfRange)
	}
	off := 0
	for k, i := range idx {
		if i < 0 || i >= a.shape[k] {
			return 0, arrayErrorf(fmt.Sprintf("At%v", idx), ErrOutOfRange)
		}
		off = off*a.shape[k] + i
	}

	return a.data[off], nil
}

// Reshape returns an array with the same values and a new shape.
// The result shares storage with a; neither can be mutated.
// Complexity: O(rank).
func (a *Array) Reshape(shape ...int) (*Array, error) {
	size, err := sizeOf(shape)
	if err != nil {
		return nil, arrayErrorf("Reshape", err)
	}
	if size != len(a.data) {
		return nil, arrayErrorf(fmt.Sprintf("Reshape(%v) of %v", shape, a.shape), ErrSizeMismatch)
	}

	return wrap(a.data, append([]int(nil), shape...)), nil
}

// Equal reports whether a and b have the same shape and bitwise-identical values.
// NaN compares equal to NaN so that memoized results can be checked for identity.
func (a *Array) Equal(b *Array) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !sameShape(a.shape, b.shape) {
		return false
	}
	for i, v := range a.data {
		if math.Float64bits(v) != math.Float64bits(b.data[i]) {
			return false
		}
	}

	return true
}

// sameShape compares two dimension lists.
func sameShape(x, y []int) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}

	return true
}

// String renders the array in bracketed form, one row per line for rank >= 2:
//
//	[1 2 3]
//	[[1]
//	 [2]]
func (a *Array) String() string {
	var sb strings.Builder
	a.format(&sb, 0, 0)

	return sb.String()
}

// format writes the sub-array starting at flat offset off along axis.
func (a *Array) format(sb *strings.Builder, axis, off int) {
	sb.WriteByte('[')
	stride := 1
	for _, d := range a.shape[axis+1:] {
		stride *= d
	}
	for i := 0; i < a.shape[axis]; i++ {
		if i > 0 {
			if axis == len(a.shape)-1 {
				sb.WriteByte(' ')
			} else {
				sb.WriteString("\n" + strings.Repeat(" ", axis+1))
			}
		}
		if axis == len(a.shape)-1 {
			fmt.Fprintf(sb, "%g", a.data[off+i])
			continue
		}
		a.format(sb, axis+1, off+i*stride)
	}
	sb.WriteByte(']')
}
