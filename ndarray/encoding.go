// SPDX-License-Identifier: MIT

package ndarray

import "encoding/json"

// Nested returns the values as nested slices mirroring the shape:
// []float64 for rank 1, [][]float64 for rank 2 and []any below that.
func (a *Array) Nested() any {
	return nest(a.shape, a.data)
}

func nest(shape []int, data []float64) any {
	switch len(shape) {
	case 1:
		return append([]float64{}, data...)
	case 2:
		rows := make([][]float64, shape[0])
		for i := range rows {
			rows[i] = append([]float64{}, data[i*shape[1]:(i+1)*shape[1]]...)
		}
		return rows
	}
	stride := len(data) / max(shape[0], 1)
	out := make([]any, shape[0])
	for i := range out {
		out[i] = nest(shape[1:], data[i*stride:(i+1)*stride])
	}

	return out
}

// MarshalJSON encodes the array as nested JSON lists. NaN and ±Inf values
// are not representable and make encoding fail.
func (a *Array) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Nested())
}

// MarshalYAML implements yaml.Marshaler (gopkg.in/yaml.v3) with nested sequences.
func (a *Array) MarshalYAML() (any, error) {
	return a.Nested(), nil
}
