// Package ndarray provides a small immutable n-dimensional float64 array with
// trailing-axis broadcasting, sized for evaluating closed-form models over
// (item × examinee) grids.
//
// What & Why:
//
//	Parameters of the logistic model arrive as vectors, row vectors or column
//	vectors. Broadcasting lets one formula serve "many items, one examinee"
//	and "one item, many examinees" without special cases: a (n,) array
//	combined with a (1,) array stays (n,), and a (m,1) array combined with a
//	(1,) or (1,1) array stays (m,1).
//
// Complexity:
//
//	Shape queries are O(1) or O(rank). Elementwise kernels are O(size(out))
//	and allocate exactly one output buffer. Reshape is O(rank) and shares
//	storage, which is safe because arrays are never mutated.
package ndarray
