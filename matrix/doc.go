// Package matrix provides a minimal two-dimensional float64 matrix.
//
// The matrix package provides:
//
//   - Matrix, a read-only Rows/Cols/At view that any caller-owned matrix type
//     can satisfy.
//   - Dense, a row-major implementation with bounds-checked At/Set.
//   - Validators and Flatten for row and column vectors, the only matrix
//     shapes the logistic model accepts as parameters.
//
// All errors are sentinels from errors.go; match them with errors.Is.
package matrix
