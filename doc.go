// Package irt evaluates the two-parameter logistic item response model.
//
// Given item discrimination a, item difficulty b and examinee trait θ, the
// model yields the probability of a correct response and its derivatives
// with respect to θ. Parameters may be numbers, flat or nested sequences,
// arrays or row/column matrices; they are normalized and reconciled into
// shapes that broadcast over items or examinees.
//
// Under the hood, everything is organized under these subpackages:
//
//	logistic/ — Normalize, Reconcile and the memoized Model
//	ndarray/  — immutable n-dimensional float64 arrays with broadcasting
//	matrix/   — Dense matrices; row/column vectors are accepted as parameters
//	cmd/irt/  — command line: irt eval -a 1.2 -b "[0, 1]" -t 0.5
//
// Quick example:
//
//	m, err := logistic.New([]float64{0.8, 1.2}, []float64{-0.5, 0.5}, 0.0)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(m.Probability()) // [0.5987 0.3543] (rounded)
package irt
