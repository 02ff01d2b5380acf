// Package logistic implements the two-parameter logistic item response model.
//
// Given item discrimination a, item difficulty b and examinee trait θ, the
// model yields
//
//	P(θ)   = exp(a(θ-b)) / (1 + exp(a(θ-b)))
//	P'(θ)  = a·P·(1-P)
//	a·P'(θ)
//
// elementwise over arrays. The hard part is input handling: each parameter
// may be a number, a flat or nested sequence, an *ndarray.Array or a row or
// column matrix.Matrix. Normalize coerces one raw value into an array and
// Reconcile reshapes discrimination and trait so that one formula covers
// both "many items, one examinee" and "one item, many examinees":
//
//	a (n,)  b (n,)   θ (1,)  -> values (n,)
//	a (1,)  b (1,)   θ (m,)  -> θ becomes (m,1), values (m,1)
//	a (n,)  b (n,1)  θ (1,)  -> a becomes (n,1), values (n,1)
//
// Many items against many examinees is rejected with ErrItemTraitConflict.
// Every failure is a *ParameterError naming the parameter and wrapping one
// of the sentinels in errors.go.
//
// Computed values are cached on the Model; see Model for the concurrency
// contract.
package logistic
