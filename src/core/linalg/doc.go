// Package linalg provides fixed-size vectors, points, matrices and
// quaternions.
//
// Dimensions are types, not values. A Dim is either Zero or Succ of another
// Dim, and D1 through D4 name the common sizes, so Vector[float64, D3] and
// Vector[float64, D4] are distinct types and adding them does not compile.
// Widening a tuple by one element produces Succ[N]; narrowing accepts
// Succ[N]. Larger sizes are spelled Succ[D4], Succ[Succ[D4]] and so on.
//
// Every value owns its element buffer. The zero value of each type is the
// all-zero tuple or matrix and is ready to use. Go assignment copies the
// buffer reference, so use Clone or CopyFrom where an independent copy is
// needed; all arithmetic returns freshly allocated results.
//
// Broken preconditions (out of range index, non-square matrix where a
// square one is required, zero-length normalization, affine weights that do
// not sum to one) panic with a *contract.Violation. Use contract.Recover to
// turn them into errors.
package linalg
