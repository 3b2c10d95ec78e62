// Package scalar holds the single-value helpers every linalg type leans on:
// element constraints, machine epsilon, tolerant comparison, angle
// conversion and random numbers.
package scalar

import "golang.org/x/exp/constraints"

// Number is the set of element types a tuple or matrix can hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// Float is the set of element types that support tolerant comparison and
// the transcendental operations (normalize, rotation, slerp).
type Float interface {
	constraints.Float
}
