package linalg

import "mathlib/src/util/scalar"

// RandomVector returns a vector with every element drawn uniformly from
// [lo, hi).
func RandomVector[T scalar.Float, N Dim](src scalar.Source, lo, hi T) Vector[T, N] {
	t := newTuple[T, N]()
	for i := range t.data {
		t.data[i] = scalar.RandomRange(src, lo, hi)
	}
	return Vector[T, N]{t}
}

// RandomInUnitSphere returns a vector strictly inside the unit sphere,
// by rejection sampling the enclosing cube.
func RandomInUnitSphere[T scalar.Float](src scalar.Source) Vector[T, D3] {
	for {
		v := RandomVector[T, D3](src, -1, 1)
		if n := v.NormSquared(); n < 1 && n > 0 {
			return v
		}
	}
}

// RandomUnitVector returns a direction uniformly distributed on the unit
// sphere.
func RandomUnitVector[T scalar.Float](src scalar.Source) Vector[T, D3] {
	return RandomInUnitSphere[T](src).Normalized()
}

// RandomInHemisphere returns a vector in the unit sphere on the same side as
// normal.
func RandomInHemisphere[T scalar.Float](src scalar.Source, normal Vector[T, D3]) Vector[T, D3] {
	v := RandomInUnitSphere[T](src)
	if v.Dot(normal) < 0 {
		v.Negate()
	}
	return v
}
