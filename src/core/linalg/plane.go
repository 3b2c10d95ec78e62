package linalg

import "mathlib/src/util/scalar"

// A plane is stored as the 4-vector (nx, ny, nz, d) of its equation
// n·x + d = 0. Points with n·x + d < 0 are inside.

// PlaneFromPoints returns the plane through a, b and c with unit normal
// (b-a) × (c-a). Collinear points are degenerate.
func PlaneFromPoints[T scalar.Float](a, b, c Point[T, D3]) Vector[T, D4] {
	normal := TriangleNormal(a, b, c).Normalized()
	return WidenVector(normal, -normal.Dot(a.AsVector()))
}

// TriangleNormal returns the unnormalized normal (b-a) × (c-a).
func TriangleNormal[T scalar.Number](a, b, c Point[T, D3]) Vector[T, D3] {
	return Cross(b.Sub(a), c.Sub(a))
}

// PlaneDistance returns the signed distance of p from plane when the
// plane's normal is unit length.
func PlaneDistance[T scalar.Float](plane Vector[T, D4], p Point[T, D3]) T {
	return NarrowVector(plane).Dot(p.AsVector()) + plane.Elem(3)
}

// IsPointInsidePlanes reports whether p lies within margin of the inner side
// of every plane.
func IsPointInsidePlanes[T scalar.Float](planes []Vector[T, D4], p Point[T, D3], margin T) bool {
	for i := 0; i < len(planes); i++ {
		dist := PlaneDistance(planes[i], p) - margin
		if dist > 0 {
			return false
		}
	}
	return true
}

// AreVerticesBehindPlane reports whether every vertex lies within margin of
// the inner side of plane.
func AreVerticesBehindPlane[T scalar.Float](plane Vector[T, D4], vertices []Point[T, D3], margin T) bool {
	for i := 0; i < len(vertices); i++ {
		dist := PlaneDistance(plane, vertices[i]) - margin
		if dist > 0 {
			return false
		}
	}
	return true
}
