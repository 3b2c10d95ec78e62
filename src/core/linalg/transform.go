package linalg

import (
	"math"

	"mathlib/src/util/scalar"
)

// Translation returns the 4×4 homogeneous matrix translating by t.
func Translation[T scalar.Number](t Vector[T, D3]) Matrix[T, D4, D4] {
	return Mat4([4][4]T{
		{1, 0, 0, t.Elem(0)},
		{0, 1, 0, t.Elem(1)},
		{0, 0, 1, t.Elem(2)},
		{0, 0, 0, 1},
	})
}

// Scaling returns the 3×3 matrix scaling each axis by the matching element
// of s.
func Scaling[T scalar.Number](s Vector[T, D3]) Matrix[T, D3, D3] {
	return Mat3([3][3]T{
		{s.Elem(0), 0, 0},
		{0, s.Elem(1), 0},
		{0, 0, s.Elem(2)},
	})
}

func sincos[T scalar.Float](rad T) (T, T) {
	s, c := math.Sincos(float64(rad))
	return T(s), T(c)
}

// RotateX returns the rotation by rad radians about the X axis.
func RotateX[T scalar.Float](rad T) Matrix[T, D3, D3] {
	s, c := sincos(rad)
	return Mat3([3][3]T{
		{1, 0, 0},
		{0, c, -s},
		{0, s, c},
	})
}

// RotateY returns the rotation by rad radians about the Y axis.
func RotateY[T scalar.Float](rad T) Matrix[T, D3, D3] {
	s, c := sincos(rad)
	return Mat3([3][3]T{
		{c, 0, s},
		{0, 1, 0},
		{-s, 0, c},
	})
}

// RotateZ returns the rotation by rad radians about the Z axis.
func RotateZ[T scalar.Float](rad T) Matrix[T, D3, D3] {
	s, c := sincos(rad)
	return Mat3([3][3]T{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	})
}

// Rotation returns RotateX(angles.x)·RotateY(angles.y)·RotateZ(angles.z).
// The order is part of the contract: applied to a column vector, Z turns
// first and X last.
func Rotation[T scalar.Float](angles Vector[T, D3]) Matrix[T, D3, D3] {
	return Mul(Mul(RotateX(angles.Elem(0)), RotateY(angles.Elem(1))), RotateZ(angles.Elem(2)))
}

// Homogeneous lifts a 3×3 linear transform into a 4×4 one.
func Homogeneous[T scalar.Number](m Matrix[T, D3, D3]) Matrix[T, D4, D4] {
	return Augment(m)
}

// TransformPoint applies the affine transform m to p. The homogeneous
// coordinate is dropped without a perspective divide.
func TransformPoint[T scalar.Number](m Matrix[T, D4, D4], p Point[T, D3]) Point[T, D3] {
	h := MulVec(m, WidenVector(p.AsVector(), 1))
	return NarrowVector(h).AsPoint()
}

// TransformVector applies the linear part of m to v. Translation does not
// move a free vector.
func TransformVector[T scalar.Number](m Matrix[T, D4, D4], v Vector[T, D3]) Vector[T, D3] {
	return NarrowVector(MulVec(m, WidenVector(v, 0)))
}
