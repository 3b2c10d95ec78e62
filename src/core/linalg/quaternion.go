package linalg

import (
	"fmt"
	"math"

	"mathlib/src/util/contract"
	"mathlib/src/util/scalar"
)

// slerpLinearAngle is the angle below which Slerp interpolates linearly:
// sin(angle) is too small to divide by and the arc is indistinguishable
// from the chord.
const slerpLinearAngle = 1e-6

// Quaternion is qv + qw: an imaginary 3-vector and a real scalar. Unit
// quaternions represent rotations. Arithmetic is defined for any norm;
// Rotate and Slerp assume unit inputs.
type Quaternion[T scalar.Float] struct {
	v Vector[T, D3]
	w T
}

// NewQuaternion returns imag + real. imag is copied.
func NewQuaternion[T scalar.Float](imag Vector[T, D3], real T) Quaternion[T] {
	return Quaternion[T]{v: imag.Clone(), w: real}
}

// Quat returns xi + yj + zk + w.
func Quat[T scalar.Float](x, y, z, w T) Quaternion[T] {
	return Quaternion[T]{v: Vec3(x, y, z), w: w}
}

// IdentityQuaternion returns the rotation by zero.
func IdentityQuaternion[T scalar.Float]() Quaternion[T] {
	return Quat[T](0, 0, 0, 1)
}

// AxisAngle returns the unit quaternion rotating by angle radians about
// axis. A zero axis is degenerate.
func AxisAngle[T scalar.Float](axis Vector[T, D3], angle T) Quaternion[T] {
	var q Quaternion[T]
	q.SetRotation(axis, angle)
	return q
}

// QuaternionFrom converts q to element type T.
func QuaternionFrom[T, U scalar.Float](q Quaternion[U]) Quaternion[T] {
	return Quaternion[T]{v: VectorFrom[T](q.v), w: T(q.w)}
}

func (q Quaternion[T]) X() T { return q.v.Elem(0) }
func (q Quaternion[T]) Y() T { return q.v.Elem(1) }
func (q Quaternion[T]) Z() T { return q.v.Elem(2) }
func (q Quaternion[T]) W() T { return q.w }

// Imag returns a copy of the imaginary part.
func (q Quaternion[T]) Imag() Vector[T, D3] { return q.v.Clone() }

// Real returns the real part.
func (q Quaternion[T]) Real() T { return q.w }

func (q Quaternion[T]) Clone() Quaternion[T] {
	return Quaternion[T]{v: q.v.Clone(), w: q.w}
}

// SetIdentity resets q to the rotation by zero.
func (q *Quaternion[T]) SetIdentity() {
	q.v = Vec3[T](0, 0, 0)
	q.w = 1
}

// SetRotation makes q the unit quaternion rotating by angle radians about
// axis: qv = normalize(axis)·sin(angle/2), qw = cos(angle/2).
func (q *Quaternion[T]) SetRotation(axis Vector[T, D3], angle T) {
	s, c := math.Sincos(float64(angle) / 2)
	q.v = Scale(axis.Normalized(), T(s))
	q.w = T(c)
}

// Conjugate negates the imaginary part.
func (q Quaternion[T]) Conjugate() Quaternion[T] {
	return Quaternion[T]{v: Neg(q.v), w: q.w}
}

func (q Quaternion[T]) normSquared() T {
	return q.v.NormSquared() + q.w*q.w
}

// Norm returns sqrt(|qv|² + qw²).
func (q Quaternion[T]) Norm() T {
	return T(math.Sqrt(float64(q.normSquared())))
}

// Inverse returns conjugate / norm². The inverse of a zero quaternion is
// degenerate.
func (q Quaternion[T]) Inverse() Quaternion[T] {
	n2 := q.normSquared()
	if n2 == 0 {
		contract.Violate("Quaternion.Inverse", contract.ErrDegenerate)
	}
	return q.Conjugate().Scale(1 / n2)
}

// Unit returns q divided by its norm.
func (q Quaternion[T]) Unit() Quaternion[T] {
	u := q.Clone()
	u.SetUnit()
	return u
}

// SetUnit divides q by its norm in place. A zero quaternion is degenerate.
func (q *Quaternion[T]) SetUnit() {
	n := q.Norm()
	if n == 0 {
		contract.Violate("Quaternion.SetUnit", contract.ErrDegenerate)
	}
	q.v = Scale(q.v, 1/n)
	q.w /= n
}

func (q Quaternion[T]) Add(r Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{v: q.v.Add(r.v), w: q.w + r.w}
}

func (q Quaternion[T]) Scale(k T) Quaternion[T] {
	return Quaternion[T]{v: Scale(q.v, k), w: q.w * k}
}

// Mul returns the Hamilton product q·r:
//
//	(q·r).v = qv × rv + rw·qv + qw·rv
//	(q·r).w = qw·rw - qv·rv
func (q Quaternion[T]) Mul(r Quaternion[T]) Quaternion[T] {
	v := Cross(q.v, r.v).Add(Scale(q.v, r.w)).Add(Scale(r.v, q.w))
	return Quaternion[T]{v: v, w: q.w*r.w - q.v.Dot(r.v)}
}

// Rotate applies the rotation q to v: the imaginary part of q·(v, 0)·q*.
func (q Quaternion[T]) Rotate(v Vector[T, D3]) Vector[T, D3] {
	p := Quaternion[T]{v: v, w: 0}
	return q.Mul(p).Mul(q.Conjugate()).v
}

// ToMatrix returns the 3×3 rotation matrix of the unit quaternion q.
func (q Quaternion[T]) ToMatrix() Matrix[T, D3, D3] {
	x, y, z, w := q.X(), q.Y(), q.Z(), q.w
	return Mat3([3][3]T{
		{1 - 2*(y*y+z*z), 2 * (x*y - z*w), 2 * (x*z + y*w)},
		{2 * (x*y + z*w), 1 - 2*(x*x+z*z), 2 * (y*z - x*w)},
		{2 * (x*z - y*w), 2 * (y*z + x*w), 1 - 2*(x*x+y*y)},
	})
}

// Equal compares q and r with tolerance, never exactly: quaternion
// arithmetic accumulates rounding error immediately.
func (q Quaternion[T]) Equal(r Quaternion[T], opts ...scalar.Option[T]) bool {
	return AllClose(q.v, r.v, opts...) && scalar.IsClose(q.w, r.w, opts...)
}

func (q Quaternion[T]) String() string {
	return fmt.Sprintf("{ %v, %v }", q.v, q.w)
}

// Slerp interpolates along the great arc from q (t = 0) to r (t = 1):
//
//	angle = acos(qv·rv + qw·rw)
//	slerp = sin(angle·(1-t))/sin(angle)·q + sin(angle·t)/sin(angle)·r
//
// Below slerpLinearAngle the arc degenerates to the chord and q, r are
// interpolated linearly, so Slerp(q, q, t) is q. Antipodal q and r have no
// unique arc and are degenerate.
func Slerp[T scalar.Float](q, r Quaternion[T], t T) Quaternion[T] {
	cos := scalar.Clamp(float64(q.v.Dot(r.v)+q.w*r.w), -1, 1)
	angle := math.Acos(cos)

	if angle < slerpLinearAngle {
		return Quaternion[T]{v: Lerp(q.v, r.v, t), w: scalar.Lerp(q.w, r.w, t)}
	}
	if math.Pi-angle < slerpLinearAngle {
		contract.Violate("Slerp", contract.ErrDegenerate)
	}

	sin := math.Sin(angle)
	a := T(math.Sin(angle*(1-float64(t))) / sin)
	b := T(math.Sin(angle*float64(t)) / sin)
	return q.Scale(a).Add(r.Scale(b))
}
