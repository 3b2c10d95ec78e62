package linalg

import (
	"math"

	"mathlib/src/util/contract"
	"mathlib/src/util/scalar"
)

// Vector is a free displacement of N elements: it has a direction and a
// length but no location.
type Vector[T scalar.Number, N Dim] struct {
	Tuple[T, N]
}

// NewVector builds a vector from exactly N elements.
func NewVector[T scalar.Number, N Dim](elems ...T) Vector[T, N] {
	return Vector[T, N]{tupleOf[T, N]("NewVector", elems)}
}

func Vec2[T scalar.Number](x, y T) Vector[T, D2] {
	return Vector[T, D2]{Tuple[T, D2]{data: []T{x, y}}}
}

func Vec3[T scalar.Number](x, y, z T) Vector[T, D3] {
	return Vector[T, D3]{Tuple[T, D3]{data: []T{x, y, z}}}
}

func Vec4[T scalar.Number](x, y, z, w T) Vector[T, D4] {
	return Vector[T, D4]{Tuple[T, D4]{data: []T{x, y, z, w}}}
}

// VectorFrom converts every element of v to T. No range or precision check
// is made.
func VectorFrom[T, U scalar.Number, N Dim](v Vector[U, N]) Vector[T, N] {
	return Vector[T, N]{convertTuple[T](v.Tuple)}
}

// WidenVector appends x to v, as when adding a homogeneous coordinate.
func WidenVector[T scalar.Number, N Dim](v Vector[T, N], x T) Vector[T, Succ[N]] {
	return Vector[T, Succ[N]]{widen(v.Tuple, x)}
}

// NarrowVector drops the last element of v.
func NarrowVector[T scalar.Number, N Dim](v Vector[T, Succ[N]]) Vector[T, N] {
	return Vector[T, N]{narrow[T, N](v.Tuple)}
}

func (v Vector[T, N]) Clone() Vector[T, N] {
	return Vector[T, N]{v.clone()}
}

// CopyFrom deep-copies o into v.
func (v *Vector[T, N]) CopyFrom(o Vector[T, N]) {
	v.assign(o.Tuple)
}

// Move hands v's buffer to the result and resets v to the zero vector.
func (v *Vector[T, N]) Move() Vector[T, N] {
	return Vector[T, N]{v.take()}
}

// AsPoint returns the point at displacement v from the origin.
func (v Vector[T, N]) AsPoint() Point[T, N] {
	return Point[T, N]{v.clone()}
}

func (v Vector[T, N]) Add(o Vector[T, N]) Vector[T, N] {
	out := newTuple[T, N]()
	addInto(out.data, v.data, o.data)
	return Vector[T, N]{out}
}

// AddPoint returns p translated by v, the same as p.Add(v).
func (v Vector[T, N]) AddPoint(p Point[T, N]) Point[T, N] {
	return p.Add(v)
}

func (v Vector[T, N]) Sub(o Vector[T, N]) Vector[T, N] {
	out := newTuple[T, N]()
	subInto(out.data, v.data, o.data)
	return Vector[T, N]{out}
}

func (v *Vector[T, N]) AddAssign(o Vector[T, N]) {
	buf := v.buf()
	addInto(buf, buf, o.data)
}

func (v *Vector[T, N]) SubAssign(o Vector[T, N]) {
	buf := v.buf()
	subInto(buf, buf, o.data)
}

func (v *Vector[T, N]) ScaleAssign(k T) {
	buf := v.buf()
	scaleInto(buf, buf, k)
}

// DivAssign divides v by k in place. A zero k is degenerate.
func (v *Vector[T, N]) DivAssign(k T) {
	buf := v.buf()
	divInto("Vector.DivAssign", buf, buf, k)
}

// Negate flips the sign of every element in place.
func (v *Vector[T, N]) Negate() {
	buf := v.buf()
	negInto(buf, buf)
}

func (v Vector[T, N]) Dot(o Vector[T, N]) T {
	return Dot(v, o)
}

func (v Vector[T, N]) NormSquared() T {
	return Dot(v, v)
}

// Norm returns the Euclidean length of v.
func (v Vector[T, N]) Norm() float64 {
	return math.Sqrt(float64(v.NormSquared()))
}

// Normalize scales v to unit length in place. Normalizing a zero vector is
// degenerate.
func (v *Vector[T, N]) Normalize() {
	norm := v.Norm()
	if norm == 0 {
		contract.Violate("Vector.Normalize", contract.ErrDegenerate)
	}
	buf := v.buf()
	for i, e := range buf {
		buf[i] = T(float64(e) / norm)
	}
}

// Normalized returns a unit-length copy of v.
func (v Vector[T, N]) Normalized() Vector[T, N] {
	u := v.Clone()
	u.Normalize()
	return u
}

// AngleTo returns the angle between v and o in radians, in [0, π].
func (v Vector[T, N]) AngleTo(o Vector[T, N]) float64 {
	norms := v.Norm() * o.Norm()
	if norms == 0 {
		contract.Violate("Vector.AngleTo", contract.ErrDegenerate)
	}
	cos := scalar.Clamp(float64(v.Dot(o))/norms, -1, 1)
	return math.Acos(cos)
}

func (v Vector[T, N]) String() string {
	return v.format("[", "]")
}

// Cross returns the right-handed cross product a × b.
func Cross[T scalar.Number](a, b Vector[T, D3]) Vector[T, D3] {
	ax, ay, az := a.Elem(0), a.Elem(1), a.Elem(2)
	bx, by, bz := b.Elem(0), b.Elem(1), b.Elem(2)
	return Vec3(
		ay*bz-az*by,
		az*bx-ax*bz,
		ax*by-ay*bx,
	)
}

// Reflect mirrors v about the plane with unit normal n: v - 2(v·n)n.
func Reflect[T scalar.Number, N Dim](v, n Vector[T, N]) Vector[T, N] {
	return v.Sub(Scale(n, 2*v.Dot(n)))
}

// Refract bends the unit direction uv through a surface with unit normal n,
// where ratio is the quotient of the refractive indices (incident over
// transmitted). The cosine is clamped to 1 and the radicand taken by
// absolute value so grazing rays near total internal reflection never leave
// the domain of sqrt.
func Refract[T scalar.Float, N Dim](uv, n Vector[T, N], ratio T) Vector[T, N] {
	cosTheta := min(Neg(uv).Dot(n), 1)
	perp := Scale(uv.Add(Scale(n, cosTheta)), ratio)
	k := T(math.Sqrt(math.Abs(1 - float64(perp.NormSquared()))))
	return perp.Sub(Scale(n, k))
}
