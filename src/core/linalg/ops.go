package linalg

import (
	"mathlib/src/util/contract"
	"mathlib/src/util/scalar"
)

// Shape is satisfied by every type whose representation is exactly a
// Tuple[T, N]: Vector and Point. The element-wise operators below are
// written once against it.
type Shape[T scalar.Number, N Dim] interface {
	~struct{ Tuple[T, N] }
}

// Indexed is anything that exposes a fixed number of elements by index:
// vectors, points and matrix row/column views.
type Indexed[T scalar.Number] interface {
	Len() int
	At(i int) T
}

func unwrap[S Shape[T, N], T scalar.Number, N Dim](s S) Tuple[T, N] {
	return struct{ Tuple[T, N] }(s).Tuple
}

func wrap[S Shape[T, N], T scalar.Number, N Dim](t Tuple[T, N]) S {
	return S(struct{ Tuple[T, N] }{t})
}

// Clone returns a deep copy of s.
func Clone[S Shape[T, N], T scalar.Number, N Dim](s S) S {
	return wrap[S, T, N](unwrap[S, T, N](s).clone())
}

// Equal reports whether a and b hold exactly the same elements.
func Equal[S Shape[T, N], T scalar.Number, N Dim](a, b S) bool {
	ta, tb := unwrap[S, T, N](a), unwrap[S, T, N](b)
	for i := 0; i < dimOf[N](); i++ {
		if ta.Elem(i) != tb.Elem(i) {
			return false
		}
	}
	return true
}

// AllClose reports whether every pair of elements is close under
// scalar.IsClose with the given tolerance options.
func AllClose[S Shape[T, N], T scalar.Float, N Dim](a, b S, opts ...scalar.Option[T]) bool {
	ta, tb := unwrap[S, T, N](a), unwrap[S, T, N](b)
	return allClose(ta.data, tb.data, dimOf[N](), scalar.NewTolerance(opts...))
}

// Scale multiplies every element by k.
func Scale[S Shape[T, N], T scalar.Number, N Dim](s S, k T) S {
	out := newTuple[T, N]()
	scaleInto(out.data, unwrap[S, T, N](s).data, k)
	return wrap[S, T, N](out)
}

// Div divides every element by k. A zero k is degenerate.
func Div[S Shape[T, N], T scalar.Number, N Dim](s S, k T) S {
	out := newTuple[T, N]()
	divInto("Div", out.data, unwrap[S, T, N](s).data, k)
	return wrap[S, T, N](out)
}

// DivFrom returns k / s element by element. A zero element is degenerate.
func DivFrom[S Shape[T, N], T scalar.Number, N Dim](k T, s S) S {
	in := unwrap[S, T, N](s)
	out := newTuple[T, N]()
	for i := range out.data {
		e := in.Elem(i)
		if e == 0 {
			contract.Violatef("DivFrom", contract.ErrDegenerate, "element %d is zero", i)
		}
		out.data[i] = k / e
	}
	return wrap[S, T, N](out)
}

// Neg returns s with every element multiplied by -1.
func Neg[S Shape[T, N], T scalar.Number, N Dim](s S) S {
	out := newTuple[T, N]()
	negInto(out.data, unwrap[S, T, N](s).data)
	return wrap[S, T, N](out)
}

// Hadamard multiplies a and b element by element.
func Hadamard[S Shape[T, N], T scalar.Number, N Dim](a, b S) S {
	out := newTuple[T, N]()
	ta, tb := unwrap[S, T, N](a), unwrap[S, T, N](b)
	for i := range out.data {
		out.data[i] = ta.Elem(i) * tb.Elem(i)
	}
	return wrap[S, T, N](out)
}

// AddScalar adds k to every element.
func AddScalar[S Shape[T, N], T scalar.Number, N Dim](s S, k T) S {
	return Map[S, T, N](s, func(v T) T { return v + k })
}

// SubScalar subtracts k from every element.
func SubScalar[S Shape[T, N], T scalar.Number, N Dim](s S, k T) S {
	return Map[S, T, N](s, func(v T) T { return v - k })
}

// ClampAll limits every element to [lo, hi].
func ClampAll[S Shape[T, N], T scalar.Number, N Dim](s S, lo, hi T) S {
	return Map[S, T, N](s, func(v T) T { return scalar.Clamp(v, lo, hi) })
}

// Map applies f to every element.
func Map[S Shape[T, N], T scalar.Number, N Dim](s S, f func(T) T) S {
	out := newTuple[T, N]()
	mapInto(out.data, unwrap[S, T, N](s).data, f)
	return wrap[S, T, N](out)
}

// Lerp interpolates element-wise between a (t = 0) and b (t = 1).
func Lerp[S Shape[T, N], T scalar.Float, N Dim](a, b S, t T) S {
	ta, tb := unwrap[S, T, N](a), unwrap[S, T, N](b)
	out := newTuple[T, N]()
	for i := range out.data {
		out.data[i] = scalar.Lerp(ta.Elem(i), tb.Elem(i), t)
	}
	return wrap[S, T, N](out)
}

// DegToRad converts every element from degrees to radians.
func DegToRad[S Shape[T, N], T scalar.Float, N Dim](s S) S {
	return Map[S, T, N](s, scalar.DegToRad[T])
}

// RadToDeg converts every element from radians to degrees.
func RadToDeg[S Shape[T, N], T scalar.Float, N Dim](s S) S {
	return Map[S, T, N](s, scalar.RadToDeg[T])
}

// Dot returns the sum of the element-wise products of a and b.
func Dot[S Shape[T, N], T scalar.Number, N Dim](a, b S) T {
	ta, tb := unwrap[S, T, N](a), unwrap[S, T, N](b)
	var sum T
	for i := 0; i < dimOf[N](); i++ {
		sum += ta.Elem(i) * tb.Elem(i)
	}
	return sum
}

// The functions below work on anything Indexed, so a matrix row or column
// view can be combined with a vector without copying it out first. The
// lengths are only known at run time; unequal lengths are an ErrShape
// violation.

func requireSameLen[T scalar.Number](op string, a, b Indexed[T]) int {
	n := a.Len()
	contract.Require(n == b.Len(), op, contract.ErrShape, "lengths %d and %d", n, b.Len())
	return n
}

// DotIndexed returns the sum of the element-wise products of a and b.
func DotIndexed[T scalar.Number](a, b Indexed[T]) T {
	n := requireSameLen("DotIndexed", a, b)
	var sum T
	for i := 0; i < n; i++ {
		sum += a.At(i) * b.At(i)
	}
	return sum
}

// EqualIndexed reports whether a and b hold exactly the same elements.
func EqualIndexed[T scalar.Number](a, b Indexed[T]) bool {
	n := requireSameLen("EqualIndexed", a, b)
	for i := 0; i < n; i++ {
		if a.At(i) != b.At(i) {
			return false
		}
	}
	return true
}

// AllCloseIndexed is AllClose for Indexed values.
func AllCloseIndexed[T scalar.Float](a, b Indexed[T], opts ...scalar.Option[T]) bool {
	n := requireSameLen("AllCloseIndexed", a, b)
	tol := scalar.NewTolerance(opts...)
	for i := 0; i < n; i++ {
		if !tol.Close(a.At(i), b.At(i)) {
			return false
		}
	}
	return true
}

// ScaleIndexed copies s into a new vector with every element multiplied
// by k. s must have exactly N elements.
func ScaleIndexed[T scalar.Number, N Dim](s Indexed[T], k T) Vector[T, N] {
	out := newTuple[T, N]()
	contract.Require(s.Len() == len(out.data), "ScaleIndexed", contract.ErrShape,
		"length %d, want %d", s.Len(), len(out.data))
	for i := range out.data {
		out.data[i] = s.At(i) * k
	}
	return Vector[T, N]{out}
}

// Kernels over raw buffers, shared by tuples and matrices. A nil src reads
// as zeros; dst is always allocated.

func addInto[T scalar.Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = elem(a, i) + elem(b, i)
	}
}

func subInto[T scalar.Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = elem(a, i) - elem(b, i)
	}
}

func scaleInto[T scalar.Number](dst, src []T, k T) {
	for i := range dst {
		dst[i] = elem(src, i) * k
	}
}

func divInto[T scalar.Number](op string, dst, src []T, k T) {
	if k == 0 {
		contract.Violate(op, contract.ErrDegenerate)
	}
	for i := range dst {
		dst[i] = elem(src, i) / k
	}
}

func negInto[T scalar.Number](dst, src []T) {
	for i := range dst {
		dst[i] = -elem(src, i)
	}
}

func mapInto[T scalar.Number](dst, src []T, f func(T) T) {
	for i := range dst {
		dst[i] = f(elem(src, i))
	}
}

func allClose[T scalar.Float](a, b []T, n int, tol scalar.Tolerance[T]) bool {
	for i := 0; i < n; i++ {
		if !tol.Close(elem(a, i), elem(b, i)) {
			return false
		}
	}
	return true
}

func elem[T scalar.Number](buf []T, i int) T {
	if buf == nil {
		return 0
	}
	return buf[i]
}
