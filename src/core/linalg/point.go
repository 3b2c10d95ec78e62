package linalg

import (
	"mathlib/src/util/contract"
	"mathlib/src/util/scalar"
)

// Point is a location in N-dimensional space. Points and vectors share
// storage but not arithmetic: two points cannot be added, their difference
// is a Vector, and a point moves by adding or subtracting a Vector.
type Point[T scalar.Number, N Dim] struct {
	Tuple[T, N]
}

// NewPoint builds a point from exactly N coordinates.
func NewPoint[T scalar.Number, N Dim](elems ...T) Point[T, N] {
	return Point[T, N]{tupleOf[T, N]("NewPoint", elems)}
}

func Pt2[T scalar.Number](x, y T) Point[T, D2] {
	return Point[T, D2]{Tuple[T, D2]{data: []T{x, y}}}
}

func Pt3[T scalar.Number](x, y, z T) Point[T, D3] {
	return Point[T, D3]{Tuple[T, D3]{data: []T{x, y, z}}}
}

func Pt4[T scalar.Number](x, y, z, w T) Point[T, D4] {
	return Point[T, D4]{Tuple[T, D4]{data: []T{x, y, z, w}}}
}

func PointFrom[T, U scalar.Number, N Dim](p Point[U, N]) Point[T, N] {
	return Point[T, N]{convertTuple[T](p.Tuple)}
}

// WidenPoint appends x to p.
func WidenPoint[T scalar.Number, N Dim](p Point[T, N], x T) Point[T, Succ[N]] {
	return Point[T, Succ[N]]{widen(p.Tuple, x)}
}

// NarrowPoint drops the last coordinate of p.
func NarrowPoint[T scalar.Number, N Dim](p Point[T, Succ[N]]) Point[T, N] {
	return Point[T, N]{narrow[T, N](p.Tuple)}
}

func (p Point[T, N]) Clone() Point[T, N] {
	return Point[T, N]{p.clone()}
}

func (p *Point[T, N]) CopyFrom(o Point[T, N]) {
	p.assign(o.Tuple)
}

// Move hands p's buffer to the result and resets p to the origin.
func (p *Point[T, N]) Move() Point[T, N] {
	return Point[T, N]{p.take()}
}

// AsVector returns the displacement of p from the origin.
func (p Point[T, N]) AsVector() Vector[T, N] {
	return Vector[T, N]{p.clone()}
}

// Add returns p translated by v.
func (p Point[T, N]) Add(v Vector[T, N]) Point[T, N] {
	out := newTuple[T, N]()
	addInto(out.data, p.data, v.data)
	return Point[T, N]{out}
}

// SubVector returns p translated by -v.
func (p Point[T, N]) SubVector(v Vector[T, N]) Point[T, N] {
	out := newTuple[T, N]()
	subInto(out.data, p.data, v.data)
	return Point[T, N]{out}
}

// Sub returns the displacement from o to p.
func (p Point[T, N]) Sub(o Point[T, N]) Vector[T, N] {
	out := newTuple[T, N]()
	subInto(out.data, p.data, o.data)
	return Vector[T, N]{out}
}

// Translate moves p by v in place.
func (p *Point[T, N]) Translate(v Vector[T, N]) {
	buf := p.buf()
	addInto(buf, buf, v.data)
}

func (p Point[T, N]) String() string {
	return p.format("(", ")")
}

// affineWeightTolerance matches single-precision weights.
const affineWeightTolerance = scalar.Epsilon32

// AffineCombination returns Σ weights[i]·items[i]. The weights must sum to
// one and there must be exactly one per item; anything else is a contract
// violation, never a silent renormalization.
func AffineCombination[S Shape[T, N], T scalar.Number, N Dim](weights []float64, items []S) S {
	if len(weights) != len(items) || len(items) == 0 {
		contract.Violatef("AffineCombination", contract.ErrArity,
			"%d weights for %d items", len(weights), len(items))
	}

	var sum float64
	for _, w := range weights {
		sum += w
	}
	if !scalar.IsClose(sum, 1, scalar.WithAbs(affineWeightTolerance)) {
		contract.Violatef("AffineCombination", contract.ErrAffineWeights, "weights sum to %g", sum)
	}

	acc := make([]float64, dimOf[N]())
	for k, item := range items {
		t := unwrap[S, T, N](item)
		for i := range acc {
			acc[i] += weights[k] * float64(t.Elem(i))
		}
	}

	out := newTuple[T, N]()
	for i, v := range acc {
		out.data[i] = T(v)
	}
	return wrap[S, T, N](out)
}
