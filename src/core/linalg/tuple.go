package linalg

import (
	"fmt"
	"strings"

	"mathlib/src/util/contract"
	"mathlib/src/util/scalar"
)

// Tuple is a fixed-length run of N numeric elements. It is the storage
// shared by Vector and Point; its methods are promoted to both.
//
// A nil buffer reads as all zeros. Every write goes to a fresh buffer, so
// copies made by assignment never observe each other's writes.
type Tuple[T scalar.Number, N Dim] struct {
	data []T
}

func newTuple[T scalar.Number, N Dim]() Tuple[T, N] {
	return Tuple[T, N]{data: make([]T, dimOf[N]())}
}

func tupleOf[T scalar.Number, N Dim](op string, elems []T) Tuple[T, N] {
	n := dimOf[N]()
	if len(elems) != n {
		contract.Violatef(op, contract.ErrArity, "got %d elements, want %d", len(elems), n)
	}
	t := Tuple[T, N]{data: make([]T, n)}
	copy(t.data, elems)
	return t
}

// convertTuple applies the ordinary numeric conversion element by element.
func convertTuple[T, U scalar.Number, N Dim](u Tuple[U, N]) Tuple[T, N] {
	t := newTuple[T, N]()
	for i, v := range u.data {
		t.data[i] = T(v)
	}
	return t
}

// widen appends x as the last element.
func widen[T scalar.Number, N Dim](t Tuple[T, N], x T) Tuple[T, Succ[N]] {
	w := newTuple[T, Succ[N]]()
	copy(w.data, t.data)
	w.data[len(w.data)-1] = x
	return w
}

// narrow drops the last element.
func narrow[T scalar.Number, N Dim](t Tuple[T, Succ[N]]) Tuple[T, N] {
	n := newTuple[T, N]()
	copy(n.data, t.data)
	return n
}

// Len returns N.
func (t Tuple[T, N]) Len() int {
	return dimOf[N]()
}

// At returns element i. i outside [0, N) is a contract violation.
func (t Tuple[T, N]) At(i int) T {
	contract.Index("Tuple.At", i, dimOf[N]())
	if t.data == nil {
		return 0
	}
	return t.data[i]
}

// Set stores v at element i. i outside [0, N) is a contract violation.
func (t *Tuple[T, N]) Set(i int, v T) {
	contract.Index("Tuple.Set", i, dimOf[N]())
	t.buf()[i] = v
}

// Elem returns element i without the contract check. The caller guarantees
// 0 <= i < N; anything else is undefined.
func (t Tuple[T, N]) Elem(i int) T {
	if t.data == nil {
		return 0
	}
	return t.data[i]
}

// SetElem stores v at element i without the contract check. The caller
// guarantees 0 <= i < N.
func (t *Tuple[T, N]) SetElem(i int, v T) {
	t.buf()[i] = v
}

// Elements returns a copy of the elements.
func (t Tuple[T, N]) Elements() []T {
	out := make([]T, dimOf[N]())
	copy(out, t.data)
	return out
}

// IsZero reports whether every element is zero.
func (t Tuple[T, N]) IsZero() bool {
	for _, v := range t.data {
		if v != 0 {
			return false
		}
	}
	return true
}

// buf gives a mutator a private copy of the elements. Assignment copies
// only the slice header, so the buffer may be shared with other values and
// is never written in place.
func (t *Tuple[T, N]) buf() []T {
	fresh := make([]T, dimOf[N]())
	copy(fresh, t.data)
	t.data = fresh
	return fresh
}

func (t Tuple[T, N]) clone() Tuple[T, N] {
	c := newTuple[T, N]()
	copy(c.data, t.data)
	return c
}

// assign deep-copies o into t. Assigning a tuple to itself is a no-op.
func (t *Tuple[T, N]) assign(o Tuple[T, N]) {
	if t.sameBuffer(o) {
		return
	}
	t.data = o.clone().data
}

// take transfers the buffer out of t and resets t to the zero tuple.
func (t *Tuple[T, N]) take() Tuple[T, N] {
	out := Tuple[T, N]{data: t.data}
	t.data = nil
	return out
}

func (t Tuple[T, N]) sameBuffer(o Tuple[T, N]) bool {
	return len(t.data) > 0 && len(o.data) > 0 && &t.data[0] == &o.data[0]
}

func (t Tuple[T, N]) format(open, close string) string {
	var sb strings.Builder
	sb.WriteString(open)
	sb.WriteByte(' ')
	for i := 0; i < dimOf[N](); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, t.Elem(i))
	}
	sb.WriteByte(' ')
	sb.WriteString(close)
	return sb.String()
}
