package linalg

// Dim is a compile-time length.
type Dim interface {
	Len() int
}

// Zero is the empty dimension.
type Zero struct{}

func (Zero) Len() int { return 0 }

// Succ is the dimension one larger than N.
type Succ[N Dim] struct{}

func (Succ[N]) Len() int {
	var n N
	return n.Len() + 1
}

type (
	D1 = Succ[Zero]
	D2 = Succ[D1]
	D3 = Succ[D2]
	D4 = Succ[D3]
)

func dimOf[N Dim]() int {
	var n N
	return n.Len()
}
