package scalar

// Tolerance bounds the absolute and relative difference two values may have
// and still compare as close.
type Tolerance[T Float] struct {
	Abs T
	Rel T
}

// Option configures a Tolerance.
type Option[T Float] func(*Tolerance[T])

// WithAbs sets the maximum absolute difference.
func WithAbs[T Float](abs T) Option[T] {
	return func(t *Tolerance[T]) {
		t.Abs = abs
	}
}

// WithRel sets the maximum difference relative to the larger magnitude.
func WithRel[T Float](rel T) Option[T] {
	return func(t *Tolerance[T]) {
		t.Rel = rel
	}
}

// NewTolerance returns a Tolerance defaulting both bounds to Epsilon[T].
func NewTolerance[T Float](opts ...Option[T]) Tolerance[T] {
	eps := Epsilon[T]()
	t := Tolerance[T]{Abs: eps, Rel: eps}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// Close reports whether a and b are within the tolerance.
//
// The absolute bound handles values near zero, where a relative bound is
// meaningless; the relative bound scales with the larger magnitude. See
// https://randomascii.wordpress.com/2012/02/25/comparing-floating-point-numbers-2012-edition/
func (t Tolerance[T]) Close(a, b T) bool {
	if a == b {
		return true
	}

	diff := abs(a - b)
	if diff-diff != 0 {
		// NaN operand or unequal infinities
		return false
	}
	if diff < t.Abs {
		return true
	}

	a, b = abs(a), abs(b)
	largest := a
	if b > a {
		largest = b
	}

	return diff <= largest*t.Rel
}

// IsClose reports whether a and b are equal within the configured
// tolerance, Epsilon[T] for both bounds by default.
func IsClose[T Float](a, b T, opts ...Option[T]) bool {
	return NewTolerance(opts...).Close(a, b)
}

func abs[T Number](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
