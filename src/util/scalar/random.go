package scalar

import "math/rand/v2"

// Source yields uniformly distributed float64 values in [0, 1).
// *rand.Rand from both math/rand and math/rand/v2 satisfy it.
type Source interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 {
	return rand.Float64()
}

// DefaultSource returns the process-wide pseudorandom stream. It is safe
// for concurrent use and is not reproducible across runs.
func DefaultSource() Source {
	return globalSource{}
}

// NewSource returns a deterministic source seeded with seed. The returned
// source must not be shared between goroutines.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomNumber returns a value in [0, 1).
func RandomNumber[T Float](src Source) T {
	for {
		// rounding a float64 just below 1 up to float32 can land on 1
		if v := T(src.Float64()); v < 1 {
			return v
		}
	}
}

// RandomRange returns a value in [lo, hi).
func RandomRange[T Float](src Source, lo, hi T) T {
	return lo + (hi-lo)*RandomNumber[T](src)
}
