package scalar

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSourceIsDeterministic(t *testing.T) {
	a, b := NewSource(42), NewSource(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, RandomNumber[float64](a), RandomNumber[float64](b))
	}

	c := NewSource(43)
	require.NotEqual(t, RandomNumber[float64](NewSource(42)), RandomNumber[float64](c))
}

func TestRandomRange(t *testing.T) {
	src := NewSource(7)
	for i := 0; i < 1000; i++ {
		v := RandomRange(src, float32(-2), float32(3))
		require.GreaterOrEqual(t, v, float32(-2))
		require.Less(t, v, float32(3))

		u := RandomNumber[float64](DefaultSource())
		require.GreaterOrEqual(t, u, 0.0)
		require.Less(t, u, 1.0)
	}
}
