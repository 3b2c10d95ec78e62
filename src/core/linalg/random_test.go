package linalg

import (
	"testing"

	"github.com/stretchr/testify/require"

	"mathlib/src/util/scalar"
)

func TestRandomVectorIsSeeded(t *testing.T) {
	a := RandomVector[float64, D4](scalar.NewSource(3), -5, 5)
	b := RandomVector[float64, D4](scalar.NewSource(3), -5, 5)
	require.True(t, Equal(a, b))

	for i := 0; i < a.Len(); i++ {
		require.GreaterOrEqual(t, a.At(i), -5.0)
		require.Less(t, a.At(i), 5.0)
	}
}

func TestRandomInUnitSphere(t *testing.T) {
	src := scalar.NewSource(11)
	normal := Vec3(0.0, 1, 0)

	for i := 0; i < 500; i++ {
		v := RandomInUnitSphere[float64](src)
		require.Less(t, v.NormSquared(), 1.0)

		u := RandomUnitVector[float32](src)
		require.InDelta(t, 1, u.Norm(), 1e-6)

		h := RandomInHemisphere(src, normal)
		require.GreaterOrEqual(t, h.Dot(normal), 0.0)
		require.Less(t, h.NormSquared(), 1.0)
	}
}

func TestRandomVectorDefaultSource(t *testing.T) {
	v := RandomVector[float32, D2](scalar.DefaultSource(), 0, 1)
	require.GreaterOrEqual(t, v.At(0), float32(0))
	require.Less(t, v.At(1), float32(1))
}
