package linalg

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"mathlib/src/util/scalar"
)

func TestTranslation(t *testing.T) {
	m := Translation(Vec3(1, 2, 3))

	require.True(t, Equal(TransformPoint(m, Pt3(1, 1, 1)), Pt3(2, 3, 4)))
	require.True(t, Equal(TransformVector(m, Vec3(1, 1, 1)), Vec3(1, 1, 1)))
	require.Equal(t, "[ [ 1, 0, 0, 1 ], [ 0, 1, 0, 2 ], [ 0, 0, 1, 3 ], [ 0, 0, 0, 1 ] ]", m.String())
}

func TestScaling(t *testing.T) {
	s := Scaling(Vec3(2, 3, 4))

	require.True(t, Equal(MulVec(s, Vec3(1, 1, 1)), Vec3(2, 3, 4)))
	require.True(t, Equal(TransformPoint(Homogeneous(s), Pt3(1, -1, 2)), Pt3(2, -3, 8)))

	// scale, then translate
	m := Mul(Translation(Vec3(10, 0, 0)), Homogeneous(s))
	require.True(t, Equal(TransformPoint(m, Pt3(1, 1, 1)), Pt3(12, 3, 4)))
}

func TestAxisRotations(t *testing.T) {
	quarter := math.Pi / 2
	tol := scalar.WithAbs(1e-15)

	for idx, tc := range []struct {
		name string
		m    Matrix[float64, D3, D3]
		in   Vector[float64, D3]
		want Vector[float64, D3]
	}{
		{"x turns y to z", RotateX(quarter), Vec3(0.0, 1, 0), Vec3(0.0, 0, 1)},
		{"y turns z to x", RotateY(quarter), Vec3(0.0, 0, 1), Vec3(1.0, 0, 0)},
		{"z turns x to y", RotateZ(quarter), Vec3(1.0, 0, 0), Vec3(0.0, 1, 0)},
		{"x fixes x", RotateX(1.234), Vec3(1.0, 0, 0), Vec3(1.0, 0, 0)},
		{"z half turn", RotateZ(math.Pi), Vec3(1.0, 2, 3), Vec3(-1.0, -2, 3)},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.name), func(t *testing.T) {
			got := MulVec(tc.m, tc.in)
			require.True(t, AllClose(got, tc.want, tol), "got %s, want %s", got, tc.want)
		})
	}
}

func TestRotationOrder(t *testing.T) {
	angles := Vec3(0.3, -1.1, 2.0)
	r := Rotation(angles)

	want := Mul(Mul(RotateX(0.3), RotateY(-1.1)), RotateZ(2.0))
	require.True(t, r.Equal(want))

	// Z turns first
	v := Vec3(1.0, 2, 3)
	staged := MulVec(RotateX(0.3), MulVec(RotateY(-1.1), MulVec(RotateZ(2.0), v)))
	require.True(t, AllClose(MulVec(r, v), staged, scalar.WithAbs(1e-12)))

	// rotations are orthonormal and preserve length
	require.True(t, AllCloseMatrix(Mul(r, Transpose(r)), Identity[float64, D3](), scalar.WithAbs(1e-12)))
	require.InDelta(t, v.Norm(), MulVec(r, v).Norm(), 1e-12)

	require.True(t, AllCloseMatrix(Rotation(Vec3(0, 0, 0.7)), RotateZ(0.7)))
}

func TestRotationFromDegrees(t *testing.T) {
	r := Rotation(DegToRad(Vec3(90.0, 0, 0)))
	require.True(t, AllClose(MulVec(r, Vec3(0.0, 1, 0)), Vec3(0.0, 0, 1), scalar.WithAbs(1e-15)))
}

func TestHomogeneousRotationIgnoresTranslationOfVectors(t *testing.T) {
	m := Mul(Translation(Vec3(5.0, 5, 5)), Homogeneous(RotateZ(math.Pi/2)))

	require.True(t, AllClose(TransformVector(m, Vec3(1.0, 0, 0)), Vec3(0.0, 1, 0), scalar.WithAbs(1e-15)))
	require.True(t, AllClose(TransformPoint(m, Pt3(1.0, 0, 0)), Pt3(5.0, 6, 5), scalar.WithAbs(1e-15)))
}
