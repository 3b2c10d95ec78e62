package linalg

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"mathlib/src/util/contract"
	"mathlib/src/util/scalar"
)

var (
	axisX = Vec3(1.0, 0, 0)
	axisY = Vec3(0.0, 1, 0)
	axisZ = Vec3(0.0, 0, 1)
)

func TestHamiltonProduct(t *testing.T) {
	i, j, k := Quat(1.0, 0, 0, 0), Quat(0.0, 1, 0, 0), Quat(0.0, 0, 1, 0)
	minusOne := Quat(0.0, 0, 0, -1)

	for idx, tc := range []struct {
		name string
		got  Quaternion[float64]
		want Quaternion[float64]
	}{
		{"ij = k", i.Mul(j), k},
		{"jk = i", j.Mul(k), i},
		{"ki = j", k.Mul(i), j},
		{"ji = -k", j.Mul(i), k.Scale(-1)},
		{"ii = -1", i.Mul(i), minusOne},
		{"ijk = -1", i.Mul(j).Mul(k), minusOne},
		{"identity", IdentityQuaternion[float64]().Mul(Quat(1.0, 2, 3, 4)), Quat(1.0, 2, 3, 4)},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.name), func(t *testing.T) {
			require.True(t, tc.got.Equal(tc.want), "got %s, want %s", tc.got, tc.want)
		})
	}
}

func TestQuaternionAccessors(t *testing.T) {
	q := Quat(1.0, 2, 3, 4)

	require.Equal(t, 1.0, q.X())
	require.Equal(t, 2.0, q.Y())
	require.Equal(t, 3.0, q.Z())
	require.Equal(t, 4.0, q.W())
	require.Equal(t, 4.0, q.Real())
	require.True(t, Equal(q.Imag(), Vec3(1.0, 2, 3)))
	require.Equal(t, "{ [ 1, 2, 3 ], 4 }", q.String())

	imag := q.Imag()
	imag.Set(0, 100)
	require.Equal(t, 1.0, q.X())

	r := NewQuaternion(imag, 0.5)
	imag.Set(1, 100)
	require.Equal(t, 2.0, r.Y())

	f := QuaternionFrom[float32](q)
	require.Equal(t, float32(3), f.Z())
}

func TestQuaternionAlgebra(t *testing.T) {
	q := Quat(1.0, -2, 3, 0.5)

	require.True(t, q.Conjugate().Equal(Quat(-1.0, 2, -3, 0.5)))
	require.InDelta(t, math.Sqrt(14.25), q.Norm(), 1e-14)
	require.InDelta(t, 1, q.Unit().Norm(), 1e-14)

	require.True(t, q.Mul(q.Inverse()).Equal(IdentityQuaternion[float64](), scalar.WithAbs(1e-14)))
	require.True(t, q.Inverse().Mul(q).Equal(IdentityQuaternion[float64](), scalar.WithAbs(1e-14)))

	// the inverse of a unit quaternion is its conjugate
	u := q.Unit()
	require.True(t, u.Inverse().Equal(u.Conjugate(), scalar.WithAbs(1e-14)))

	require.True(t, q.Add(q).Equal(q.Scale(2)))

	p := q.Clone()
	p.SetUnit()
	require.True(t, p.Equal(u))
	require.True(t, q.Equal(Quat(1.0, -2, 3, 0.5)))

	p.SetIdentity()
	require.True(t, p.Equal(IdentityQuaternion[float64]()))
}

func TestQuaternionDegenerate(t *testing.T) {
	var zero Quaternion[float64]

	require.ErrorIs(t, violation(func() { zero.Inverse() }), contract.ErrDegenerate)
	require.ErrorIs(t, violation(func() { zero.Unit() }), contract.ErrDegenerate)
	require.ErrorIs(t, violation(func() { AxisAngle(Vec3(0.0, 0, 0), 1) }), contract.ErrDegenerate)
}

func TestQuaternionRotate(t *testing.T) {
	tol := scalar.WithAbs(1e-14)

	for idx, tc := range []struct {
		name  string
		axis  Vector[float64, D3]
		angle float64
		in    Vector[float64, D3]
		want  Vector[float64, D3]
	}{
		{"half turn about x", axisX, math.Pi, axisZ, Vec3(0.0, 0, -1)},
		{"quarter turn back about x", axisX, -math.Pi / 2, axisZ, axisY},
		{"quarter turn about z", axisZ, math.Pi / 2, axisX, axisY},
		{"axis is fixed", axisY, 2.5, axisY, axisY},
		{"unnormalized axis", Vec3(0.0, 0, 7), math.Pi / 2, axisX, axisY},
		{"no turn", axisX, 0, Vec3(1.0, 2, 3), Vec3(1.0, 2, 3)},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.name), func(t *testing.T) {
			q := AxisAngle(tc.axis, tc.angle)
			require.InDelta(t, 1, q.Norm(), 1e-14)

			got := q.Rotate(tc.in)
			require.True(t, AllClose(got, tc.want, tol), "got %s, want %s", got, tc.want)
			require.True(t, AllClose(MulVec(q.ToMatrix(), tc.in), tc.want, tol))
		})
	}
}

func TestQuaternionMatchesRotationMatrices(t *testing.T) {
	for idx, angle := range []float64{0.1, 1, -2.2, math.Pi} {
		t.Run(fmt.Sprintf("%d/%g", idx, angle), func(t *testing.T) {
			tol := scalar.WithAbs(1e-14)
			require.True(t, AllCloseMatrix(AxisAngle(axisX, angle).ToMatrix(), RotateX(angle), tol))
			require.True(t, AllCloseMatrix(AxisAngle(axisY, angle).ToMatrix(), RotateY(angle), tol))
			require.True(t, AllCloseMatrix(AxisAngle(axisZ, angle).ToMatrix(), RotateZ(angle), tol))
		})
	}

	// composing quaternions composes rotations
	a, b := AxisAngle(axisX, 0.4), AxisAngle(axisZ, -1.3)
	require.True(t, AllCloseMatrix(a.Mul(b).ToMatrix(), Mul(a.ToMatrix(), b.ToMatrix()), scalar.WithAbs(1e-14)))
}

func TestSlerp(t *testing.T) {
	tol := scalar.WithAbs(1e-14)
	q := IdentityQuaternion[float64]()
	r := AxisAngle(axisX, math.Pi)

	require.True(t, Slerp(q, r, 0).Equal(q, tol))
	require.True(t, Slerp(q, r, 1).Equal(r, tol))
	require.True(t, Slerp(q, r, 0.25).Equal(AxisAngle(axisX, math.Pi/4), tol))
	require.True(t, Slerp(q, r, 0.5).Equal(AxisAngle(axisX, math.Pi/2), tol))

	mid := Slerp(AxisAngle(axisZ, 0.2), AxisAngle(axisZ, 1.0), 0.5)
	require.True(t, mid.Equal(AxisAngle(axisZ, 0.6), tol))
	require.InDelta(t, 1, mid.Norm(), 1e-14)
}

func TestSlerpSameOrientation(t *testing.T) {
	q := AxisAngle(Vec3(1.0, 2, 3), 0.7)

	for _, at := range []float64{0, 0.3, 0.5, 1} {
		require.True(t, Slerp(q, q, at).Equal(q, scalar.WithAbs(1e-14)))
	}

	// nearly identical inputs interpolate linearly instead of dividing by ~0
	near := AxisAngle(Vec3(1.0, 2, 3), 0.7+1e-9)
	got := Slerp(q, near, 0.5)
	for i := 0; i < 3; i++ {
		require.False(t, math.IsNaN(got.Imag().At(i)))
	}
	require.True(t, got.Equal(q, scalar.WithAbs(1e-9)))

	// the fallback is the element-wise linear blend
	want := Quat(
		scalar.Lerp(q.X(), near.X(), 0.5),
		scalar.Lerp(q.Y(), near.Y(), 0.5),
		scalar.Lerp(q.Z(), near.Z(), 0.5),
		scalar.Lerp(q.W(), near.W(), 0.5),
	)
	require.True(t, got.Equal(want))
}

func TestSlerpAntipodal(t *testing.T) {
	q := AxisAngle(axisY, 0.5)
	require.ErrorIs(t, violation(func() { Slerp(q, q.Scale(-1), 0.5) }), contract.ErrDegenerate)
}
