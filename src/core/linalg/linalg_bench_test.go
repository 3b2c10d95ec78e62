package linalg

import (
	"testing"

	"mathlib/src/util/scalar"
)

var (
	benchVecResult  Vector[float64, D3]
	benchMatResult  Matrix[float64, D4, D4]
	benchQuatResult Quaternion[float64]
	benchResult     float64

	benchVec1 = Vec3(1.5, -2.25, 3.0)
	benchVec2 = Vec3(-0.5, 4.0, 0.125)
	benchMat1 = Mul(Translation(Vec3(1.0, 2, 3)), Homogeneous(Rotation(Vec3(0.1, 0.2, 0.3))))
	benchMat2 = Homogeneous(Scaling(Vec3(2.0, 3, 4)))
	benchQuat = AxisAngle(Vec3(1.0, 1, 0), 0.5)
)

func BenchmarkVectorAdd(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchVecResult = benchVec1.Add(benchVec2)
	}
}

func BenchmarkVectorAddAssign(b *testing.B) {
	v := benchVec1.Clone()
	for i := 0; i < b.N; i++ {
		v.AddAssign(benchVec2)
	}
	benchVecResult = v
}

func BenchmarkDot(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchResult = benchVec1.Dot(benchVec2)
	}
}

func BenchmarkCross(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchVecResult = Cross(benchVec1, benchVec2)
	}
}

func BenchmarkNormalized(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchVecResult = benchVec1.Normalized()
	}
}

func BenchmarkMatrixMul4(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchMatResult = Mul(benchMat1, benchMat2)
	}
}

func BenchmarkTransformPoint(b *testing.B) {
	p := benchVec1.AsPoint()
	for i := 0; i < b.N; i++ {
		benchVecResult = TransformPoint(benchMat1, p).AsVector()
	}
}

func BenchmarkQuaternionRotate(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchVecResult = benchQuat.Rotate(benchVec1)
	}
}

func BenchmarkSlerp(b *testing.B) {
	r := AxisAngle(Vec3(0.0, 1, 1), 2)
	for i := 0; i < b.N; i++ {
		benchQuatResult = Slerp(benchQuat, r, 0.3)
	}
}

func BenchmarkRandomUnitVector(b *testing.B) {
	src := scalar.NewSource(1)
	for i := 0; i < b.N; i++ {
		benchVecResult = RandomUnitVector[float64](src)
	}
}
