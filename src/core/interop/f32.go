package interop

import (
	"golang.org/x/image/math/f32"

	"mathlib/src/core/linalg"
)

func ToVec2(v linalg.Vector[float32, linalg.D2]) f32.Vec2 {
	return f32.Vec2{v.Elem(0), v.Elem(1)}
}

func ToVec3(v linalg.Vector[float32, linalg.D3]) f32.Vec3 {
	return f32.Vec3{v.Elem(0), v.Elem(1), v.Elem(2)}
}

func ToVec4(v linalg.Vector[float32, linalg.D4]) f32.Vec4 {
	return f32.Vec4{v.Elem(0), v.Elem(1), v.Elem(2), v.Elem(3)}
}

func FromVec2(v f32.Vec2) linalg.Vector[float32, linalg.D2] {
	return linalg.Vec2(v[0], v[1])
}

func FromVec3(v f32.Vec3) linalg.Vector[float32, linalg.D3] {
	return linalg.Vec3(v[0], v[1], v[2])
}

func FromVec4(v f32.Vec4) linalg.Vector[float32, linalg.D4] {
	return linalg.Vec4(v[0], v[1], v[2], v[3])
}

// ToMat3 lays m out row-major: out[3*r+c] is m.At(r, c).
func ToMat3(m linalg.Matrix[float32, linalg.D3, linalg.D3]) f32.Mat3 {
	var out f32.Mat3
	rowMajor(out[:], m.Rows(), m.Cols(), m.Elem)
	return out
}

// ToMat4 lays m out row-major: out[4*r+c] is m.At(r, c).
func ToMat4(m linalg.Matrix[float32, linalg.D4, linalg.D4]) f32.Mat4 {
	var out f32.Mat4
	rowMajor(out[:], m.Rows(), m.Cols(), m.Elem)
	return out
}

func FromMat3(m f32.Mat3) linalg.Matrix[float32, linalg.D3, linalg.D3] {
	return linalg.NewMatrix[float32, linalg.D3, linalg.D3](m[:]...)
}

func FromMat4(m f32.Mat4) linalg.Matrix[float32, linalg.D4, linalg.D4] {
	return linalg.NewMatrix[float32, linalg.D4, linalg.D4](m[:]...)
}

func rowMajor[T any](dst []T, rows, cols int, at func(r, c int) T) {
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			dst[r*cols+c] = at(r, c)
		}
	}
}
