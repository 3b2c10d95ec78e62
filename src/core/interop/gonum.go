package interop

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"mathlib/src/core/linalg"
	"mathlib/src/util/contract"
	"mathlib/src/util/scalar"
)

// View exposes a linalg matrix as a read-only gonum mat.Matrix without
// copying it.
type View[T scalar.Number, R, C linalg.Dim] struct {
	M linalg.Matrix[T, R, C]
}

var _ mat.Matrix = View[float64, linalg.D2, linalg.D3]{}

func (v View[T, R, C]) Dims() (r, c int) {
	return v.M.Rows(), v.M.Cols()
}

func (v View[T, R, C]) At(i, j int) float64 {
	return float64(v.M.At(i, j))
}

func (v View[T, R, C]) T() mat.Matrix {
	return mat.Transpose{Matrix: v}
}

// ToDense copies m into a new gonum Dense.
func ToDense[T scalar.Number, R, C linalg.Dim](m linalg.Matrix[T, R, C]) *mat.Dense {
	data := make([]float64, m.Rows()*m.Cols())
	rowMajor(data, m.Rows(), m.Cols(), func(r, c int) float64 {
		return float64(m.Elem(r, c))
	})
	return mat.NewDense(m.Rows(), m.Cols(), data)
}

// FromDense copies src into an R×C matrix, converting every element to T.
// src must be exactly R×C.
func FromDense[T scalar.Number, R, C linalg.Dim](src mat.Matrix) (linalg.Matrix[T, R, C], error) {
	var out linalg.Matrix[T, R, C]
	r, c := src.Dims()
	if r != out.Rows() || c != out.Cols() {
		return out, fmt.Errorf("interop: %dx%d matrix into %dx%d: %w", r, c, out.Rows(), out.Cols(), contract.ErrShape)
	}
	data := make([]T, r*c)
	rowMajor(data, r, c, func(i, j int) T {
		return T(src.At(i, j))
	})
	return linalg.NewMatrix[T, R, C](data...), nil
}

// MustFromDense is FromDense for callers that have already checked the
// shape.
func MustFromDense[T scalar.Number, R, C linalg.Dim](src mat.Matrix) linalg.Matrix[T, R, C] {
	out, err := FromDense[T, R, C](src)
	contract.OrPanic(err)
	return out
}

// ToVecDense copies v into a new gonum column vector.
func ToVecDense[T scalar.Number, N linalg.Dim](v linalg.Vector[T, N]) *mat.VecDense {
	data := make([]float64, v.Len())
	for i := range data {
		data[i] = float64(v.Elem(i))
	}
	return mat.NewVecDense(len(data), data)
}

// FromVecDense copies src into an N-vector, converting every element to T.
// src must have exactly N elements.
func FromVecDense[T scalar.Number, N linalg.Dim](src mat.Vector) (linalg.Vector[T, N], error) {
	var out linalg.Vector[T, N]
	if src.Len() != out.Len() {
		return out, fmt.Errorf("interop: %d-vector into %d: %w", src.Len(), out.Len(), contract.ErrShape)
	}
	data := make([]T, src.Len())
	for i := range data {
		data[i] = T(src.AtVec(i))
	}
	return linalg.NewVector[T, N](data...), nil
}

func MustFromVecDense[T scalar.Number, N linalg.Dim](src mat.Vector) linalg.Vector[T, N] {
	out, err := FromVecDense[T, N](src)
	contract.OrPanic(err)
	return out
}
