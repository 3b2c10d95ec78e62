package linalg

import (
	"fmt"
	"strings"

	"mathlib/src/util/contract"
	"mathlib/src/util/scalar"
)

// Matrix is an R×C dense matrix stored column-major. A nil buffer reads as
// the zero matrix. Like Tuple, every write goes to a fresh buffer, so copies
// made by assignment are independent.
type Matrix[T scalar.Number, R, C Dim] struct {
	data []T
}

func newMatrix[T scalar.Number, R, C Dim]() Matrix[T, R, C] {
	return Matrix[T, R, C]{data: make([]T, dimOf[R]()*dimOf[C]())}
}

// NewMatrix builds a matrix from exactly R·C values given row by row.
func NewMatrix[T scalar.Number, R, C Dim](rowMajor ...T) Matrix[T, R, C] {
	rows, cols := dimOf[R](), dimOf[C]()
	if len(rowMajor) != rows*cols {
		contract.Violatef("NewMatrix", contract.ErrArity,
			"got %d values, want %d", len(rowMajor), rows*cols)
	}
	m := newMatrix[T, R, C]()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			m.data[c*rows+r] = rowMajor[r*cols+c]
		}
	}
	return m
}

// FromColumns builds a matrix from exactly C column vectors.
func FromColumns[T scalar.Number, R, C Dim](cols ...Vector[T, R]) Matrix[T, R, C] {
	rows, n := dimOf[R](), dimOf[C]()
	if len(cols) != n {
		contract.Violatef("FromColumns", contract.ErrArity, "got %d columns, want %d", len(cols), n)
	}
	m := newMatrix[T, R, C]()
	for c, col := range cols {
		copy(m.data[c*rows:(c+1)*rows], col.data)
	}
	return m
}

func Mat2[T scalar.Number](rows [2][2]T) Matrix[T, D2, D2] {
	return fromRows[T, D2, D2](rows[:])
}

func Mat3[T scalar.Number](rows [3][3]T) Matrix[T, D3, D3] {
	return fromRows[T, D3, D3](rows[:])
}

func Mat4[T scalar.Number](rows [4][4]T) Matrix[T, D4, D4] {
	return fromRows[T, D4, D4](rows[:])
}

func fromRows[T scalar.Number, R, C Dim, Row ~[2]T | ~[3]T | ~[4]T](rows []Row) Matrix[T, R, C] {
	m := newMatrix[T, R, C]()
	n := dimOf[R]()
	for r, row := range rows {
		for c := 0; c < len(row); c++ {
			m.data[c*n+r] = row[c]
		}
	}
	return m
}

// Identity returns the N×N identity matrix.
func Identity[T scalar.Number, N Dim]() Matrix[T, N, N] {
	m := newMatrix[T, N, N]()
	m.SetIdentity()
	return m
}

// MatrixFrom converts every element of m to T.
func MatrixFrom[T, U scalar.Number, R, C Dim](m Matrix[U, R, C]) Matrix[T, R, C] {
	out := newMatrix[T, R, C]()
	for i := range out.data {
		out.data[i] = T(elem(m.data, i))
	}
	return out
}

// Submatrix returns the upper-left R×C block of m.
func Submatrix[T scalar.Number, R, C Dim](m Matrix[T, Succ[R], Succ[C]]) Matrix[T, R, C] {
	out := newMatrix[T, R, C]()
	rows, cols := dimOf[R](), dimOf[C]()
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			out.data[c*rows+r] = elem(m.data, c*(rows+1)+r)
		}
	}
	return out
}

// Augment embeds m in the upper-left block of a matrix one row and one
// column larger. The new row and column are zero except for a 1 in the new
// corner, the layout of a homogeneous transform:
//
//	m 0
//	0 1
func Augment[T scalar.Number, R, C Dim](m Matrix[T, R, C]) Matrix[T, Succ[R], Succ[C]] {
	out := newMatrix[T, Succ[R], Succ[C]]()
	rows, cols := dimOf[R](), dimOf[C]()
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			out.data[c*(rows+1)+r] = elem(m.data, c*rows+r)
		}
	}
	out.data[len(out.data)-1] = 1
	return out
}

func (m Matrix[T, R, C]) Rows() int { return dimOf[R]() }

func (m Matrix[T, R, C]) Cols() int { return dimOf[C]() }

// At returns the element at row, col. Either index out of range is a
// contract violation.
func (m Matrix[T, R, C]) At(row, col int) T {
	m.check("Matrix.At", row, col)
	return elem(m.data, col*dimOf[R]()+row)
}

// Set stores v at row, col. Either index out of range is a contract
// violation.
func (m *Matrix[T, R, C]) Set(row, col int, v T) {
	m.check("Matrix.Set", row, col)
	m.buf()[col*dimOf[R]()+row] = v
}

// Elem returns the element at row, col without the contract check.
func (m Matrix[T, R, C]) Elem(row, col int) T {
	return elem(m.data, col*dimOf[R]()+row)
}

// SetElem stores v at row, col without the contract check.
func (m *Matrix[T, R, C]) SetElem(row, col int, v T) {
	m.buf()[col*dimOf[R]()+row] = v
}

func (m Matrix[T, R, C]) check(op string, row, col int) {
	contract.Index(op, row, dimOf[R]())
	contract.Index(op, col, dimOf[C]())
}

// Raw returns a copy of the elements in column-major order.
func (m Matrix[T, R, C]) Raw() []T {
	out := make([]T, dimOf[R]()*dimOf[C]())
	copy(out, m.data)
	return out
}

// Row returns a copy of row i.
func (m Matrix[T, R, C]) Row(i int) Vector[T, C] {
	contract.Index("Matrix.Row", i, dimOf[R]())
	v := newTuple[T, C]()
	for c := range v.data {
		v.data[c] = m.Elem(i, c)
	}
	return Vector[T, C]{v}
}

// Col returns a copy of column j.
func (m Matrix[T, R, C]) Col(j int) Vector[T, R] {
	contract.Index("Matrix.Col", j, dimOf[C]())
	v := newTuple[T, R]()
	for r := range v.data {
		v.data[r] = m.Elem(r, j)
	}
	return Vector[T, R]{v}
}

// RowView is a read-only view of one row of a matrix as it was when the
// view was taken.
type RowView[T scalar.Number, R, C Dim] struct {
	m   Matrix[T, R, C]
	row int
}

func (v RowView[T, R, C]) Len() int { return dimOf[C]() }

func (v RowView[T, R, C]) At(i int) T { return v.m.At(v.row, i) }

// ColView is a read-only view of one column of a matrix as it was when the
// view was taken.
type ColView[T scalar.Number, R, C Dim] struct {
	m   Matrix[T, R, C]
	col int
}

func (v ColView[T, R, C]) Len() int { return dimOf[R]() }

func (v ColView[T, R, C]) At(i int) T { return v.m.At(i, v.col) }

func (m Matrix[T, R, C]) RowView(i int) RowView[T, R, C] {
	contract.Index("Matrix.RowView", i, dimOf[R]())
	return RowView[T, R, C]{m: m, row: i}
}

func (m Matrix[T, R, C]) ColView(j int) ColView[T, R, C] {
	contract.Index("Matrix.ColView", j, dimOf[C]())
	return ColView[T, R, C]{m: m, col: j}
}

// buf gives a mutator a private copy of the elements, as Tuple.buf does.
func (m *Matrix[T, R, C]) buf() []T {
	fresh := make([]T, dimOf[R]()*dimOf[C]())
	copy(fresh, m.data)
	m.data = fresh
	return fresh
}

func (m Matrix[T, R, C]) Clone() Matrix[T, R, C] {
	out := newMatrix[T, R, C]()
	copy(out.data, m.data)
	return out
}

// CopyFrom deep-copies o into m. Copying a matrix onto itself is a no-op.
func (m *Matrix[T, R, C]) CopyFrom(o Matrix[T, R, C]) {
	if len(m.data) > 0 && len(o.data) > 0 && &m.data[0] == &o.data[0] {
		return
	}
	m.data = o.Clone().data
}

// Move hands m's buffer to the result and resets m to the zero matrix.
func (m *Matrix[T, R, C]) Move() Matrix[T, R, C] {
	out := Matrix[T, R, C]{data: m.data}
	m.data = nil
	return out
}

func (m Matrix[T, R, C]) IsZero() bool {
	for _, v := range m.data {
		if v != 0 {
			return false
		}
	}
	return true
}

func (m Matrix[T, R, C]) Equal(o Matrix[T, R, C]) bool {
	for i := 0; i < dimOf[R]()*dimOf[C](); i++ {
		if elem(m.data, i) != elem(o.data, i) {
			return false
		}
	}
	return true
}

func (m Matrix[T, R, C]) Add(o Matrix[T, R, C]) Matrix[T, R, C] {
	out := newMatrix[T, R, C]()
	addInto(out.data, m.data, o.data)
	return out
}

func (m Matrix[T, R, C]) Sub(o Matrix[T, R, C]) Matrix[T, R, C] {
	out := newMatrix[T, R, C]()
	subInto(out.data, m.data, o.data)
	return out
}

func (m Matrix[T, R, C]) Scale(k T) Matrix[T, R, C] {
	out := newMatrix[T, R, C]()
	scaleInto(out.data, m.data, k)
	return out
}

// Div divides every element by k. A zero k is degenerate.
func (m Matrix[T, R, C]) Div(k T) Matrix[T, R, C] {
	out := newMatrix[T, R, C]()
	divInto("Matrix.Div", out.data, m.data, k)
	return out
}

func (m Matrix[T, R, C]) Neg() Matrix[T, R, C] {
	out := newMatrix[T, R, C]()
	negInto(out.data, m.data)
	return out
}

// Map applies f to every element.
func (m Matrix[T, R, C]) Map(f func(T) T) Matrix[T, R, C] {
	out := newMatrix[T, R, C]()
	mapInto(out.data, m.data, f)
	return out
}

func (m *Matrix[T, R, C]) AddAssign(o Matrix[T, R, C]) {
	buf := m.buf()
	addInto(buf, buf, o.data)
}

func (m *Matrix[T, R, C]) SubAssign(o Matrix[T, R, C]) {
	buf := m.buf()
	subInto(buf, buf, o.data)
}

func (m *Matrix[T, R, C]) ScaleAssign(k T) {
	buf := m.buf()
	scaleInto(buf, buf, k)
}

func (m *Matrix[T, R, C]) DivAssign(k T) {
	buf := m.buf()
	divInto("Matrix.DivAssign", buf, buf, k)
}

// Negate flips the sign of every element in place.
func (m *Matrix[T, R, C]) Negate() {
	buf := m.buf()
	negInto(buf, buf)
}

func (m Matrix[T, R, C]) requireSquare(op string) int {
	rows, cols := dimOf[R](), dimOf[C]()
	contract.Require(rows == cols, op, contract.ErrNotSquare, "%dx%d", rows, cols)
	return rows
}

// Transpose transposes a square matrix in place. Transposing a non-square
// matrix in place is a contract violation; use the Transpose function.
func (m *Matrix[T, R, C]) Transpose() {
	n := m.requireSquare("Matrix.Transpose")
	buf := m.buf()
	for c := 1; c < n; c++ {
		for r := 0; r < c; r++ {
			buf[c*n+r], buf[r*n+c] = buf[r*n+c], buf[c*n+r]
		}
	}
}

// SetIdentity overwrites a square matrix with the identity.
func (m *Matrix[T, R, C]) SetIdentity() {
	n := m.requireSquare("Matrix.SetIdentity")
	buf := m.buf()
	clear(buf)
	for i := 0; i < n; i++ {
		buf[i*n+i] = 1
	}
}

// Trace returns the sum of the diagonal of a square matrix.
func (m Matrix[T, R, C]) Trace() T {
	n := m.requireSquare("Matrix.Trace")
	var sum T
	for i := 0; i < n; i++ {
		sum += elem(m.data, i*n+i)
	}
	return sum
}

// String renders m row by row: [ [ r0c0, r0c1 ], [ r1c0, r1c1 ] ].
func (m Matrix[T, R, C]) String() string {
	var sb strings.Builder
	sb.WriteString("[ ")
	for r := 0; r < dimOf[R](); r++ {
		if r > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("[ ")
		for c := 0; c < dimOf[C](); c++ {
			if c > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprint(&sb, m.Elem(r, c))
		}
		sb.WriteString(" ]")
	}
	sb.WriteString(" ]")
	return sb.String()
}

// Transpose returns the C×R transpose of m.
func Transpose[T scalar.Number, R, C Dim](m Matrix[T, R, C]) Matrix[T, C, R] {
	out := newMatrix[T, C, R]()
	for c := 0; c < dimOf[C](); c++ {
		for r := 0; r < dimOf[R](); r++ {
			out.data[r*dimOf[C]()+c] = m.Elem(r, c)
		}
	}
	return out
}

// Mul returns the product a·b. The inner dimensions agree by construction.
func Mul[T scalar.Number, M, K, N Dim](a Matrix[T, M, K], b Matrix[T, K, N]) Matrix[T, M, N] {
	out := newMatrix[T, M, N]()
	m, k, n := dimOf[M](), dimOf[K](), dimOf[N]()
	for col := 0; col < n; col++ {
		for row := 0; row < m; row++ {
			var sum T
			for i := 0; i < k; i++ {
				sum += a.Elem(row, i) * b.Elem(i, col)
			}
			out.data[col*m+row] = sum
		}
	}
	return out
}

// MulVec returns the product m·v, one row·v dot product per element.
func MulVec[T scalar.Number, R, C Dim](m Matrix[T, R, C], v Vector[T, C]) Vector[T, R] {
	out := newTuple[T, R]()
	for r := range out.data {
		out.data[r] = DotIndexed[T](m.RowView(r), v)
	}
	return Vector[T, R]{out}
}

// AllCloseMatrix reports whether every pair of elements is close under
// scalar.IsClose with the given tolerance options.
func AllCloseMatrix[T scalar.Float, R, C Dim](a, b Matrix[T, R, C], opts ...scalar.Option[T]) bool {
	return allClose(a.data, b.data, dimOf[R]()*dimOf[C](), scalar.NewTolerance(opts...))
}

// MatDegToRad converts every element from degrees to radians.
func MatDegToRad[T scalar.Float, R, C Dim](m Matrix[T, R, C]) Matrix[T, R, C] {
	return m.Map(scalar.DegToRad[T])
}

// MatRadToDeg converts every element from radians to degrees.
func MatRadToDeg[T scalar.Float, R, C Dim](m Matrix[T, R, C]) Matrix[T, R, C] {
	return m.Map(scalar.RadToDeg[T])
}
