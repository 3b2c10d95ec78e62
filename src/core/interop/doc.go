// Package interop converts linalg values to and from the vector and matrix
// types of golang.org/x/image/math/f32 and gonum.org/v1/gonum/mat.
//
// The f32 types are row-major fixed arrays for graphics code. The gonum
// types are dynamically sized, so converting into linalg checks the shape
// and reports a mismatch as an error wrapping contract.ErrShape.
package interop
