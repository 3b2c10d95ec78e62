package scalar

const (
	Epsilon32 = 0x1p-23 // FLT_EPSILON, 1.19209e-07
	Epsilon64 = 0x1p-52 // DBL_EPSILON
)

// Epsilon returns the difference between 1 and the next representable value
// of T.
func Epsilon[T Float]() T {
	// 1 + 2^-52 only survives rounding in a 64-bit float.
	if T(T(1)+T(Epsilon64)) != T(1) {
		return T(Epsilon64)
	}
	return T(Epsilon32)
}
