package linalg

import "math"

// Float is the scalar constraint for every vector and matrix type in this
// package. Users pick the precision per instantiation.
type Float interface {
	~float32 | ~float64
}

// Epsilon is the default degeneracy threshold. Matrix inversion treats any
// determinant with |det| below this value as singular, and it is the
// recommended tolerance for IsApprox comparisons.
const Epsilon = 1e-6

func abs[T Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func sqrt[T Float](x T) T {
	return T(math.Sqrt(float64(x)))
}

// lowest and highest mirror numeric_limits for the two supported scalar
// kinds. A type switch on the zero value is the only way to branch on the
// instantiated type.
func lowest[T Float]() T {
	switch any(T(0)).(type) {
	case float32:
		return T(-math.MaxFloat32)
	default:
		// Converted through a variable: the constant itself does not fit
		// in float32, so a constant conversion to T would not type-check.
		v := -math.MaxFloat64
		return T(v)
	}
}

func highest[T Float]() T {
	switch any(T(0)).(type) {
	case float32:
		return T(math.MaxFloat32)
	default:
		v := math.MaxFloat64
		return T(v)
	}
}
