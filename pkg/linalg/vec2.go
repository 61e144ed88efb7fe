package linalg

import "fmt"

// Vec2 represents a 2D vector.
type Vec2[T Float] struct {
	X, Y T
}

// V2 creates a new Vec2.
func V2[T Float](x, y T) Vec2[T] {
	return Vec2[T]{x, y}
}

// V2Splat creates a Vec2 with every component set to v.
func V2Splat[T Float](v T) Vec2[T] {
	return Vec2[T]{v, v}
}

// Vec2MinBounds returns the vector with every component at the lowest
// representable value.
func Vec2MinBounds[T Float]() Vec2[T] {
	return Vec2[T]{lowest[T](), lowest[T]()}
}

// Vec2MaxBounds returns the vector with every component at the highest
// representable value.
func Vec2MaxBounds[T Float]() Vec2[T] {
	return Vec2[T]{highest[T](), highest[T]()}
}

// At returns the component at index i (0 for X, 1 for Y).
// Panics if i is out of range.
func (v Vec2[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	panic(fmt.Sprintf("linalg: Vec2 index %d out of range [0,2)", i))
}

// SetAt sets the component at index i. Panics if i is out of range.
func (v *Vec2[T]) SetAt(i int, val T) {
	switch i {
	case 0:
		v.X = val
	case 1:
		v.Y = val
	default:
		panic(fmt.Sprintf("linalg: Vec2 index %d out of range [0,2)", i))
	}
}

// Add returns the vector sum a + b.
func (a Vec2[T]) Add(b Vec2[T]) Vec2[T] {
	return Vec2[T]{a.X + b.X, a.Y + b.Y}
}

// Sub returns the vector difference a - b.
func (a Vec2[T]) Sub(b Vec2[T]) Vec2[T] {
	return Vec2[T]{a.X - b.X, a.Y - b.Y}
}

// Mul returns the component-wise product a * b.
func (a Vec2[T]) Mul(b Vec2[T]) Vec2[T] {
	return Vec2[T]{a.X * b.X, a.Y * b.Y}
}

// Scale returns the scalar product v * s.
func (v Vec2[T]) Scale(s T) Vec2[T] {
	return Vec2[T]{v.X * s, v.Y * s}
}

// Div returns the scalar division v / s. Division by zero follows IEEE-754.
func (v Vec2[T]) Div(s T) Vec2[T] {
	return Vec2[T]{v.X / s, v.Y / s}
}

// Negate returns the negated vector.
func (v Vec2[T]) Negate() Vec2[T] {
	return Vec2[T]{-v.X, -v.Y}
}

// Dot returns the dot product a · b.
func (a Vec2[T]) Dot(b Vec2[T]) T {
	return a.X*b.X + a.Y*b.Y
}

// Len returns the length (magnitude) of the vector.
func (v Vec2[T]) Len() T {
	return sqrt(v.LenSq())
}

// LenSq returns the squared length (faster, no sqrt).
func (v Vec2[T]) LenSq() T {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns the unit vector in the same direction, or the zero
// vector when the length is zero.
func (v Vec2[T]) Normalize() Vec2[T] {
	l := v.Len()
	if l == 0 {
		return Vec2[T]{}
	}
	return v.Div(l)
}

// CwiseInverse returns the component-wise reciprocal.
func (v Vec2[T]) CwiseInverse() Vec2[T] {
	return Vec2[T]{1 / v.X, 1 / v.Y}
}

// Min returns the component-wise minimum.
func (a Vec2[T]) Min(b Vec2[T]) Vec2[T] {
	return Vec2[T]{min(a.X, b.X), min(a.Y, b.Y)}
}

// Max returns the component-wise maximum.
func (a Vec2[T]) Max(b Vec2[T]) Vec2[T] {
	return Vec2[T]{max(a.X, b.X), max(a.Y, b.Y)}
}

// Clamp returns the vector with each component clamped to [lo, hi].
func (v Vec2[T]) Clamp(lo, hi Vec2[T]) Vec2[T] {
	return v.Max(lo).Min(hi)
}

// MinComponent returns the smallest component.
func (v Vec2[T]) MinComponent() T {
	return min(v.X, v.Y)
}

// MaxComponent returns the largest component.
func (v Vec2[T]) MaxComponent() T {
	return max(v.X, v.Y)
}

// IsApprox reports whether every component of v is within eps of the
// corresponding component of o.
func (v Vec2[T]) IsApprox(o Vec2[T], eps T) bool {
	return abs(v.X-o.X) <= eps && abs(v.Y-o.Y) <= eps
}

func (v Vec2[T]) String() string {
	return fmt.Sprintf("Vec2(%v, %v)", v.X, v.Y)
}
