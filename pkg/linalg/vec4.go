package linalg

import "fmt"

// Vec4 represents a 4D vector (or homogeneous 3D point).
type Vec4[T Float] struct {
	X, Y, Z, W T
}

// V4 creates a new Vec4.
func V4[T Float](x, y, z, w T) Vec4[T] {
	return Vec4[T]{x, y, z, w}
}

// V4Splat creates a Vec4 with every component set to v.
func V4Splat[T Float](v T) Vec4[T] {
	return Vec4[T]{v, v, v, v}
}

// V4FromV3 creates a Vec4 from a Vec3 with the given W. Use w=1 for points
// and w=0 for directions.
func V4FromV3[T Float](v Vec3[T], w T) Vec4[T] {
	return Vec4[T]{v.X, v.Y, v.Z, w}
}

// Vec4MinBounds returns the vector with every component at the lowest
// representable value.
func Vec4MinBounds[T Float]() Vec4[T] {
	return Vec4[T]{lowest[T](), lowest[T](), lowest[T](), lowest[T]()}
}

// Vec4MaxBounds returns the vector with every component at the highest
// representable value.
func Vec4MaxBounds[T Float]() Vec4[T] {
	return Vec4[T]{highest[T](), highest[T](), highest[T](), highest[T]()}
}

// Vec3 returns the Vec3 portion (dropping W).
func (v Vec4[T]) Vec3() Vec3[T] {
	return Vec3[T]{v.X, v.Y, v.Z}
}

// PerspectiveDivide returns the Vec3 after dividing by W. A zero W returns
// the components unchanged.
func (v Vec4[T]) PerspectiveDivide() Vec3[T] {
	if v.W == 0 {
		return Vec3[T]{v.X, v.Y, v.Z}
	}
	return Vec3[T]{v.X / v.W, v.Y / v.W, v.Z / v.W}
}

// At returns the component at index i (0..3 for X, Y, Z, W).
// Panics if i is out of range.
func (v Vec4[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	}
	panic(fmt.Sprintf("linalg: Vec4 index %d out of range [0,4)", i))
}

// SetAt sets the component at index i. Panics if i is out of range.
func (v *Vec4[T]) SetAt(i int, val T) {
	switch i {
	case 0:
		v.X = val
	case 1:
		v.Y = val
	case 2:
		v.Z = val
	case 3:
		v.W = val
	default:
		panic(fmt.Sprintf("linalg: Vec4 index %d out of range [0,4)", i))
	}
}

// Add returns the vector sum a + b.
func (a Vec4[T]) Add(b Vec4[T]) Vec4[T] {
	return Vec4[T]{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W}
}

// Sub returns the vector difference a - b.
func (a Vec4[T]) Sub(b Vec4[T]) Vec4[T] {
	return Vec4[T]{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W}
}

// Mul returns the component-wise product a * b.
func (a Vec4[T]) Mul(b Vec4[T]) Vec4[T] {
	return Vec4[T]{a.X * b.X, a.Y * b.Y, a.Z * b.Z, a.W * b.W}
}

// Scale returns the scalar product v * s.
func (v Vec4[T]) Scale(s T) Vec4[T] {
	return Vec4[T]{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Div returns the scalar division v / s. Division by zero follows IEEE-754.
func (v Vec4[T]) Div(s T) Vec4[T] {
	return Vec4[T]{v.X / s, v.Y / s, v.Z / s, v.W / s}
}

// Negate returns the negated vector.
func (v Vec4[T]) Negate() Vec4[T] {
	return Vec4[T]{-v.X, -v.Y, -v.Z, -v.W}
}

// Dot returns the dot product a · b.
func (a Vec4[T]) Dot(b Vec4[T]) T {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// Len returns the length (magnitude) of the vector.
func (v Vec4[T]) Len() T {
	return sqrt(v.LenSq())
}

// LenSq returns the squared length (faster, no sqrt).
func (v Vec4[T]) LenSq() T {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

// Normalize returns the unit vector in the same direction, or the zero
// vector when the length is zero.
func (v Vec4[T]) Normalize() Vec4[T] {
	l := v.Len()
	if l == 0 {
		return Vec4[T]{}
	}
	return v.Div(l)
}

// CwiseInverse returns the component-wise reciprocal.
func (v Vec4[T]) CwiseInverse() Vec4[T] {
	return Vec4[T]{1 / v.X, 1 / v.Y, 1 / v.Z, 1 / v.W}
}

// Min returns the component-wise minimum.
func (a Vec4[T]) Min(b Vec4[T]) Vec4[T] {
	return Vec4[T]{min(a.X, b.X), min(a.Y, b.Y), min(a.Z, b.Z), min(a.W, b.W)}
}

// Max returns the component-wise maximum.
func (a Vec4[T]) Max(b Vec4[T]) Vec4[T] {
	return Vec4[T]{max(a.X, b.X), max(a.Y, b.Y), max(a.Z, b.Z), max(a.W, b.W)}
}

// Clamp returns the vector with each component clamped to [lo, hi].
func (v Vec4[T]) Clamp(lo, hi Vec4[T]) Vec4[T] {
	return v.Max(lo).Min(hi)
}

// MinComponent returns the smallest component.
func (v Vec4[T]) MinComponent() T {
	return min(v.X, v.Y, v.Z, v.W)
}

// MaxComponent returns the largest component.
func (v Vec4[T]) MaxComponent() T {
	return max(v.X, v.Y, v.Z, v.W)
}

// IsApprox reports whether every component of v is within eps of the
// corresponding component of o.
func (v Vec4[T]) IsApprox(o Vec4[T], eps T) bool {
	return abs(v.X-o.X) <= eps && abs(v.Y-o.Y) <= eps &&
		abs(v.Z-o.Z) <= eps && abs(v.W-o.W) <= eps
}

func (v Vec4[T]) String() string {
	return fmt.Sprintf("Vec4(%v, %v, %v, %v)", v.X, v.Y, v.Z, v.W)
}
