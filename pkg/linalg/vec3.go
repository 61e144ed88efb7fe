package linalg

import "fmt"

// Vec3 represents a 3D vector.
type Vec3[T Float] struct {
	X, Y, Z T
}

// V3 creates a new Vec3.
func V3[T Float](x, y, z T) Vec3[T] {
	return Vec3[T]{x, y, z}
}

// V3Splat creates a Vec3 with every component set to v.
func V3Splat[T Float](v T) Vec3[T] {
	return Vec3[T]{v, v, v}
}

// Vec3MinBounds returns the vector with every component at the lowest
// representable value.
func Vec3MinBounds[T Float]() Vec3[T] {
	return Vec3[T]{lowest[T](), lowest[T](), lowest[T]()}
}

// Vec3MaxBounds returns the vector with every component at the highest
// representable value.
func Vec3MaxBounds[T Float]() Vec3[T] {
	return Vec3[T]{highest[T](), highest[T](), highest[T]()}
}

// Vec4 returns the homogeneous point form of v, with W set to 1.
func (v Vec3[T]) Vec4() Vec4[T] {
	return V4FromV3(v, 1)
}

// At returns the component at index i (0 for X, 1 for Y, 2 for Z).
// Panics if i is out of range.
func (v Vec3[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic(fmt.Sprintf("linalg: Vec3 index %d out of range [0,3)", i))
}

// SetAt sets the component at index i. Panics if i is out of range.
func (v *Vec3[T]) SetAt(i int, val T) {
	switch i {
	case 0:
		v.X = val
	case 1:
		v.Y = val
	case 2:
		v.Z = val
	default:
		panic(fmt.Sprintf("linalg: Vec3 index %d out of range [0,3)", i))
	}
}

// Add returns the vector sum a + b.
func (a Vec3[T]) Add(b Vec3[T]) Vec3[T] {
	return Vec3[T]{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns the vector difference a - b.
func (a Vec3[T]) Sub(b Vec3[T]) Vec3[T] {
	return Vec3[T]{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Mul returns the component-wise product a * b.
func (a Vec3[T]) Mul(b Vec3[T]) Vec3[T] {
	return Vec3[T]{a.X * b.X, a.Y * b.Y, a.Z * b.Z}
}

// Scale returns the scalar product v * s.
func (v Vec3[T]) Scale(s T) Vec3[T] {
	return Vec3[T]{v.X * s, v.Y * s, v.Z * s}
}

// Div returns the scalar division v / s. Division by zero follows IEEE-754.
func (v Vec3[T]) Div(s T) Vec3[T] {
	return Vec3[T]{v.X / s, v.Y / s, v.Z / s}
}

// Negate returns the negated vector.
func (v Vec3[T]) Negate() Vec3[T] {
	return Vec3[T]{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product a · b.
func (a Vec3[T]) Dot(b Vec3[T]) T {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a × b.
func (a Vec3[T]) Cross(b Vec3[T]) Vec3[T] {
	return Vec3[T]{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Len returns the length (magnitude) of the vector.
func (v Vec3[T]) Len() T {
	return sqrt(v.LenSq())
}

// LenSq returns the squared length (faster, no sqrt).
func (v Vec3[T]) LenSq() T {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize returns the unit vector in the same direction, or the zero
// vector when the length is zero.
func (v Vec3[T]) Normalize() Vec3[T] {
	l := v.Len()
	if l == 0 {
		return Vec3[T]{}
	}
	return v.Div(l)
}

// CwiseInverse returns the component-wise reciprocal.
func (v Vec3[T]) CwiseInverse() Vec3[T] {
	return Vec3[T]{1 / v.X, 1 / v.Y, 1 / v.Z}
}

// Min returns the component-wise minimum.
func (a Vec3[T]) Min(b Vec3[T]) Vec3[T] {
	return Vec3[T]{min(a.X, b.X), min(a.Y, b.Y), min(a.Z, b.Z)}
}

// Max returns the component-wise maximum.
func (a Vec3[T]) Max(b Vec3[T]) Vec3[T] {
	return Vec3[T]{max(a.X, b.X), max(a.Y, b.Y), max(a.Z, b.Z)}
}

// Clamp returns the vector with each component clamped to [lo, hi].
func (v Vec3[T]) Clamp(lo, hi Vec3[T]) Vec3[T] {
	return v.Max(lo).Min(hi)
}

// MinComponent returns the smallest component.
func (v Vec3[T]) MinComponent() T {
	return min(v.X, v.Y, v.Z)
}

// MaxComponent returns the largest component.
func (v Vec3[T]) MaxComponent() T {
	return max(v.X, v.Y, v.Z)
}

// IsApprox reports whether every component of v is within eps of the
// corresponding component of o.
func (v Vec3[T]) IsApprox(o Vec3[T], eps T) bool {
	return abs(v.X-o.X) <= eps && abs(v.Y-o.Y) <= eps && abs(v.Z-o.Z) <= eps
}

func (v Vec3[T]) String() string {
	return fmt.Sprintf("Vec3(%v, %v, %v)", v.X, v.Y, v.Z)
}
