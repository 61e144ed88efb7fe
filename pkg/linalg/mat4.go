package linalg

import (
	"fmt"
	"math"
)

// Mat4 is a generic 4x4 matrix stored row-major in a flat array.
// The linear index of element (row, col) is row*4 + col; At/Set and direct
// indexing address the same storage. The zero value is the zero matrix; use
// Identity4 for the multiplicative identity.
//
// For a transform matrix:
//
//	| Xx Xy Xz Tx |   X,Y,Z = basis vectors (rotation/scale)
//	| Yx Yy Yz Ty |   T = translation
//	| Zx Zy Zz Tz |
//	| 0  0  0  1  |
type Mat4[T Float] [16]T

// Identity4 returns the 4x4 identity matrix.
func Identity4[T Float]() Mat4[T] {
	return Mat4[T]{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4Fill returns a matrix with every element set to v.
func Mat4Fill[T Float](v T) Mat4[T] {
	var m Mat4[T]
	for i := range m {
		m[i] = v
	}
	return m
}

// Mat4Of builds a matrix from fixed-size rows.
func Mat4Of[T Float](rows [4][4]T) Mat4[T] {
	var m Mat4[T]
	for i := range 4 {
		for j := range 4 {
			m[i*4+j] = rows[i][j]
		}
	}
	return m
}

// NewMat4 builds a matrix from nested row slices, validating that the input
// is exactly 4x4. Returns ErrBadShape otherwise.
func NewMat4[T Float](rows [][]T) (Mat4[T], error) {
	if len(rows) != 4 {
		return Mat4[T]{}, fmt.Errorf("%w: want 4 rows, got %d", ErrBadShape, len(rows))
	}
	var m Mat4[T]
	for i, row := range rows {
		if len(row) != 4 {
			return Mat4[T]{}, fmt.Errorf("%w: row %d has %d elements, want 4", ErrBadShape, i, len(row))
		}
		copy(m[i*4:i*4+4], row)
	}
	return m, nil
}

// Mat4FromMat3 embeds a 3x3 matrix into the top-left block of a 4x4 matrix,
// with the last row and column taken from the identity (translation-free
// homogeneous embedding).
func Mat4FromMat3[T Float](m3 Mat3[T]) Mat4[T] {
	return Mat4[T]{
		m3[0], m3[1], m3[2], 0,
		m3[3], m3[4], m3[5], 0,
		m3[6], m3[7], m3[8], 0,
		0, 0, 0, 1,
	}
}

// Mat4FromRows builds a matrix whose rows are the given vectors.
func Mat4FromRows[T Float](r0, r1, r2, r3 Vec4[T]) Mat4[T] {
	return Mat4[T]{
		r0.X, r0.Y, r0.Z, r0.W,
		r1.X, r1.Y, r1.Z, r1.W,
		r2.X, r2.Y, r2.Z, r2.W,
		r3.X, r3.Y, r3.Z, r3.W,
	}
}

// Mat4FromColumns builds a matrix whose columns are the given vectors.
func Mat4FromColumns[T Float](c0, c1, c2, c3 Vec4[T]) Mat4[T] {
	return Mat4[T]{
		c0.X, c1.X, c2.X, c3.X,
		c0.Y, c1.Y, c2.Y, c3.Y,
		c0.Z, c1.Z, c2.Z, c3.Z,
		c0.W, c1.W, c2.W, c3.W,
	}
}

// Translate creates a translation matrix.
func Translate[T Float](v Vec3[T]) Mat4[T] {
	return Mat4[T]{
		1, 0, 0, v.X,
		0, 1, 0, v.Y,
		0, 0, 1, v.Z,
		0, 0, 0, 1,
	}
}

// Scale creates a scaling matrix.
func Scale[T Float](v Vec3[T]) Mat4[T] {
	return Mat4[T]{
		v.X, 0, 0, 0,
		0, v.Y, 0, 0,
		0, 0, v.Z, 0,
		0, 0, 0, 1,
	}
}

// ScaleUniform creates a uniform scaling matrix.
func ScaleUniform[T Float](s T) Mat4[T] {
	return Scale(V3Splat(s))
}

// At returns the element at (row, col).
func (m Mat4[T]) At(row, col int) T {
	return m[row*4+col]
}

// Set sets the element at (row, col).
func (m *Mat4[T]) Set(row, col int, v T) {
	m[row*4+col] = v
}

// Row returns row i as a vector.
func (m Mat4[T]) Row(i int) Vec4[T] {
	return Vec4[T]{m[i*4], m[i*4+1], m[i*4+2], m[i*4+3]}
}

// Col returns column j as a vector.
func (m Mat4[T]) Col(j int) Vec4[T] {
	return Vec4[T]{m[j], m[4+j], m[8+j], m[12+j]}
}

// TopLeft3x3 returns the top-left 3x3 submatrix.
func (m Mat4[T]) TopLeft3x3() Mat3[T] {
	return Mat3[T]{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

// Translation extracts the translation component.
func (m Mat4[T]) Translation() Vec3[T] {
	return Vec3[T]{m[3], m[7], m[11]}
}

// SetTranslation sets the translation component.
func (m *Mat4[T]) SetTranslation(v Vec3[T]) {
	m[3] = v.X
	m[7] = v.Y
	m[11] = v.Z
}

// Transposed returns the transposed matrix.
func (m Mat4[T]) Transposed() Mat4[T] {
	return Mat4[T]{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// cofactors returns the first column of the cofactor matrix transpose, the
// four values the determinant expansion needs.
func (m Mat4[T]) cofactors() (c0, c4, c8, c12 T) {
	c0 = m[5]*m[10]*m[15] - m[5]*m[11]*m[14] - m[9]*m[6]*m[15] +
		m[9]*m[7]*m[14] + m[13]*m[6]*m[11] - m[13]*m[7]*m[10]
	c4 = -m[4]*m[10]*m[15] + m[4]*m[11]*m[14] + m[8]*m[6]*m[15] -
		m[8]*m[7]*m[14] - m[12]*m[6]*m[11] + m[12]*m[7]*m[10]
	c8 = m[4]*m[9]*m[15] - m[4]*m[11]*m[13] - m[8]*m[5]*m[15] +
		m[8]*m[7]*m[13] + m[12]*m[5]*m[11] - m[12]*m[7]*m[9]
	c12 = -m[4]*m[9]*m[14] + m[4]*m[10]*m[13] + m[8]*m[5]*m[14] -
		m[8]*m[6]*m[13] - m[12]*m[5]*m[10] + m[12]*m[6]*m[9]
	return c0, c4, c8, c12
}

// Determinant returns the determinant, the dot product of the first row
// with its four cofactors.
func (m Mat4[T]) Determinant() T {
	c0, c4, c8, c12 := m.cofactors()
	return m[0]*c0 + m[1]*c4 + m[2]*c8 + m[3]*c12
}

// Inverse returns the inverse of the matrix, computed via the classical
// 16-cofactor expansion. If |det| < Epsilon the matrix is treated as
// singular and the identity matrix is returned; use InverseChecked to
// detect that case.
func (m Mat4[T]) Inverse() Mat4[T] {
	inv, ok := m.InverseChecked()
	if !ok {
		return Identity4[T]()
	}
	return inv
}

// InverseChecked returns the inverse of the matrix and true, or the zero
// matrix and false when |det| < Epsilon.
func (m Mat4[T]) InverseChecked() (Mat4[T], bool) {
	var inv Mat4[T]

	inv[0] = m[5]*m[10]*m[15] - m[5]*m[11]*m[14] - m[9]*m[6]*m[15] +
		m[9]*m[7]*m[14] + m[13]*m[6]*m[11] - m[13]*m[7]*m[10]
	inv[1] = -m[1]*m[10]*m[15] + m[1]*m[11]*m[14] + m[9]*m[2]*m[15] -
		m[9]*m[3]*m[14] - m[13]*m[2]*m[11] + m[13]*m[3]*m[10]
	inv[2] = m[1]*m[6]*m[15] - m[1]*m[7]*m[14] - m[5]*m[2]*m[15] +
		m[5]*m[3]*m[14] + m[13]*m[2]*m[7] - m[13]*m[3]*m[6]
	inv[3] = -m[1]*m[6]*m[11] + m[1]*m[7]*m[10] + m[5]*m[2]*m[11] -
		m[5]*m[3]*m[10] - m[9]*m[2]*m[7] + m[9]*m[3]*m[6]

	inv[4] = -m[4]*m[10]*m[15] + m[4]*m[11]*m[14] + m[8]*m[6]*m[15] -
		m[8]*m[7]*m[14] - m[12]*m[6]*m[11] + m[12]*m[7]*m[10]
	inv[5] = m[0]*m[10]*m[15] - m[0]*m[11]*m[14] - m[8]*m[2]*m[15] +
		m[8]*m[3]*m[14] + m[12]*m[2]*m[11] - m[12]*m[3]*m[10]
	inv[6] = -m[0]*m[6]*m[15] + m[0]*m[7]*m[14] + m[4]*m[2]*m[15] -
		m[4]*m[3]*m[14] - m[12]*m[2]*m[7] + m[12]*m[3]*m[6]
	inv[7] = m[0]*m[6]*m[11] - m[0]*m[7]*m[10] - m[4]*m[2]*m[11] +
		m[4]*m[3]*m[10] + m[8]*m[2]*m[7] - m[8]*m[3]*m[6]

	inv[8] = m[4]*m[9]*m[15] - m[4]*m[11]*m[13] - m[8]*m[5]*m[15] +
		m[8]*m[7]*m[13] + m[12]*m[5]*m[11] - m[12]*m[7]*m[9]
	inv[9] = -m[0]*m[9]*m[15] + m[0]*m[11]*m[13] + m[8]*m[1]*m[15] -
		m[8]*m[3]*m[13] - m[12]*m[1]*m[11] + m[12]*m[3]*m[9]
	inv[10] = m[0]*m[5]*m[15] - m[0]*m[7]*m[13] - m[4]*m[1]*m[15] +
		m[4]*m[3]*m[13] + m[12]*m[1]*m[7] - m[12]*m[3]*m[5]
	inv[11] = -m[0]*m[5]*m[11] + m[0]*m[7]*m[9] + m[4]*m[1]*m[11] -
		m[4]*m[3]*m[9] - m[8]*m[1]*m[7] + m[8]*m[3]*m[5]

	inv[12] = -m[4]*m[9]*m[14] + m[4]*m[10]*m[13] + m[8]*m[5]*m[14] -
		m[8]*m[6]*m[13] - m[12]*m[5]*m[10] + m[12]*m[6]*m[9]
	inv[13] = m[0]*m[9]*m[14] - m[0]*m[10]*m[13] - m[8]*m[1]*m[14] +
		m[8]*m[2]*m[13] + m[12]*m[1]*m[10] - m[12]*m[2]*m[9]
	inv[14] = -m[0]*m[5]*m[14] + m[0]*m[6]*m[13] + m[4]*m[1]*m[14] -
		m[4]*m[2]*m[13] - m[12]*m[1]*m[6] + m[12]*m[2]*m[5]
	inv[15] = m[0]*m[5]*m[10] - m[0]*m[6]*m[9] - m[4]*m[1]*m[10] +
		m[4]*m[2]*m[9] + m[8]*m[1]*m[6] - m[8]*m[2]*m[5]

	det := m[0]*inv[0] + m[1]*inv[4] + m[2]*inv[8] + m[3]*inv[12]
	if abs(det) < Epsilon {
		return Mat4[T]{}, false
	}

	invDet := 1 / det
	for i := range inv {
		inv[i] *= invDet
	}
	return inv, true
}

// Mul returns the matrix product a * b.
//
//nolint:st1016 // a*b naming convention is clearer for matrix multiplication
func (a Mat4[T]) Mul(b Mat4[T]) Mat4[T] {
	var out Mat4[T]
	for i := range 4 {
		for j := range 4 {
			out[i*4+j] = a[i*4]*b[j] + a[i*4+1]*b[4+j] +
				a[i*4+2]*b[8+j] + a[i*4+3]*b[12+j]
		}
	}
	return out
}

// MulVec returns the matrix-vector product m * v.
func (m Mat4[T]) MulVec(v Vec4[T]) Vec4[T] {
	return Vec4[T]{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3]*v.W,
		m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7]*v.W,
		m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11]*v.W,
		m[12]*v.X + m[13]*v.Y + m[14]*v.Z + m[15]*v.W,
	}
}

// MulPoint transforms a Vec3 as a point (w=1), applying the perspective
// divide when the resulting w is not 1.
func (m Mat4[T]) MulPoint(v Vec3[T]) Vec3[T] {
	w := m[12]*v.X + m[13]*v.Y + m[14]*v.Z + m[15]
	if w == 0 {
		w = 1
	}
	return Vec3[T]{
		(m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3]) / w,
		(m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7]) / w,
		(m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11]) / w,
	}
}

// MulDir transforms a Vec3 as a direction (w=0, no translation).
func (m Mat4[T]) MulDir(v Vec3[T]) Vec3[T] {
	return Vec3[T]{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		m[4]*v.X + m[5]*v.Y + m[6]*v.Z,
		m[8]*v.X + m[9]*v.Y + m[10]*v.Z,
	}
}

// IsApprox reports whether every element of m is within eps of the
// corresponding element of o.
func (m Mat4[T]) IsApprox(o Mat4[T], eps T) bool {
	for i := range m {
		if abs(m[i]-o[i]) > eps {
			return false
		}
	}
	return true
}

func (m Mat4[T]) String() string {
	return fmt.Sprintf("Mat4(\n  [%v, %v, %v, %v]\n  [%v, %v, %v, %v]\n  [%v, %v, %v, %v]\n  [%v, %v, %v, %v]\n)",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7],
		m[8], m[9], m[10], m[11], m[12], m[13], m[14], m[15])
}

// LookAt creates a right-handed view matrix looking from eye towards
// center. The up hint is re-orthogonalized, so it only needs to be roughly
// perpendicular to the view direction. eye must differ from center; a zero
// view direction produces a degenerate matrix.
func LookAt[T Float](eye, center, up Vec3[T]) Mat4[T] {
	f := center.Sub(eye).Normalize() // Forward
	s := f.Cross(up).Normalize()     // Side
	u := s.Cross(f)                  // Up (recomputed)

	return Mat4[T]{
		s.X, s.Y, s.Z, -s.Dot(eye),
		u.X, u.Y, u.Z, -u.Dot(eye),
		-f.X, -f.Y, -f.Z, f.Dot(eye),
		0, 0, 0, 1,
	}
}

// LookAtAuto is LookAt with an automatic up hint: world Z-up when the view
// direction is near vertical (|forward.y| > 0.99), world Y-up otherwise.
func LookAtAuto[T Float](eye, center Vec3[T]) Mat4[T] {
	f := center.Sub(eye).Normalize()

	up := V3[T](0, 1, 0)
	if abs(f.Y) > 0.99 {
		up = V3[T](0, 0, 1)
	}
	return LookAt(eye, center, up)
}

// Orthographic creates an orthographic projection matrix mapping
// [left,right] x [bottom,top] x [near,far] to the canonical OpenGL box.
// The caller must ensure right != left, top != bottom and far != near.
func Orthographic[T Float](left, right, bottom, top, near, far T) Mat4[T] {
	m := Identity4[T]()
	m[0] = 2 / (right - left)
	m[5] = 2 / (top - bottom)
	m[10] = -2 / (far - near)

	m[3] = -(right + left) / (right - left)
	m[7] = -(top + bottom) / (top - bottom)
	m[11] = -(far + near) / (far - near)
	return m
}

// Perspective creates a symmetric-frustum perspective projection matrix.
// fovY is the vertical field of view in radians and must lie in (0, pi);
// aspect is width/height and must be positive; far > near > 0.
func Perspective[T Float](fovY, aspect, near, far T) Mat4[T] {
	invTanHalfFovY := T(1 / math.Tan(float64(fovY)/2))

	var m Mat4[T]
	m[0] = invTanHalfFovY / aspect
	m[5] = invTanHalfFovY
	m[10] = -(far + near) / (far - near)
	m[11] = -(2 * far * near) / (far - near)
	m[14] = -1
	return m
}
