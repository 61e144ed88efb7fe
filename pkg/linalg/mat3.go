package linalg

import "fmt"

// Mat3 is a generic 3x3 matrix stored row-major in a flat array.
// The linear index of element (row, col) is row*3 + col; At/Set and direct
// indexing address the same storage. The zero value is the zero matrix; use
// Identity3 for the multiplicative identity.
type Mat3[T Float] [9]T

// Identity3 returns the 3x3 identity matrix.
func Identity3[T Float]() Mat3[T] {
	return Mat3[T]{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Mat3Fill returns a matrix with every element set to v.
func Mat3Fill[T Float](v T) Mat3[T] {
	var m Mat3[T]
	for i := range m {
		m[i] = v
	}
	return m
}

// Mat3Of builds a matrix from fixed-size rows.
func Mat3Of[T Float](rows [3][3]T) Mat3[T] {
	return Mat3[T]{
		rows[0][0], rows[0][1], rows[0][2],
		rows[1][0], rows[1][1], rows[1][2],
		rows[2][0], rows[2][1], rows[2][2],
	}
}

// NewMat3 builds a matrix from nested row slices, validating that the input
// is exactly 3x3. Returns ErrBadShape otherwise.
func NewMat3[T Float](rows [][]T) (Mat3[T], error) {
	if len(rows) != 3 {
		return Mat3[T]{}, fmt.Errorf("%w: want 3 rows, got %d", ErrBadShape, len(rows))
	}
	var m Mat3[T]
	for i, row := range rows {
		if len(row) != 3 {
			return Mat3[T]{}, fmt.Errorf("%w: row %d has %d elements, want 3", ErrBadShape, i, len(row))
		}
		copy(m[i*3:i*3+3], row)
	}
	return m, nil
}

// Mat3FromRows builds a matrix whose rows are the given vectors.
func Mat3FromRows[T Float](r0, r1, r2 Vec3[T]) Mat3[T] {
	return Mat3[T]{
		r0.X, r0.Y, r0.Z,
		r1.X, r1.Y, r1.Z,
		r2.X, r2.Y, r2.Z,
	}
}

// Mat3FromColumns builds a matrix whose columns are the given vectors.
func Mat3FromColumns[T Float](c0, c1, c2 Vec3[T]) Mat3[T] {
	return Mat3[T]{
		c0.X, c1.X, c2.X,
		c0.Y, c1.Y, c2.Y,
		c0.Z, c1.Z, c2.Z,
	}
}

// At returns the element at (row, col).
func (m Mat3[T]) At(row, col int) T {
	return m[row*3+col]
}

// Set sets the element at (row, col).
func (m *Mat3[T]) Set(row, col int, v T) {
	m[row*3+col] = v
}

// Row returns row i as a vector.
func (m Mat3[T]) Row(i int) Vec3[T] {
	return Vec3[T]{m[i*3], m[i*3+1], m[i*3+2]}
}

// Col returns column j as a vector.
func (m Mat3[T]) Col(j int) Vec3[T] {
	return Vec3[T]{m[j], m[3+j], m[6+j]}
}

// Transposed returns the transposed matrix.
func (m Mat3[T]) Transposed() Mat3[T] {
	return Mat3[T]{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Determinant returns the determinant via cofactor expansion along the
// first row.
func (m Mat3[T]) Determinant() T {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// Inverse returns the inverse of the matrix, computed as adjugate over
// determinant. If |det| < Epsilon the matrix is treated as singular and the
// identity matrix is returned; use InverseChecked to detect that case.
func (m Mat3[T]) Inverse() Mat3[T] {
	inv, ok := m.InverseChecked()
	if !ok {
		return Identity3[T]()
	}
	return inv
}

// InverseChecked returns the inverse of the matrix and true, or the zero
// matrix and false when |det| < Epsilon.
func (m Mat3[T]) InverseChecked() (Mat3[T], bool) {
	det := m.Determinant()
	if abs(det) < Epsilon {
		return Mat3[T]{}, false
	}
	invDet := 1 / det

	return Mat3[T]{
		(m[4]*m[8] - m[5]*m[7]) * invDet,
		-(m[1]*m[8] - m[2]*m[7]) * invDet,
		(m[1]*m[5] - m[2]*m[4]) * invDet,

		-(m[3]*m[8] - m[5]*m[6]) * invDet,
		(m[0]*m[8] - m[2]*m[6]) * invDet,
		-(m[0]*m[5] - m[2]*m[3]) * invDet,

		(m[3]*m[7] - m[4]*m[6]) * invDet,
		-(m[0]*m[7] - m[1]*m[6]) * invDet,
		(m[0]*m[4] - m[1]*m[3]) * invDet,
	}, true
}

// Mul returns the matrix product a * b.
//
//nolint:st1016 // a*b naming convention is clearer for matrix multiplication
func (a Mat3[T]) Mul(b Mat3[T]) Mat3[T] {
	var out Mat3[T]
	for i := range 3 {
		for j := range 3 {
			out[i*3+j] = a[i*3]*b[j] + a[i*3+1]*b[3+j] + a[i*3+2]*b[6+j]
		}
	}
	return out
}

// MulVec returns the matrix-vector product m * v.
func (m Mat3[T]) MulVec(v Vec3[T]) Vec3[T] {
	return Vec3[T]{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// IsApprox reports whether every element of m is within eps of the
// corresponding element of o.
func (m Mat3[T]) IsApprox(o Mat3[T], eps T) bool {
	for i := range m {
		if abs(m[i]-o[i]) > eps {
			return false
		}
	}
	return true
}

func (m Mat3[T]) String() string {
	return fmt.Sprintf("Mat3(\n  [%v, %v, %v]\n  [%v, %v, %v]\n  [%v, %v, %v]\n)",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}
