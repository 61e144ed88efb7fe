package linalg

import "math"

// RotationMatrix builds the composite rotation Rz * Ry * Rx from Euler
// angles in radians. The order is fixed: applying the result to a vector
// rotates around X first, then Y, then Z.
func RotationMatrix[T Float](xAngle, yAngle, zAngle T) Mat3[T] {
	sinX, cosX := sincos(xAngle)
	sinY, cosY := sincos(yAngle)
	sinZ, cosZ := sincos(zAngle)

	rx := Mat3[T]{
		1, 0, 0,
		0, cosX, -sinX,
		0, sinX, cosX,
	}
	ry := Mat3[T]{
		cosY, 0, sinY,
		0, 1, 0,
		-sinY, 0, cosY,
	}
	rz := Mat3[T]{
		cosZ, -sinZ, 0,
		sinZ, cosZ, 0,
		0, 0, 1,
	}

	return rz.Mul(ry).Mul(rx)
}

func sincos[T Float](angle T) (sin, cos T) {
	s, c := math.Sincos(float64(angle))
	return T(s), T(c)
}
