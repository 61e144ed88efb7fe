package linalg_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taigrr/linalg/pkg/linalg"
)

func TestRotationMatrixOrthogonality(t *testing.T) {
	rot := linalg.RotationMatrix(0.1, 0.2, 0.3)
	product := rot.Mul(rot.Transposed())

	require.True(t, product.IsApprox(linalg.Identity3[float64](), 1e-9))
	require.InDelta(t, 1.0, rot.Determinant(), 1e-9)
}

func TestRotationMatrixZeroAnglesIsIdentity(t *testing.T) {
	rot := linalg.RotationMatrix(0.0, 0.0, 0.0)
	require.True(t, rot.IsApprox(linalg.Identity3[float64](), 1e-12))
}

func TestRotationMatrixSingleAxis(t *testing.T) {
	quarter := math.Pi / 2

	// Z rotation by 90 degrees sends X to Y.
	rz := linalg.RotationMatrix(0.0, 0.0, quarter)
	require.True(t, rz.MulVec(linalg.V3(1.0, 0.0, 0.0)).
		IsApprox(linalg.V3(0.0, 1.0, 0.0), 1e-12))

	// X rotation by 90 degrees sends Y to Z.
	rx := linalg.RotationMatrix(quarter, 0.0, 0.0)
	require.True(t, rx.MulVec(linalg.V3(0.0, 1.0, 0.0)).
		IsApprox(linalg.V3(0.0, 0.0, 1.0), 1e-12))

	// Y rotation by 90 degrees sends Z to X.
	ry := linalg.RotationMatrix(0.0, quarter, 0.0)
	require.True(t, ry.MulVec(linalg.V3(0.0, 0.0, 1.0)).
		IsApprox(linalg.V3(1.0, 0.0, 0.0), 1e-12))
}

func TestRotationMatrixAppliesXFirst(t *testing.T) {
	quarter := math.Pi / 2

	// With x=z=90 degrees, (0,1,0) must go through Rx first:
	// Rx sends it to (0,0,1), which Rz then leaves in place. The reverse
	// order would land on (-1,0,0).
	rot := linalg.RotationMatrix(quarter, 0.0, quarter)
	require.True(t, rot.MulVec(linalg.V3(0.0, 1.0, 0.0)).
		IsApprox(linalg.V3(0.0, 0.0, 1.0), 1e-12))
}

func TestRotationMatrixMatchesComposition(t *testing.T) {
	x, y, z := 0.4, -1.1, 2.3
	rx := linalg.RotationMatrix(x, 0.0, 0.0)
	ry := linalg.RotationMatrix(0.0, y, 0.0)
	rz := linalg.RotationMatrix(0.0, 0.0, z)

	composed := rz.Mul(ry).Mul(rx)
	require.True(t, linalg.RotationMatrix(x, y, z).IsApprox(composed, 1e-12))
}
