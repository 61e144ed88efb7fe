package linalg_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taigrr/linalg/pkg/linalg"
)

func TestVec3Constructors(t *testing.T) {
	require.Equal(t, linalg.Vec3[float64]{1, 2, 3}, linalg.V3(1.0, 2.0, 3.0))
	require.Equal(t, linalg.Vec3[float64]{4, 4, 4}, linalg.V3Splat(4.0))
	require.Equal(t, linalg.Vec3[float64]{}, linalg.Vec3[float64]{0, 0, 0})
}

func TestVec3Arithmetic(t *testing.T) {
	a := linalg.V3(1.0, 2.0, 3.0)
	b := linalg.V3(4.0, 5.0, 6.0)

	require.Equal(t, linalg.V3(5.0, 7.0, 9.0), a.Add(b))
	require.Equal(t, linalg.V3(-3.0, -3.0, -3.0), a.Sub(b))
	require.Equal(t, linalg.V3(4.0, 10.0, 18.0), a.Mul(b))
	require.Equal(t, linalg.V3(2.0, 4.0, 6.0), a.Scale(2))
	require.Equal(t, linalg.V3(0.5, 1.0, 1.5), a.Div(2))
	require.Equal(t, linalg.V3(-1.0, -2.0, -3.0), a.Negate())
}

func TestVec3DotCross(t *testing.T) {
	a := linalg.V3(1.0, 2.0, 3.0)
	b := linalg.V3(4.0, 5.0, 6.0)

	require.InDelta(t, 32.0, a.Dot(b), 1e-12)
	require.Equal(t, linalg.V3(-3.0, 6.0, -3.0), a.Cross(b))

	// Cross of parallel vectors vanishes.
	require.Equal(t, linalg.Vec3[float64]{}, a.Cross(a.Scale(2)))

	// Right-handed basis.
	x := linalg.V3(1.0, 0.0, 0.0)
	y := linalg.V3(0.0, 1.0, 0.0)
	require.Equal(t, linalg.V3(0.0, 0.0, 1.0), x.Cross(y))
}

func TestVec3Length(t *testing.T) {
	v := linalg.V3(3.0, 4.0, 0.0)
	require.InDelta(t, 5.0, v.Len(), 1e-12)
	require.InDelta(t, 25.0, v.LenSq(), 1e-12)

	n := v.Normalize()
	require.InDelta(t, 1.0, n.Len(), 1e-12)
	require.True(t, n.IsApprox(linalg.V3(0.6, 0.8, 0.0), 1e-12))
}

func TestVec3NormalizeZero(t *testing.T) {
	require.Equal(t, linalg.Vec3[float64]{}, linalg.Vec3[float64]{}.Normalize())
}

func TestVec3Indexing(t *testing.T) {
	v := linalg.V3(1.0, 2.0, 3.0)
	require.Equal(t, 1.0, v.At(0))
	require.Equal(t, 2.0, v.At(1))
	require.Equal(t, 3.0, v.At(2))

	v.SetAt(1, 7)
	require.Equal(t, linalg.V3(1.0, 7.0, 3.0), v)

	require.Panics(t, func() { v.At(3) })
	require.Panics(t, func() { v.At(-1) })
	require.Panics(t, func() { v.SetAt(3, 0) })
}

func TestVec3CwiseOps(t *testing.T) {
	a := linalg.V3(1.0, 5.0, -2.0)
	b := linalg.V3(3.0, 2.0, 4.0)

	require.Equal(t, linalg.V3(1.0, 2.0, -2.0), a.Min(b))
	require.Equal(t, linalg.V3(3.0, 5.0, 4.0), a.Max(b))
	require.Equal(t, linalg.V3(3.0, 10.0, -8.0), a.Mul(b))

	lo := linalg.V3Splat(0.0)
	hi := linalg.V3Splat(3.0)
	require.Equal(t, linalg.V3(1.0, 3.0, 0.0), a.Clamp(lo, hi))

	require.Equal(t, -2.0, a.MinComponent())
	require.Equal(t, 5.0, a.MaxComponent())

	inv := linalg.V3(2.0, 4.0, 0.5).CwiseInverse()
	require.True(t, inv.IsApprox(linalg.V3(0.5, 0.25, 2.0), 1e-12))
}

func TestVec3IsApproxBoundary(t *testing.T) {
	a := linalg.V3(0.0, 0.0, 0.0)
	b := linalg.V3(1e-6, 0.0, 0.0)

	// Difference exactly at epsilon counts as approximately equal.
	require.True(t, a.IsApprox(b, 1e-6))
	require.False(t, a.IsApprox(linalg.V3(2e-6, 0.0, 0.0), 1e-6))
}

func TestVec3Bounds(t *testing.T) {
	lo := linalg.Vec3MinBounds[float64]()
	hi := linalg.Vec3MaxBounds[float64]()
	require.Equal(t, -math.MaxFloat64, lo.X)
	require.Equal(t, math.MaxFloat64, hi.Z)

	lo32 := linalg.Vec3MinBounds[float32]()
	hi32 := linalg.Vec3MaxBounds[float32]()
	require.Equal(t, float32(-math.MaxFloat32), lo32.Y)
	require.Equal(t, float32(math.MaxFloat32), hi32.X)

	// The float32 bounds must stay finite, not overflow to infinity.
	require.False(t, math.IsInf(float64(lo32.X), -1))
	require.False(t, math.IsInf(float64(hi32.Z), 1))
}

func TestVec3Convert(t *testing.T) {
	f := linalg.V3[float32](1.5, 2.5, 3.5)
	d := linalg.ConvertVec3[float64](f)
	require.Equal(t, linalg.V3(1.5, 2.5, 3.5), d)
}

func TestVec3String(t *testing.T) {
	require.Equal(t, "Vec3(1, 2.5, -3)", linalg.V3(1.0, 2.5, -3.0).String())
}
