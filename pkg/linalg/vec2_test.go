package linalg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taigrr/linalg/pkg/linalg"
)

func TestVec2Arithmetic(t *testing.T) {
	a := linalg.V2(1.0, 2.0)
	b := linalg.V2(3.0, 4.0)

	require.Equal(t, linalg.V2(4.0, 6.0), a.Add(b))
	require.Equal(t, linalg.V2(-2.0, -2.0), a.Sub(b))
	require.Equal(t, linalg.V2(3.0, 8.0), a.Mul(b))
	require.Equal(t, linalg.V2(2.0, 4.0), a.Scale(2))
	require.Equal(t, linalg.V2(-1.0, -2.0), a.Negate())
	require.InDelta(t, 11.0, a.Dot(b), 1e-12)
}

func TestVec2Length(t *testing.T) {
	v := linalg.V2(3.0, 4.0)
	require.InDelta(t, 5.0, v.Len(), 1e-12)
	require.True(t, v.Normalize().IsApprox(linalg.V2(0.6, 0.8), 1e-12))
	require.Equal(t, linalg.Vec2[float64]{}, linalg.Vec2[float64]{}.Normalize())
}

func TestVec2CwiseOps(t *testing.T) {
	a := linalg.V2(1.0, 5.0)
	b := linalg.V2(3.0, 2.0)

	require.Equal(t, linalg.V2(1.0, 2.0), a.Min(b))
	require.Equal(t, linalg.V2(3.0, 5.0), a.Max(b))
	require.Equal(t, linalg.V2(3.0, 10.0), a.Mul(b))
	require.Equal(t, 1.0, a.MinComponent())
	require.Equal(t, 5.0, a.MaxComponent())
}

func TestVec2Indexing(t *testing.T) {
	v := linalg.V2(1.0, 2.0)
	require.Equal(t, 1.0, v.At(0))
	require.Equal(t, 2.0, v.At(1))

	v.SetAt(0, 9)
	require.Equal(t, linalg.V2(9.0, 2.0), v)

	require.Panics(t, func() { v.At(2) })
	require.Panics(t, func() { v.SetAt(-1, 0) })
}

func TestVec2Convert(t *testing.T) {
	f := linalg.V2[float32](1.5, -2.5)
	require.Equal(t, linalg.V2(1.5, -2.5), linalg.ConvertVec2[float64](f))
}
