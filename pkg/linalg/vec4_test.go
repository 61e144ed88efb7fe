package linalg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taigrr/linalg/pkg/linalg"
)

func TestVec4Arithmetic(t *testing.T) {
	a := linalg.V4(1.0, 2.0, 3.0, 4.0)
	b := linalg.V4(5.0, 6.0, 7.0, 8.0)

	require.Equal(t, linalg.V4(6.0, 8.0, 10.0, 12.0), a.Add(b))
	require.Equal(t, linalg.V4(-4.0, -4.0, -4.0, -4.0), a.Sub(b))
	require.Equal(t, linalg.V4(5.0, 12.0, 21.0, 32.0), a.Mul(b))
	require.Equal(t, linalg.V4(0.5, 1.0, 1.5, 2.0), a.Scale(0.5))
	require.InDelta(t, 70.0, a.Dot(b), 1e-12)
}

func TestVec4HomogeneousConversions(t *testing.T) {
	v3 := linalg.V3(1.0, 2.0, 3.0)
	v4 := linalg.V4FromV3(v3, 1)
	require.Equal(t, linalg.V4(1.0, 2.0, 3.0, 1.0), v4)
	require.Equal(t, v4, v3.Vec4())
	require.Equal(t, v3, v4.Vec3())

	// Perspective divide halves the components for w=2.
	p := linalg.V4(2.0, 4.0, 6.0, 2.0).PerspectiveDivide()
	require.Equal(t, linalg.V3(1.0, 2.0, 3.0), p)

	// Zero w passes components through unchanged.
	d := linalg.V4(1.0, 2.0, 3.0, 0.0).PerspectiveDivide()
	require.Equal(t, linalg.V3(1.0, 2.0, 3.0), d)
}

func TestVec4Length(t *testing.T) {
	v := linalg.V4(2.0, 0.0, 0.0, 0.0)
	require.InDelta(t, 2.0, v.Len(), 1e-12)
	require.True(t, v.Normalize().IsApprox(linalg.V4(1.0, 0.0, 0.0, 0.0), 1e-12))
	require.Equal(t, linalg.Vec4[float64]{}, linalg.Vec4[float64]{}.Normalize())
}

func TestVec4CwiseOps(t *testing.T) {
	a := linalg.V4(1.0, 5.0, -2.0, 3.0)
	b := linalg.V4(3.0, 2.0, 4.0, 7.0)

	require.Equal(t, linalg.V4(1.0, 2.0, -2.0, 3.0), a.Min(b))
	require.Equal(t, linalg.V4(3.0, 5.0, 4.0, 7.0), a.Max(b))
	require.Equal(t, linalg.V4(3.0, 10.0, -8.0, 21.0), a.Mul(b))
	require.Equal(t, -2.0, a.MinComponent())
	require.Equal(t, 7.0, b.MaxComponent())
}

func TestVec4Indexing(t *testing.T) {
	v := linalg.V4(1.0, 2.0, 3.0, 4.0)
	for i, want := range []float64{1, 2, 3, 4} {
		require.Equal(t, want, v.At(i))
	}

	v.SetAt(3, 9)
	require.Equal(t, 9.0, v.W)

	require.Panics(t, func() { v.At(4) })
	require.Panics(t, func() { v.SetAt(4, 0) })
}

func TestVec4Convert(t *testing.T) {
	d := linalg.V4(1.0, 2.0, 3.0, 4.0)
	f := linalg.ConvertVec4[float32](d)
	require.Equal(t, linalg.V4[float32](1, 2, 3, 4), f)
}
