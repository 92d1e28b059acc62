package bfloat16

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	// Every value with at most 7 mantissa bits converts exactly in both directions.
	for _, v := range []float32{0, 1, -1, 0.5, -0.5, 2, 3, -3, 0.25, 1.5, 100, -0.0078125} {
		assert.Equal(t, v, FromFloat32(v).Float32(), "value %v", v)
	}
}

func TestTruncation(t *testing.T) {
	// FromFloat32 truncates: the result is the closest BFloat16 towards zero.
	got := FromFloat32(float32(math.Pi))
	assert.Equal(t, float32(3.140625), got.Float32())

	got = FromFloat64(1.0 / 3.0)
	assert.LessOrEqual(t, got.Float32(), float32(1.0/3.0))
	assert.InDelta(t, 1.0/3.0, float64(got.Float32()), 1.0/256.0)
}

func TestBits(t *testing.T) {
	one := FromFloat32(1)
	assert.Equal(t, uint16(0x3F80), one.Bits())
	assert.Equal(t, one, FromBits(0x3F80))
	assert.Equal(t, "1", one.String())
}

func TestSpecials(t *testing.T) {
	require.True(t, NaN().IsNaN())
	require.True(t, math.IsNaN(float64(NaN().Float32())))
	assert.False(t, FromFloat32(1).IsNaN())
	assert.False(t, Inf(1).IsNaN())

	assert.True(t, Inf(1).IsInf(1))
	assert.True(t, Inf(1).IsInf(0))
	assert.False(t, Inf(1).IsInf(-1))
	assert.True(t, Inf(-1).IsInf(-1))
	assert.True(t, math.IsInf(float64(Inf(-1).Float32()), -1))

	negZero := FromFloat32(float32(math.Copysign(0, -1)))
	assert.True(t, math.Signbit(float64(negZero.Float32())))
	assert.Equal(t, uint16(0x8000), negZero.Bits())
}

func TestConstants(t *testing.T) {
	assert.Equal(t, float32(0.0078125), Epsilon.Float32())
	assert.Greater(t, SmallestNonzero.Float32(), float32(0))
	assert.Less(t, float64(SmallestNonzero.Float32()), 1e-40)
}
