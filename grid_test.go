package lut3d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridIdentityFillAndDetection(t *testing.T) {
	// Scenario 1: identity detection on L=2.
	g, err := NewGrid(2, U8)
	require.NoError(t, err)
	assert.True(t, g.IsIdentity(U8, IdentityTolerance))

	g.data[0] = 123.0
	assert.False(t, g.IsIdentity(U8, IdentityTolerance))
}

func TestGridResizeRejectsOversizedLength(t *testing.T) {
	g := &Grid{}
	err := g.Resize(130)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadGridSize)
	assert.Contains(t, err.Error(), "must not be greater")

	require.NoError(t, g.Resize(129))
	assert.Equal(t, 129, g.Length())
}

func TestGridScaleNoOpAtExactlyOne(t *testing.T) {
	g, err := NewGrid(3, U8)
	require.NoError(t, err)
	before := append([]float32(nil), g.data...)
	g.Scale(1.0)
	assert.Equal(t, before, g.data)

	g.Scale(2.0)
	for i, v := range before {
		assert.Equal(t, v*2.0, g.data[i])
	}
}

func TestGridEqualExact(t *testing.T) {
	a, _ := NewGrid(4, U10)
	b, _ := NewGrid(4, U10)
	assert.True(t, a.Equal(b))

	b.Set(1, 1, 1, [3]float32{0, 0, 0.0000001})
	a.Set(1, 1, 1, [3]float32{0, 0, 0})
	assert.False(t, a.Equal(b))
}

func TestGridSetFromRedFastestRoundTrips(t *testing.T) {
	g, err := NewGrid(2, F32)
	require.NoError(t, err)

	// red-fastest order: index = b*L*L + g*L + r
	l := 2
	redFastest := make([]float32, Channels*l*l*l)
	for r := 0; r < l; r++ {
		for gIdx := 0; gIdx < l; gIdx++ {
			for b := 0; b < l; b++ {
				off := Channels * (b*l*l + gIdx*l + r)
				redFastest[off+0] = float32(r)
				redFastest[off+1] = float32(gIdx)
				redFastest[off+2] = float32(b)
			}
		}
	}

	require.NoError(t, g.SetFromRedFastest(redFastest))
	for r := 0; r < l; r++ {
		for gIdx := 0; gIdx < l; gIdx++ {
			for b := 0; b < l; b++ {
				got := g.Get(r, gIdx, b)
				assert.Equal(t, [3]float32{float32(r), float32(gIdx), float32(b)}, got)
			}
		}
	}
}

func TestGridSetFromRedFastestLengthMismatch(t *testing.T) {
	g, _ := NewGrid(3, F32)
	err := g.SetFromRedFastest(make([]float32, 5))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}
