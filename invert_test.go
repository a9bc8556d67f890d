package lut3d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvalInverseExactRecoversIdentity(t *testing.T) {
	// An identity grid is its own inverse: evalForward(x) == x in normalized
	// index space at F32, so Newton's method should recover the same point.
	g, err := NewGrid(9, F32)
	require.NoError(t, err)

	target := [3]float32{0.625, 0.125, 0.875}
	got := evalInverseExact(g, InterpLinear, target, nil)

	assert.InDelta(t, target[0], got[0], 1e-4)
	assert.InDelta(t, target[1], got[1], 1e-4)
	assert.InDelta(t, target[2], got[2], 1e-4)
}

func TestSolve3x3IdentityMatrix(t *testing.T) {
	a := [3][3]float32{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	b := [3]float32{2, 3, 4}
	x, ok := solve3x3(a, b)
	require.True(t, ok)
	assert.Equal(t, b, x)
}

func TestSolve3x3SingularReportsFalse(t *testing.T) {
	a := [3][3]float32{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}}
	_, ok := solve3x3(a, [3]float32{1, 2, 3})
	assert.False(t, ok)
}
