package lut3d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrilinearEvalMatchesNodesExactly(t *testing.T) {
	g, err := NewGrid(5, F32)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			for k := 0; k < 5; k++ {
				pt := [3]float32{float32(i) / 4, float32(j) / 4, float32(k) / 4}
				got := trilinearEval(g, pt)
				want := g.Get(i, j, k)
				assert.InDelta(t, want[0], got[0], 1e-6)
				assert.InDelta(t, want[1], got[1], 1e-6)
				assert.InDelta(t, want[2], got[2], 1e-6)
			}
		}
	}
}

func TestTetrahedralEvalMatchesNodesExactly(t *testing.T) {
	g, err := NewGrid(5, F32)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			for k := 0; k < 5; k++ {
				pt := [3]float32{float32(i) / 4, float32(j) / 4, float32(k) / 4}
				got := tetrahedralEval(g, pt)
				want := g.Get(i, j, k)
				assert.InDelta(t, want[0], got[0], 1e-6)
				assert.InDelta(t, want[1], got[1], 1e-6)
				assert.InDelta(t, want[2], got[2], 1e-6)
			}
		}
	}
}

func TestTrilinearEvalInterpolatesMidpoint(t *testing.T) {
	g, err := NewGrid(2, F32)
	require.NoError(t, err)
	// identity grid at F32: node (0,0,0)=(0,0,0), node (1,1,1)=(1,1,1).
	got := trilinearEval(g, [3]float32{0.5, 0.5, 0.5})
	assert.InDelta(t, 0.5, got[0], 1e-6)
	assert.InDelta(t, 0.5, got[1], 1e-6)
	assert.InDelta(t, 0.5, got[2], 1e-6)
}

func TestEvalForwardDispatchesOnConcreteStyle(t *testing.T) {
	g, err := NewGrid(4, F32)
	require.NoError(t, err)
	pt := [3]float32{0.4, 0.6, 0.2}
	lin := evalForward(g, InterpLinear, pt)
	tet := evalForward(g, InterpTetrahedral, pt)
	best := evalForward(g, InterpBest, pt)
	assert.Equal(t, tet, best)
	_ = lin
}
