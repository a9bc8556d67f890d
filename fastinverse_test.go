package lut3d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeFastLut3DFromInverseRequiresInverseDirection(t *testing.T) {
	fwd, err := NewFull(U10, U12, Metadata{}, InterpLinear, 17)
	require.NoError(t, err)

	_, err = MakeFastLut3DFromInverse(fwd)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWrongDirection)
}

func TestScenario6FastInverseGrid(t *testing.T) {
	// A 17x17x17, U10->U12 forward LUT, inverted and fed through the
	// fast-inverse builder.
	fwd, err := NewFull(U10, U12, Metadata{}, InterpLinear, 17)
	require.NoError(t, err)
	lInv := fwd.Inverse()
	require.Equal(t, Inverse, lInv.Direction())
	require.Equal(t, U12, lInv.BitDepthIn())
	require.Equal(t, U10, lInv.BitDepthOut())

	result, err := MakeFastLut3DFromInverse(lInv)
	require.NoError(t, err)

	assert.Equal(t, Forward, result.Direction())
	assert.Equal(t, U12, result.BitDepthIn())
	assert.Equal(t, U10, result.BitDepthOut())
	assert.Equal(t, DefaultFastInverseGridSize, result.Length())
}

func TestMakeFastLut3DFromInverseRestoresInversionQualityOnExit(t *testing.T) {
	fwd, _ := NewFull(U10, U12, Metadata{}, InterpLinear, 9)
	lInv := fwd.Inverse()
	lInv.SetInversionQuality(QualityFast)

	_, err := MakeFastLut3DFromInverse(lInv)
	require.NoError(t, err)

	assert.Equal(t, QualityFast, lInv.InversionQuality(), "the scoped guard must restore the original quality on exit")
}

func TestMakeFastLut3DFromInverseHonorsTuningGridSize(t *testing.T) {
	fwd, _ := NewFull(U10, U12, Metadata{}, InterpLinear, 9)
	lInv := fwd.Inverse()

	tuning := Tuning{FastInverseGridSize: 12, IdentityTolerance: IdentityTolerance}
	result, err := MakeFastLut3DFromInverse(lInv, tuning)
	require.NoError(t, err)
	assert.Equal(t, 12, result.Length())
}
