package lut3d

import "errors"

// Sentinel errors for this package's failure modes. Each is wrapped with
// fmt.Errorf("%w: ...", ...) at its call site, so callers can match with
// errors.Is against the sentinel while still getting a specific message.
var (
	ErrBadGridSize      = errors.New("lut3d: grid edge length must not be greater than MaxSupportedLength")
	ErrBadInterpolation = errors.New("lut3d: interpolation is not valid for a LUT3D")
	ErrBadChannelCount  = errors.New("lut3d: channel count mismatch, LUT3D requires 3")
	ErrBitDepthMismatch = errors.New("lut3d: bit depth mismatch between composed operators")
	ErrWrongDirection   = errors.New("lut3d: operation requires the other direction")
	ErrLengthMismatch   = errors.New("lut3d: input length does not match 3*L^3")
)
