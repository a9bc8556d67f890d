package lut3d

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"sync"
	"unsafe"
)

// LUT3D wraps a Grid with tagged input/output bit-depths, an interpolation
// selector, a direction, an inversion-quality hint and format metadata.
type LUT3D struct {
	array      *Grid
	bdIn       BitDepth
	bdOut      BitDepth
	interp     Interpolation
	dir        Direction
	invQuality InversionQuality
	metadata   Metadata
	cacheID    string

	mu sync.Mutex
}

// New builds a LUT3D with bd_in = bd_out = F32, Default interpolation,
// Forward direction, Fast inversion quality, identity-filled at edge length
// l.
func New(l int) (*LUT3D, error) {
	return NewFull(F32, F32, Metadata{}, InterpDefault, l)
}

// NewFull builds a LUT3D with the supplied tags, identity-filled at bdOut.
func NewFull(bdIn, bdOut BitDepth, md Metadata, interp Interpolation, l int) (*LUT3D, error) {
	g, err := NewGrid(l, bdOut)
	if err != nil {
		return nil, err
	}
	return &LUT3D{
		array:      g,
		bdIn:       bdIn,
		bdOut:      bdOut,
		interp:     interp,
		dir:        Forward,
		invQuality: QualityFast,
		metadata:   md,
	}, nil
}

func (l *LUT3D) Length() int                  { return l.array.Length() }
func (l *LUT3D) BitDepthIn() BitDepth          { return l.bdIn }
func (l *LUT3D) BitDepthOut() BitDepth         { return l.bdOut }
func (l *LUT3D) Interpolation() Interpolation  { return l.interp }
func (l *LUT3D) ConcreteInterpolation() Interpolation {
	return l.interp.Concrete()
}
func (l *LUT3D) InversionQuality() InversionQuality { return l.invQuality }
func (l *LUT3D) ConcreteInversionQuality() InversionQuality {
	return l.invQuality.Concrete()
}
func (l *LUT3D) Direction() Direction { return l.dir }
func (l *LUT3D) Metadata() Metadata   { return l.metadata }
func (l *LUT3D) Array() *Grid         { return l.array }
func (l *LUT3D) CacheID() string      { return l.cacheID }

func (l *LUT3D) SetInterpolation(i Interpolation)         { l.interp = i }
func (l *LUT3D) SetInversionQuality(q InversionQuality)   { l.invQuality = q }

// SetInputBitDepth sets bd_in. On an Inverse-direction LUT the stored array
// is rescaled by M(d)/M(bd_in) first, because the array represents the
// original forward function's output space and that's what bd_in now tags.
func (l *LUT3D) SetInputBitDepth(d BitDepth) {
	if l.dir == Inverse {
		l.array.ScaleByDepthRatio(d.MaxValue(), l.bdIn.MaxValue())
	}
	l.bdIn = d
}

// SetOutputBitDepth sets bd_out. On a Forward-direction LUT the stored array
// is rescaled by M(d)/M(bd_out) first.
func (l *LUT3D) SetOutputBitDepth(d BitDepth) {
	if l.dir == Forward {
		l.array.ScaleByDepthRatio(d.MaxValue(), l.bdOut.MaxValue())
	}
	l.bdOut = d
}

// Validate fails if the interpolation isn't one LUT3D accepts, if channel
// count isn't 3, or if the grid edge length exceeds MaxSupportedLength.
func (l *LUT3D) Validate() error {
	if !validInterpolation(l.interp) {
		return fmt.Errorf("%w: %s", ErrBadInterpolation, l.interp)
	}
	if Channels != 3 {
		return fmt.Errorf("%w: channels must be 3", ErrBadChannelCount)
	}
	if l.array.Length() > MaxSupportedLength {
		return fmt.Errorf("%w: edge length %d must not be greater than %d", ErrBadGridSize, l.array.Length(), MaxSupportedLength)
	}
	return nil
}

// IsNoOp always reports false: a 3D LUT clamps to its domain, so it is
// never a pass-through operator regardless of content.
func (l *LUT3D) IsNoOp() bool { return false }

// HasChannelCrosstalk always reports true for a LUT3D.
func (l *LUT3D) HasChannelCrosstalk() bool { return true }

// IsIdentity delegates to the array, using tuning[0]'s IdentityTolerance if
// supplied, else the spec default (1e-4).
func (l *LUT3D) IsIdentity(tuning ...Tuning) bool {
	t := DefaultTuning()
	if len(tuning) > 0 {
		t = tuning[0].orDefault()
	}
	return l.array.IsIdentity(l.bdOut, t.IdentityTolerance)
}

// Clone returns a deep copy including metadata and cache ID.
func (l *LUT3D) Clone() *LUT3D {
	return &LUT3D{
		array:      l.array.Clone(),
		bdIn:       l.bdIn,
		bdOut:      l.bdOut,
		interp:     l.interp,
		dir:        l.dir,
		invQuality: l.invQuality,
		metadata:   l.metadata.Clone(),
		cacheID:    l.cacheID,
	}
}

// Inverse returns a clone with direction flipped and bit-depths swapped.
// The array is not rescaled — it still represents the original forward
// function's samples, per the glossary's Forward/Inverse definition.
func (l *LUT3D) Inverse() *LUT3D {
	c := l.Clone()
	if c.dir == Forward {
		c.dir = Inverse
	} else {
		c.dir = Forward
	}
	c.bdIn, c.bdOut = c.bdOut, c.bdIn
	c.cacheID = ""
	return c
}

// Equal reports structural equality: direction, interpolation, bit-depths
// and array contents must all match. Inversion quality and metadata are
// deliberately excluded.
func (l *LUT3D) Equal(o *LUT3D) bool {
	if o == nil {
		return false
	}
	return l.dir == o.dir &&
		l.interp == o.interp &&
		l.bdIn == o.bdIn &&
		l.bdOut == o.bdOut &&
		l.array.Equal(o.array)
}

// IsInverse reports whether one operand is the other's inverse: requires one
// Forward and one Inverse operand, harmonizes bit-depths, then compares
// arrays exactly (no tolerance) — tight by design.
func (l *LUT3D) IsInverse(o *LUT3D) bool {
	var fwd, inv *LUT3D
	switch {
	case l.dir == Forward && o.dir == Inverse:
		fwd, inv = l, o
	case l.dir == Inverse && o.dir == Forward:
		fwd, inv = o, l
	default:
		return false
	}

	if fwd.bdOut.MaxValue() == inv.bdIn.MaxValue() {
		return fwd.array.Equal(inv.array)
	}

	if len(fwd.array.Raw()) != len(inv.array.Raw()) {
		return false
	}

	harmonized := fwd.Clone()
	harmonized.SetOutputBitDepth(inv.bdIn)
	return harmonized.array.Equal(inv.array)
}

// Finalize validates, computes an MD5 over the raw array bytes, and builds
// the cache ID string. Guarded by an internal mutex so concurrent
// finalizers converge on one cache ID.
func (l *LUT3D) Finalize() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.Validate(); err != nil {
		return err
	}

	raw := l.array.Raw()
	bytes := unsafe.Slice((*byte)(unsafe.Pointer(&raw[0])), len(raw)*4)
	sum := md5.Sum(bytes)

	l.cacheID = fmt.Sprintf("%s %s %s %s %s",
		hex.EncodeToString(sum[:]), l.interp, l.dir, l.bdIn, l.bdOut)
	return nil
}

// SetArrayFromRedFastest repacks v (red-fastest order) into the array's
// native blue-fastest order. Fails, without mutating the array, if
// len(v) != 3*L^3.
func (l *LUT3D) SetArrayFromRedFastest(v []float32) error {
	return l.array.SetFromRedFastest(v)
}

// RangeReplacement is the conceptual range-clip an identity LUT3D can be
// replaced with: clip [0, M(bd_in)] -> [0, M(bd_out)]. A caller doing
// pipeline optimization can hand this to its own range-clip operator in
// place of evaluating the identity LUT3D.
type RangeReplacement struct {
	MinIn, MaxIn   float32
	MinOut, MaxOut float32
}

// IdentityReplacement returns the range-clip replacement for this LUT3D,
// for use when pipeline optimization detects it is an identity.
func (l *LUT3D) IdentityReplacement() RangeReplacement {
	return RangeReplacement{
		MinIn:  0,
		MaxIn:  l.bdIn.MaxValue(),
		MinOut: 0,
		MaxOut: l.bdOut.MaxValue(),
	}
}
