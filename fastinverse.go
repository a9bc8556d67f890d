package lut3d

import "fmt"

// MakeFastLut3DFromInverse takes an Inverse-direction LUT3D and produces an
// equivalent Forward LUT3D on a fixed, denser grid by composing a forward
// identity domain with the inverse under a forced-Exact inversion style.
func MakeFastLut3DFromInverse(lInv *LUT3D, tuning ...Tuning) (*LUT3D, error) {
	if lInv.Direction() != Inverse {
		return nil, fmt.Errorf("%w: MakeFastLut3DFromInverse requires an Inverse-direction LUT3D", ErrWrongDirection)
	}

	t := DefaultTuning()
	if len(tuning) > 0 {
		t = tuning[0].orDefault()
	}

	// Force Exact inversion quality for the duration of this build and
	// restore the original on every exit path. This avoids recursing into
	// the fast path while building the fast path.
	saved := lInv.invQuality
	lInv.invQuality = QualityExact
	defer func() { lInv.invQuality = saved }()

	// The domain keeps the default interpolation regardless of the LUT
	// being inverted; only its bit depths are set from lInv.
	domain, err := NewFull(lInv.bdIn, lInv.bdIn, Metadata{}, InterpDefault, t.FastInverseGridSize)
	if err != nil {
		return nil, err
	}

	if err := Compose(domain, lInv); err != nil {
		return nil, err
	}

	return domain, nil
}
