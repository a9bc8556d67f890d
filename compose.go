package lut3d

import "fmt"

// stage is one step of the compositor's internal evaluation pipeline: a
// function from a 3-vector to a 3-vector.
type stage func(in [3]float32) [3]float32

func scaleStage(k float32) stage {
	return func(in [3]float32) [3]float32 {
		return [3]float32{in[0] * k, in[1] * k, in[2] * k}
	}
}

// forwardLutStage evaluates l's grid via its concrete interpolation kernel
// and normalizes the result by 1/M(l.bd_out) so the next stage always
// receives a [0,1]-normalized triple, regardless of l's own bit-depth tags.
func forwardLutStage(l *LUT3D) stage {
	inv := 1.0 / l.bdOut.MaxValue()
	return func(in [3]float32) [3]float32 {
		out := evalForward(l.array, l.interp, in)
		return [3]float32{out[0] * inv, out[1] * inv, out[2] * inv}
	}
}

// inverseLutStage evaluates l (Direction == Inverse) via Newton's method
// over its own stored forward samples. l's array still holds the original
// forward function's raw samples (scaled to l.bd_in, since inverse() swaps
// tags without rescaling), so the incoming [0,1]-normalized value is scaled
// up to that space before the search; the search's own result is already a
// [0,1] grid-index coordinate and needs no further normalization.
func inverseLutStage(l *LUT3D) stage {
	scale := l.bdIn.MaxValue()
	return func(in [3]float32) [3]float32 {
		target := [3]float32{in[0] * scale, in[1] * scale, in[2] * scale}
		return evalInverseExact(l.array, l.interp, target, nil)
	}
}

func runPipeline(stages []stage, in [3]float32) [3]float32 {
	v := in
	for _, s := range stages {
		v = s(v)
	}
	return v
}

// Compose replaces A with the composition "first A then B": A becomes a
// new LUT3D whose evaluation over its own domain is equivalent to
// evaluating A followed by B. B is read-only and is cloned into the op
// pipeline so the caller's B is unaffected.
//
// Precondition: A.bd_out == B.bd_in.
func Compose(a, b *LUT3D) error {
	if a.bdOut != b.bdIn {
		return fmt.Errorf("%w: A.bd_out=%s B.bd_in=%s", ErrBitDepthMismatch, a.bdOut, b.bdIn)
	}

	n, m := a.array.Length(), b.array.Length()
	reuseA := n >= m

	var domain *Grid
	var pipeline []stage

	if reuseA {
		// Reuse A's own grid as the sampling domain; don't interpolate
		// through A. Normalize A's stored values into [0,1] for B's
		// sampler with a scale-by-1/M(A.bd_out) stage.
		domain = a.array
		pipeline = append(pipeline, scaleStage(1.0/a.bdOut.MaxValue()))
		activeLogger.Printf("compose: reusing A's grid as domain (L=%d) over B's grid (L=%d)", n, m)
	} else {
		// Build a fresh identity domain at B's finer edge length and route
		// samples through A to resample it onto that denser grid.
		d, err := NewGrid(m, F32)
		if err != nil {
			return err
		}
		domain = d
		pipeline = append(pipeline, forwardLutStage(a))
		activeLogger.Printf("compose: building fresh identity domain at B's edge length (L=%d) over A's grid (L=%d)", m, n)
	}

	bClone := b.Clone()
	if bClone.dir == Forward {
		pipeline = append(pipeline, forwardLutStage(bClone))
	} else {
		pipeline = append(pipeline, inverseLutStage(bClone))
	}
	pipeline = append(pipeline, scaleStage(b.bdOut.MaxValue()))

	l := domain.Length()
	result, err := NewGrid(l, F32)
	if err != nil {
		return err
	}

	for i := 0; i < l; i++ {
		for j := 0; j < l; j++ {
			for k := 0; k < l; k++ {
				sample := domain.Get(i, j, k)
				out := runPipeline(pipeline, sample)
				result.Set(i, j, k, out)
			}
		}
	}

	a.array = result
	a.bdOut = b.bdOut
	a.dir = Forward
	a.metadata = MergeMetadata(a.metadata, b.metadata)
	a.cacheID = ""
	return nil
}
