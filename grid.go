package lut3d

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Channels is the fixed channel count a LUT3D grid stores: RGB, always 3.
const Channels = 3

// Grid is a dense, row-major 3D sample array: L³ RGB triples, channel axis
// fastest, then k, then j, then i — "blue changes fastest among samples".
type Grid struct {
	l    int
	data []float32
}

// NewGrid allocates an identity-filled grid of edge length l for the given
// output bit depth. l must be in [2, MaxSupportedLength].
func NewGrid(l int, bdOut BitDepth) (*Grid, error) {
	g := &Grid{}
	if err := g.Resize(l); err != nil {
		return nil, err
	}
	g.FillIdentity(bdOut)
	return g, nil
}

// Length returns the edge length L.
func (g *Grid) Length() int { return g.l }

// Resize sets the edge length to l, reallocating storage. It fails before
// touching storage if l is out of range, so a failed Resize leaves g
// unchanged.
func (g *Grid) Resize(l int) error {
	if l > MaxSupportedLength {
		return fmt.Errorf("%w: edge length %d must not be greater than %d", ErrBadGridSize, l, MaxSupportedLength)
	}
	if l < 2 {
		return fmt.Errorf("%w: got %d, must be at least 2", ErrBadGridSize, l)
	}
	g.l = l
	g.data = make([]float32, Channels*l*l*l)
	return nil
}

// index returns the flat offset of channel c of node (i,j,k).
func (g *Grid) index(i, j, k, c int) int {
	return Channels*(i*g.l*g.l+j*g.l+k) + c
}

// Get returns the RGB triple at node (i,j,k).
func (g *Grid) Get(i, j, k int) [3]float32 {
	off := g.index(i, j, k, 0)
	return [3]float32{g.data[off], g.data[off+1], g.data[off+2]}
}

// Set writes the RGB triple at node (i,j,k).
func (g *Grid) Set(i, j, k int, rgb [3]float32) {
	off := g.index(i, j, k, 0)
	g.data[off], g.data[off+1], g.data[off+2] = rgb[0], rgb[1], rgb[2]
}

// Raw exposes the underlying contiguous buffer (length 3*L^3), for finalize's
// MD5 hash and for feeding/draining the compositor's op pipeline.
func (g *Grid) Raw() []float32 { return g.data }

// FillIdentity writes sample = (i*s, j*s, k*s) at every node (i,j,k), with
// s = M(bdOut)/(L-1). Node coordinates are derived from the flat index via
// idx/L/L%L, idx/L%L, idx%L rather than nested loops.
func (g *Grid) FillIdentity(bdOut BitDepth) {
	l := g.l
	s := bdOut.MaxValue() / float32(l-1)
	n := l * l * l
	for idx := 0; idx < n; idx++ {
		i := idx / l / l
		j := (idx / l) % l
		k := idx % l
		off := Channels * idx
		g.data[off+0] = float32(i) * s
		g.data[off+1] = float32(j) * s
		g.data[off+2] = float32(k) * s
	}
}

// IsIdentity reports whether every node matches FillIdentity(bdOut) within
// tol absolute.
func (g *Grid) IsIdentity(bdOut BitDepth, tol float32) bool {
	l := g.l
	s := bdOut.MaxValue() / float32(l-1)
	n := l * l * l
	for idx := 0; idx < n; idx++ {
		i := idx / l / l
		j := (idx / l) % l
		k := idx % l
		off := Channels * idx
		want := [3]float32{float32(i) * s, float32(j) * s, float32(k) * s}
		for c := 0; c < 3; c++ {
			if math32.Abs(g.data[off+c]-want[c]) > tol {
				return false
			}
		}
	}
	return true
}

// Scale multiplies every stored float by k. A no-op when k == 1.0 exactly,
// matching Lut3DArray::scale's `if (scaleFactor != 1.0f)` guard.
func (g *Grid) Scale(k float32) {
	if k == 1.0 {
		return
	}
	for idx := range g.data {
		g.data[idx] *= k
	}
}

// ScaleByDepthRatio multiplies every stored value by newMax/oldMax, carrying
// the division and multiplication in float64 before rounding back to
// float32. Bit-depth rescale is expected to exactly round-trip (e.g. U10 ->
// U12 -> U10 must reproduce the original array); doing the arithmetic in
// float32 throughout compounds two roundings large enough to occasionally
// flip the last bit, while the float64 intermediate's own error is far
// below float32's rounding threshold and vanishes on the cast back.
func (g *Grid) ScaleByDepthRatio(newMax, oldMax float32) {
	if newMax == oldMax {
		return
	}
	factor := float64(newMax) / float64(oldMax)
	for idx := range g.data {
		g.data[idx] = float32(float64(g.data[idx]) * factor)
	}
}

// Equal is exact, pointwise floating-point comparison — no tolerance. Used
// by LUT3D equality and by IsInverse's post-harmonization comparison, both
// of which are deliberately kept tight rather than tolerance-based.
func (g *Grid) Equal(o *Grid) bool {
	if g.l != o.l || len(g.data) != len(o.data) {
		return false
	}
	for idx := range g.data {
		if g.data[idx] != o.data[idx] {
			return false
		}
	}
	return true
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	c := &Grid{l: g.l, data: make([]float32, len(g.data))}
	copy(c.data, g.data)
	return c
}

// SetFromRedFastest repacks v — stored "red fastest among samples", the
// common file-format order — into this grid's native "blue fastest" order.
// v must have length 3*L^3. This is a full triple nested-loop remap (R, G, B
// axes), not a stride trick.
func (g *Grid) SetFromRedFastest(v []float32) error {
	l := g.l
	want := Channels * l * l * l
	if len(v) != want {
		return fmt.Errorf("%w: got %d, want %d", ErrLengthMismatch, len(v), want)
	}
	for r := 0; r < l; r++ {
		for gIdx := 0; gIdx < l; gIdx++ {
			for b := 0; b < l; b++ {
				// Red-fastest source order: index varies b slowest, g, then r fastest.
				srcOff := Channels * (b*l*l + gIdx*l + r)
				g.Set(r, gIdx, b, [3]float32{v[srcOff+0], v[srcOff+1], v[srcOff+2]})
			}
		}
	}
	return nil
}
