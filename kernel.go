package lut3d

import "github.com/chewxy/math32"

// evalForward samples g at a normalized point pt in [0,1]^3 using the given
// concrete interpolation style, returning the interpolated RGB triple.
func evalForward(g *Grid, style Interpolation, pt [3]float32) [3]float32 {
	if style.Concrete() == InterpTetrahedral {
		return tetrahedralEval(g, pt)
	}
	return trilinearEval(g, pt)
}

func fclamp(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func trilinearEval(g *Grid, pt [3]float32) [3]float32 {
	l := g.l
	domain := float32(l - 1)

	px := fclamp(pt[0]) * domain
	py := fclamp(pt[1]) * domain
	pz := fclamp(pt[2]) * domain

	x0 := int(math32.Floor(px))
	fx := px - float32(x0)
	y0 := int(math32.Floor(py))
	fy := py - float32(y0)
	z0 := int(math32.Floor(pz))
	fz := pz - float32(z0)

	x1, y1, z1 := x0, y0, z0
	if x0 < l-1 {
		x1 = x0 + 1
	}
	if y0 < l-1 {
		y1 = y0 + 1
	}
	if z0 < l-1 {
		z1 = z0 + 1
	}

	lerp := func(a, lo, hi float32) float32 { return lo + (hi-lo)*a }

	var out [3]float32
	for c := 0; c < 3; c++ {
		d000 := g.Get(x0, y0, z0)[c]
		d001 := g.Get(x0, y0, z1)[c]
		d010 := g.Get(x0, y1, z0)[c]
		d011 := g.Get(x0, y1, z1)[c]
		d100 := g.Get(x1, y0, z0)[c]
		d101 := g.Get(x1, y0, z1)[c]
		d110 := g.Get(x1, y1, z0)[c]
		d111 := g.Get(x1, y1, z1)[c]

		dx00 := lerp(fx, d000, d100)
		dx01 := lerp(fx, d001, d101)
		dx10 := lerp(fx, d010, d110)
		dx11 := lerp(fx, d011, d111)

		dxy0 := lerp(fy, dx00, dx10)
		dxy1 := lerp(fy, dx01, dx11)

		out[c] = lerp(fz, dxy0, dxy1)
	}
	return out
}

// tetrahedralEval is the six-case tetrahedral kernel: the unit cube around
// (x0,y0,z0) is split into six tetrahedra by the ordering of the fractional
// parts (rx,ry,rz), and the output is an affine combination of four of the
// cube's eight corners rather than all eight.
func tetrahedralEval(g *Grid, pt [3]float32) [3]float32 {
	l := g.l
	domain := float32(l - 1)

	px := fclamp(pt[0]) * domain
	py := fclamp(pt[1]) * domain
	pz := fclamp(pt[2]) * domain

	x0 := int(px)
	rx := px - float32(x0)
	y0 := int(py)
	ry := py - float32(y0)
	z0 := int(pz)
	rz := pz - float32(z0)

	x1, y1, z1 := x0, y0, z0
	if x0 < l-1 {
		x1 = x0 + 1
	}
	if y0 < l-1 {
		y1 = y0 + 1
	}
	if z0 < l-1 {
		z1 = z0 + 1
	}

	c000 := g.Get(x0, y0, z0)
	c100 := g.Get(x1, y0, z0)
	c010 := g.Get(x0, y1, z0)
	c110 := g.Get(x1, y1, z0)
	c001 := g.Get(x0, y0, z1)
	c101 := g.Get(x1, y0, z1)
	c011 := g.Get(x0, y1, z1)
	c111 := g.Get(x1, y1, z1)

	var out [3]float32
	switch {
	case rx >= ry && ry >= rz:
		for c := 0; c < 3; c++ {
			c0 := c000[c]
			c1 := c100[c] - c0
			c2 := c110[c] - c100[c]
			c3 := c111[c] - c110[c]
			out[c] = c0 + c1*rx + c2*ry + c3*rz
		}
	case rx >= rz && rz >= ry:
		for c := 0; c < 3; c++ {
			c0 := c000[c]
			c1 := c100[c] - c0
			c2 := c111[c] - c101[c]
			c3 := c101[c] - c100[c]
			out[c] = c0 + c1*rx + c2*ry + c3*rz
		}
	case rz >= rx && rx >= ry:
		for c := 0; c < 3; c++ {
			c0 := c000[c]
			c1 := c101[c] - c001[c]
			c2 := c111[c] - c101[c]
			c3 := c001[c] - c0
			out[c] = c0 + c1*rx + c2*ry + c3*rz
		}
	case ry >= rx && rx >= rz:
		for c := 0; c < 3; c++ {
			c0 := c000[c]
			c1 := c110[c] - c010[c]
			c2 := c010[c] - c0
			c3 := c111[c] - c110[c]
			out[c] = c0 + c1*rx + c2*ry + c3*rz
		}
	case ry >= rz && rz >= rx:
		for c := 0; c < 3; c++ {
			c0 := c000[c]
			c1 := c111[c] - c011[c]
			c2 := c010[c] - c0
			c3 := c011[c] - c010[c]
			out[c] = c0 + c1*rx + c2*ry + c3*rz
		}
	default: // rz >= ry && ry >= rx
		for c := 0; c < 3; c++ {
			c0 := c000[c]
			c1 := c111[c] - c011[c]
			c2 := c011[c] - c001[c]
			c3 := c001[c] - c0
			out[c] = c0 + c1*rx + c2*ry + c3*rz
		}
	}
	return out
}
