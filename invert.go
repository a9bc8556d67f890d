package lut3d

import (
	"github.com/chewxy/math32"

	"github.com/colorcore/lut3d/mem"
)

const jacobianEpsilon = 0.001
const inversionMaxIterations = 30

// incDelta nudges a coordinate for Jacobian estimation, reflecting off the
// [0,1] boundary instead of stepping outside it.
func incDelta(v float32) float32 {
	if v < 1.0-jacobianEpsilon {
		return v + jacobianEpsilon
	}
	return v - jacobianEpsilon
}

func euclideanDistance3(a, b [3]float32) float32 {
	var sum float32
	for i := 0; i < 3; i++ {
		d := b[i] - a[i]
		sum += d * d
	}
	return math32.Sqrt(sum)
}

// solve3x3 solves Ax = b for a 3x3 system by direct Cramer's-rule inversion.
func solve3x3(a [3][3]float32, b [3]float32) (x [3]float32, ok bool) {
	c0 := a[1][1]*a[2][2] - a[1][2]*a[2][1]
	c1 := -a[1][0]*a[2][2] + a[1][2]*a[2][0]
	c2 := a[1][0]*a[2][1] - a[1][1]*a[2][0]

	det := a[0][0]*c0 + a[0][1]*c1 + a[0][2]*c2
	if math32.Abs(det) < 1e-6 {
		return x, false
	}

	inv := [3][3]float32{}
	inv[0][0] = c0 / det
	inv[0][1] = (a[0][2]*a[2][1] - a[0][1]*a[2][2]) / det
	inv[0][2] = (a[0][1]*a[1][2] - a[0][2]*a[1][1]) / det
	inv[1][0] = c1 / det
	inv[1][1] = (a[0][0]*a[2][2] - a[0][2]*a[2][0]) / det
	inv[1][2] = (a[0][2]*a[1][0] - a[0][0]*a[1][2]) / det
	inv[2][0] = c2 / det
	inv[2][1] = (a[0][1]*a[2][0] - a[0][0]*a[2][1]) / det
	inv[2][2] = (a[0][0]*a[1][1] - a[0][1]*a[1][0]) / det

	for i := 0; i < 3; i++ {
		x[i] = inv[i][0]*b[0] + inv[i][1]*b[1] + inv[i][2]*b[2]
	}
	return x, true
}

// evalInverseExact finds x in [0,1]^3 such that evalForward(g, style, x)
// approximates target, via Newton's method over g's own forward samples,
// specialized to the fixed 3-in/3-out case.
func evalInverseExact(g *Grid, style Interpolation, target [3]float32, hint *[3]float32) [3]float32 {
	var result [3]float32

	mem.WithScratch(func(s *mem.Scratch) {
		x := &s.Guess
		*x = [3]float32{0.3, 0.3, 0.3}
		if hint != nil {
			*x = *hint
		}

		result = *x
		lastError := float32(3.0e38)

		for iter := 0; iter < inversionMaxIterations; iter++ {
			fx := evalForward(g, style, *x)
			errNow := euclideanDistance3(fx, target)

			if errNow >= lastError {
				break
			}
			lastError = errNow
			result = *x
			if errNow <= 0 {
				break
			}

			jacobian := &s.Jacob
			for j := 0; j < 3; j++ {
				xd := *x
				xd[j] = incDelta(xd[j])
				fxd := evalForward(g, style, xd)
				for row := 0; row < 3; row++ {
					jacobian[row][j] = (fxd[row] - fx[row]) / jacobianEpsilon
				}
			}

			s.Delta = [3]float32{fx[0] - target[0], fx[1] - target[1], fx[2] - target[2]}
			step, ok := solve3x3(*jacobian, s.Delta)
			if !ok {
				break
			}

			for j := 0; j < 3; j++ {
				x[j] -= step[j]
				if x[j] < 0 {
					x[j] = 0
				} else if x[j] > 1.0 {
					x[j] = 1.0
				}
			}
		}
	})

	return result
}
