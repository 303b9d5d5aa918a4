// seehuhn.de/go/pdfcolor - color and function evaluation core for a PDF renderer
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package transform

import (
	"math"

	"seehuhn.de/go/pdfcolor/vecmath"
)

// CurveKind identifies which of the ICC tone-reproduction-curve families a
// Curve represents.
type CurveKind int

const (
	CurveIdentity CurveKind = iota
	CurveGamma
	CurveSampled
	CurveParametric
)

// Curve is a single-channel tone reproduction curve, evaluated on [0,1].
type Curve struct {
	Kind CurveKind

	// Gamma is used when Kind == CurveGamma: y = x^Gamma.
	Gamma float64

	// Samples is used when Kind == CurveSampled: a monotonic lookup table
	// with values in [0,1], evenly spaced across the input domain [0,1].
	// len(Samples) == 1 means the single value is a gamma exponent,
	// y = x^Samples[0] (the ICC "curveType with one entry" convention).
	Samples []float64

	// ParamType selects which of the five ICC "parametricCurveType"
	// function families Params encodes (0-4, per ICC.1:2022 10.18).
	ParamType int
	Params    [7]float64
}

// Eval evaluates the curve at x (expected to already be clipped to [0,1]
// by the caller).
func (c Curve) Eval(x float64) float64 {
	switch c.Kind {
	case CurveIdentity:
		return x
	case CurveGamma:
		return math.Pow(x, c.Gamma)
	case CurveSampled:
		return evalSampledCurve(c.Samples, x)
	case CurveParametric:
		return evalParametricCurve(c.ParamType, c.Params, x)
	default:
		return x
	}
}

func evalSampledCurve(samples []float64, x float64) float64 {
	n := len(samples)
	switch n {
	case 0:
		return x
	case 1:
		return math.Pow(x, samples[0])
	}
	pos := x * float64(n-1)
	i0 := int(math.Floor(pos))
	if i0 < 0 {
		i0 = 0
	}
	if i0 >= n-1 {
		return samples[n-1]
	}
	frac := pos - float64(i0)
	return samples[i0]*(1-frac) + samples[i0+1]*frac
}

// evalParametricCurve implements the five ICC parametricCurveType
// functions (ICC.1:2022 10.18), each of which reduces to the previous one
// when its trailing parameters are zero.
//
//	type 0: Y = X^g
//	type 1: Y = (a*X+b)^g        if X >= -b/a;  Y = 0 otherwise
//	type 2: Y = (a*X+b)^g + c    if X >= -b/a;  Y = c otherwise
//	type 3: Y = (a*X+b)^g        if X >= d;     Y = c*X otherwise
//	type 4: Y = (a*X+b)^g + e    if X >= d;     Y = c*X + f otherwise
func evalParametricCurve(ptype int, p [7]float64, x float64) float64 {
	g, a, b, c, d, e, f := p[0], p[1], p[2], p[3], p[4], p[5], p[6]
	switch ptype {
	case 0:
		return math.Pow(x, g)
	case 1:
		if a == 0 || x >= -b/a {
			return math.Pow(a*x+b, g)
		}
		return 0
	case 2:
		if a == 0 || x >= -b/a {
			return math.Pow(a*x+b, g) + c
		}
		return c
	case 3:
		if x >= d {
			return math.Pow(a*x+b, g)
		}
		return c * x
	case 4:
		if x >= d {
			return math.Pow(a*x+b, g) + e
		}
		return c*x + f
	default:
		return x
	}
}

// Curves is a Transform applying an independent per-channel Curve to each
// active lane. A lane with no entry in Channels is left untouched.
type Curves struct {
	Channels []Curve
}

func (c Curves) IsIdentity() bool {
	for _, ch := range c.Channels {
		if ch.Kind != CurveIdentity {
			return false
		}
	}
	return true
}

func (c Curves) Apply(v vecmath.Vec4) vecmath.Vec4 {
	out := v
	for i, ch := range c.Channels {
		if i > 3 {
			break
		}
		out = out.WithLane(i, ch.Eval(v.Lane(i)))
	}
	return out
}
