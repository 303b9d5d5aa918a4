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

package color

import (
	"math"

	honcolor "honnef.co/go/color"

	"seehuhn.de/go/pdfcolor/internal/calcerr"
)

// whitePointChromaticity converts a PDF WhitePoint XYZ triplet (Y always
// normalized to 1, per PDF spec 8.9.5.2) to the xy chromaticity that
// honnef.co/go/color's Bradford adaptation expects.
func whitePointChromaticity(wp [3]float64) *honcolor.Chromaticity {
	sum := wp[0] + wp[1] + wp[2]
	if sum == 0 {
		return WhitePointD50
	}
	return &honcolor.Chromaticity{X: wp[0] / sum, Y: wp[1] / sum}
}

// CalGray is the PDF CalGray space: a single gamma-corrected channel on a
// custom white point.
type CalGray struct {
	WhitePoint [3]float64
	Gamma      float64
}

func NewCalGray(whitePoint [3]float64, gamma float64) (*CalGray, error) {
	if whitePoint[1] != 1 || whitePoint[0] < 0 || whitePoint[2] < 0 {
		return nil, calcerr.NewConstructionError("CalGray", "WhitePoint must have Y == 1 and non-negative X, Z")
	}
	if gamma <= 0 {
		gamma = 1
	}
	return &CalGray{WhitePoint: whitePoint, Gamma: gamma}, nil
}

func (s *CalGray) NumComponents() int { return 1 }

func (s *CalGray) New(c ...float64) Color {
	a := 0.0
	if len(c) > 0 {
		a = clamp01(c[0])
	}
	return simpleColor{space: s, components: []float64{a}, srgb: func(c []float64) (float64, float64, float64) {
		av := math.Pow(c[0], s.Gamma)
		X := s.WhitePoint[0] * av
		Y := s.WhitePoint[1] * av
		Z := s.WhitePoint[2] * av
		x, y, z := bradfordAdapt(X, Y, Z, whitePointChromaticity(s.WhitePoint), WhitePointD65)
		return xyzToSRGB(x, y, z)
	}}
}

func (s *CalGray) Default() Color { return s.New(0) }

// CalRGB is the PDF CalRGB space: three independently gamma-corrected
// channels combined through a 3x3 colorant matrix.
type CalRGB struct {
	WhitePoint [3]float64
	Gamma      [3]float64
	Matrix     [9]float64 // row-major, PDF order
}

func NewCalRGB(whitePoint [3]float64, gamma [3]float64, matrix [9]float64) (*CalRGB, error) {
	if whitePoint[1] != 1 || whitePoint[0] < 0 || whitePoint[2] < 0 {
		return nil, calcerr.NewConstructionError("CalRGB", "WhitePoint must have Y == 1 and non-negative X, Z")
	}
	for i := range gamma {
		if gamma[i] <= 0 {
			gamma[i] = 1
		}
	}
	return &CalRGB{WhitePoint: whitePoint, Gamma: gamma, Matrix: matrix}, nil
}

func (s *CalRGB) NumComponents() int { return 3 }

func (s *CalRGB) New(c ...float64) Color {
	comp := make([]float64, 3)
	for i := 0; i < 3 && i < len(c); i++ {
		comp[i] = clamp01(c[i])
	}
	return simpleColor{space: s, components: comp, srgb: func(c []float64) (float64, float64, float64) {
		A := math.Pow(c[0], s.Gamma[0])
		B := math.Pow(c[1], s.Gamma[1])
		C := math.Pow(c[2], s.Gamma[2])
		m := s.Matrix
		X := m[0]*A + m[3]*B + m[6]*C
		Y := m[1]*A + m[4]*B + m[7]*C
		Z := m[2]*A + m[5]*B + m[8]*C
		x, y, z := bradfordAdapt(X, Y, Z, whitePointChromaticity(s.WhitePoint), WhitePointD65)
		return xyzToSRGB(x, y, z)
	}}
}

func (s *CalRGB) Default() Color { return s.New(0, 0, 0) }

// Lab is the PDF Lab space: CIE L*a*b* on a custom white point, with an
// optional clipping Range for the a*/b* channels (PDF spec 8.6.5.4).
type Lab struct {
	WhitePoint [3]float64
	Range      [4]float64 // amin, amax, bmin, bmax
}

func NewLab(whitePoint [3]float64, rng [4]float64) (*Lab, error) {
	if whitePoint[1] != 1 || whitePoint[0] < 0 || whitePoint[2] < 0 {
		return nil, calcerr.NewConstructionError("Lab", "WhitePoint must have Y == 1 and non-negative X, Z")
	}
	if rng == ([4]float64{}) {
		rng = [4]float64{-100, 100, -100, 100}
	}
	return &Lab{WhitePoint: whitePoint, Range: rng}, nil
}

func (s *Lab) NumComponents() int { return 3 }

func (s *Lab) New(c ...float64) Color {
	comp := make([]float64, 3)
	if len(c) > 0 {
		comp[0] = vclamp(c[0], 0, 100)
	}
	if len(c) > 1 {
		comp[1] = vclamp(c[1], s.Range[0], s.Range[1])
	}
	if len(c) > 2 {
		comp[2] = vclamp(c[2], s.Range[2], s.Range[3])
	}
	return simpleColor{space: s, components: comp, srgb: func(c []float64) (float64, float64, float64) {
		L, a, b := c[0], c[1], c[2]
		fy := (L + 16) / 116
		fx := fy + a/500
		fz := fy - b/200
		X := s.WhitePoint[0] * labInv(fx)
		Y := s.WhitePoint[1] * labInv(fy)
		Z := s.WhitePoint[2] * labInv(fz)
		x, y, z := bradfordAdapt(X, Y, Z, whitePointChromaticity(s.WhitePoint), WhitePointD65)
		return xyzToSRGB(x, y, z)
	}}
}

func (s *Lab) Default() Color { return s.New(0, 0, 0) }

func labInv(t float64) float64 {
	const delta = 6.0 / 29.0
	if t > delta {
		return t * t * t
	}
	return 3 * delta * delta * (t - 4.0/29.0)
}

func vclamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
