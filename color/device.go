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

// DeviceGray is the 1-component PDF DeviceGray space.
type DeviceGray struct{}

func (DeviceGray) NumComponents() int { return 1 }

func (s DeviceGray) New(c ...float64) Color {
	g := 0.0
	if len(c) > 0 {
		g = clamp01(c[0])
	}
	return simpleColor{space: s, components: []float64{g}, srgb: func(c []float64) (float64, float64, float64) {
		return c[0], c[0], c[0]
	}}
}

func (s DeviceGray) Default() Color { return s.New(0) }

// DeviceRGB is the 3-component PDF DeviceRGB space, already expressed in
// sRGB's own gamut by PDF convention.
type DeviceRGB struct{}

func (DeviceRGB) NumComponents() int { return 3 }

func (s DeviceRGB) New(c ...float64) Color {
	comp := make([]float64, 3)
	for i := 0; i < 3 && i < len(c); i++ {
		comp[i] = clamp01(c[i])
	}
	return simpleColor{space: s, components: comp, srgb: func(c []float64) (float64, float64, float64) {
		return c[0], c[1], c[2]
	}}
}

func (s DeviceRGB) Default() Color { return s.New(0, 0, 0) }

// DeviceCMYK is the 4-component PDF DeviceCMYK space, converted to RGB
// using the naive subtractive formula from the PDF specification (8.6.5.3):
// this is what every PDF viewer without a device-specific profile uses,
// and is the correct un-managed fallback for a DeviceCMYK value with no
// accompanying ICC profile.
type DeviceCMYK struct{}

func (DeviceCMYK) NumComponents() int { return 4 }

func (s DeviceCMYK) New(c ...float64) Color {
	comp := make([]float64, 4)
	for i := 0; i < 4 && i < len(c); i++ {
		comp[i] = clamp01(c[i])
	}
	return simpleColor{space: s, components: comp, srgb: func(c []float64) (float64, float64, float64) {
		cC, m, y, k := c[0], c[1], c[2], c[3]
		r := 1 - minF(1, cC+k)
		g := 1 - minF(1, m+k)
		b := 1 - minF(1, y+k)
		return r, g, b
	}}
}

func (s DeviceCMYK) Default() Color { return s.New(0, 0, 0, 1) }

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
