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

package shading

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfcolor/color"
	"seehuhn.de/go/pdfcolor/function"
)

// Stop is one color at one position along a [0,1]-parameterized gradient.
type Stop struct {
	T     float64
	Color RGBA
}

// LinearGradient samples a color along the segment P0-P1 (Type2, axial).
type LinearGradient struct {
	P0, P1      vec.Vec2
	Stops       []Stop
	ExtendStart bool
	ExtendEnd   bool
}

// RadialGradient interpolates between two circles (Type3, radial), with an
// optional reversed inner pass to fill the cone when R0 > 0.
type RadialGradient struct {
	Center0       vec.Vec2
	R0            float64
	Center1       vec.Vec2
	R1            float64
	Stops         []Stop
	ReversedStops []Stop // two-pass inner-disk fill, present only when R0 > 0
	ExtendStart   bool
	ExtendEnd     bool
}

// buildStops samples f's natural points (or defaults to black/white) across
// domain [t0,t1], converts each tint to sRGB via space, and prepends/appends
// a transparent stop where the matching Extend flag is false.
func buildStops(f function.Function, space color.Space, intent color.RenderingIntent, t0, t1 float64, extendStart, extendEnd bool) ([]Stop, error) {
	var stops []Stop
	if f == nil {
		stops = []Stop{
			{T: 0, Color: RGBA{A: 255}},
			{T: 1, Color: RGBA{R: 255, G: 255, B: 255, A: 255}},
		}
	} else {
		conv, err := color.Build(space)
		if err != nil {
			return nil, err
		}
		n := naturalSamples1D(f)
		out := make([]float64, 0, 8)
		stops = make([]Stop, n)
		for i := 0; i < n; i++ {
			p := float64(i) / float64(maxI(n-1, 1))
			t := lerp(t0, t1, p)
			tint := f.Apply(out, t)
			stops[i] = Stop{T: p, Color: toRGBA(conv.ToSRGB(tint, intent))}
		}
	}

	if !extendStart {
		stops = append([]Stop{{T: stops[0].T, Color: transparentRGBA}}, stops...)
	}
	if !extendEnd {
		stops = append(stops, Stop{T: stops[len(stops)-1].T, Color: transparentRGBA})
	}
	return stops, nil
}

// naturalSamples1D returns the number of natural sample points for a
// 1-input function: a Type0's own grid Size, the segment count of a Type3
// stitching function plus one, or a fixed default otherwise.
func naturalSamples1D(f function.Function) int {
	switch fn := f.(type) {
	case *function.Type0:
		if len(fn.Size) >= 1 {
			n := fn.Size[0]
			if n < 2 {
				return 2
			}
			return n
		}
	case *function.Type3:
		n := len(fn.Functions) + 1
		if n < 2 {
			return 2
		}
		return n
	}
	return defaultShadingGrid
}

func reverseStops(stops []Stop) []Stop {
	out := make([]Stop, len(stops))
	for i, s := range stops {
		out[len(stops)-1-i] = Stop{T: 1 - s.T, Color: s.Color}
	}
	return out
}

// SampleAt evaluates the gradient's stop list at parameter t in [0,1],
// clamping to the nearest endpoint stop (Clamp edge mode, per the spec).
func (l *LinearGradient) SampleAt(t float64) RGBA {
	return sampleStops(l.Stops, t)
}

func (r *RadialGradient) sampleStopsAt(t float64) RGBA {
	return sampleStops(r.Stops, t)
}

func sampleStops(stops []Stop, t float64) RGBA {
	if len(stops) == 0 {
		return transparentRGBA
	}
	if t < stops[0].T {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t > last.T {
		return last.Color
	}
	for i := 1; i < len(stops); i++ {
		if t <= stops[i].T {
			a, b := stops[i-1], stops[i]
			if b.T == a.T {
				return b.Color
			}
			p := (t - a.T) / (b.T - a.T)
			return blendRGBA(a.Color, b.Color, p)
		}
	}
	return last.Color
}

func blendRGBA(a, b RGBA, p float64) RGBA {
	return RGBA{
		R: blend8(a.R, b.R, p),
		G: blend8(a.G, b.G, p),
		B: blend8(a.B, b.B, p),
		A: blend8(a.A, b.A, p),
	}
}

func blend8(a, b uint8, p float64) uint8 {
	v := float64(a) + p*(float64(b)-float64(a))
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
