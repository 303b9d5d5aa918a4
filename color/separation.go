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
	"seehuhn.de/go/pdfcolor/function"
	"seehuhn.de/go/pdfcolor/internal/calcerr"
)

// Separation is a PDF Separation color space: one tint component per
// colorant, mapped to AltSpace through TintTransform (PDF spec 8.6.6.4).
type Separation struct {
	Names         []string
	AltSpace      Space
	TintTransform function.Function
}

func NewSeparation(names []string, altSpace Space, tint function.Function) (*Separation, error) {
	if len(names) == 0 {
		return nil, calcerr.NewConstructionError("Separation", "Names must not be empty")
	}
	if altSpace == nil || tint == nil {
		return nil, calcerr.NewConstructionError("Separation", "AltSpace and TintTransform must not be nil")
	}
	if _, n := tint.Shape(); n != altSpace.NumComponents() {
		return nil, calcerr.NewConstructionError("Separation", "TintTransform output count must match AltSpace")
	}
	return &Separation{Names: names, AltSpace: altSpace, TintTransform: tint}, nil
}

func (s *Separation) NumComponents() int { return len(s.Names) }

func (s *Separation) New(c ...float64) Color {
	comp := make([]float64, len(s.Names))
	for i := range comp {
		if i < len(c) {
			comp[i] = clamp01(c[i])
		}
	}
	return simpleColor{space: s, components: comp, srgb: func(c []float64) (float64, float64, float64) {
		_, n := s.TintTransform.Shape()
		alt := s.TintTransform.Apply(make([]float64, n), c...)
		return s.AltSpace.New(alt...).ToSRGB()
	}}
}

func (s *Separation) Default() Color { return s.New(onesOf(len(s.Names))...) }

func onesOf(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}

// DeviceN generalizes Separation to an arbitrary number of named
// colorants sharing one tint transform (PDF spec 8.6.6.5).
type DeviceN struct {
	Names         []string
	AltSpace      Space
	TintTransform function.Function
}

func NewDeviceN(names []string, altSpace Space, tint function.Function) (*DeviceN, error) {
	if len(names) == 0 {
		return nil, calcerr.NewConstructionError("DeviceN", "Names must not be empty")
	}
	if altSpace == nil || tint == nil {
		return nil, calcerr.NewConstructionError("DeviceN", "AltSpace and TintTransform must not be nil")
	}
	if m, n := tint.Shape(); m != len(names) || n != altSpace.NumComponents() {
		return nil, calcerr.NewConstructionError("DeviceN", "TintTransform shape must match Names and AltSpace")
	}
	return &DeviceN{Names: names, AltSpace: altSpace, TintTransform: tint}, nil
}

func (s *DeviceN) NumComponents() int { return len(s.Names) }

func (s *DeviceN) New(c ...float64) Color {
	comp := make([]float64, len(s.Names))
	for i := range comp {
		if i < len(c) {
			comp[i] = clamp01(c[i])
		}
	}
	return simpleColor{space: s, components: comp, srgb: func(c []float64) (float64, float64, float64) {
		_, n := s.TintTransform.Shape()
		alt := s.TintTransform.Apply(make([]float64, n), c...)
		return s.AltSpace.New(alt...).ToSRGB()
	}}
}

func (s *DeviceN) Default() Color { return s.New(onesOf(len(s.Names))...) }
