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

// Type2 is a PDF axial shading (8.7.4.5.3): a linear gradient between P0
// and P1.
type Type2 struct {
	ColorSpace  color.Space
	P0, P1      vec.Vec2
	F           function.Function
	TMin, TMax  float64
	ExtendStart bool
	ExtendEnd   bool
	Background  []float64
	BBox        *[4]float64
	AntiAlias   bool
}

func (s *Type2) ShadingType() int        { return 2 }
func (s *Type2) colorSpace() color.Space { return s.ColorSpace }

func (s *Type2) tRange() (float64, float64) {
	if s.TMax == 0 && s.TMin == 0 {
		return 0, 1
	}
	return s.TMin, s.TMax
}

func (s *Type2) Equal(other Shading) bool {
	o, ok := other.(*Type2)
	if !ok {
		return false
	}
	t0, t1 := s.tRange()
	u0, u1 := o.tRange()
	return s.ColorSpace == o.ColorSpace &&
		s.P0 == o.P0 && s.P1 == o.P1 &&
		t0 == u0 && t1 == u1 &&
		s.ExtendStart == o.ExtendStart && s.ExtendEnd == o.ExtendEnd &&
		floatsEqual(s.Background, o.Background) &&
		bboxEqual(s.BBox, o.BBox) &&
		s.AntiAlias == o.AntiAlias
}

func (s *Type2) build(intent color.RenderingIntent) (*Artifact, error) {
	if s.ColorSpace == nil {
		return blackFallback(), nil
	}
	t0, t1 := s.tRange()
	stops, err := buildStops(s.F, s.ColorSpace, intent, t0, t1, s.ExtendStart, s.ExtendEnd)
	if err != nil {
		return nil, err
	}
	return &Artifact{LinearGradient: &LinearGradient{
		P0: s.P0, P1: s.P1, Stops: stops,
		ExtendStart: s.ExtendStart, ExtendEnd: s.ExtendEnd,
	}}, nil
}

func blackFallback() *Artifact {
	return &Artifact{LinearGradient: &LinearGradient{
		Stops:       []Stop{{T: 0, Color: RGBA{A: 255}}, {T: 1, Color: RGBA{A: 255}}},
		ExtendStart: true, ExtendEnd: true,
	}}
}
