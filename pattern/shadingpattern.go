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

package pattern

import (
	"seehuhn.de/go/pdfcolor/color"
	"seehuhn.de/go/pdfcolor/internal/calcerr"
	"seehuhn.de/go/pdfcolor/shading"
)

// Shading is a PDF shading pattern (8.7.3.3, PatternType 2): a shading
// painted directly, instead of a repeated tile. SingleUse hints that the
// built sampler need not be cached across uses.
type Shading struct {
	ShadingDict shading.Shading
	Matrix      []float64
	SingleUse   bool
}

func (p *Shading) PatternType() int { return 2 }

func (p *Shading) build(intent color.RenderingIntent) (*Sampler, error) {
	if p.ShadingDict == nil {
		return nil, calcerr.NewConstructionError("Shading pattern", "ShadingDict must not be nil")
	}
	art, err := shading.Build(p.ShadingDict, intent)
	if err != nil {
		return nil, err
	}
	return &Sampler{Shaded: art}, nil
}
