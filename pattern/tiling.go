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
	"math"

	"seehuhn.de/go/pdfcolor/internal/calcerr"
	"seehuhn.de/go/pdfcolor/shading"
)

// Tiling is a PDF tiling pattern (8.7.3.3): a repeatable cell, painted
// once and replicated across the page at (XStep, YStep) intervals.
//
// For a colored pattern (Colored true), Paint fills the cell with
// whatever colors the pattern content specifies. For an uncolored
// pattern (Colored false), Paint only supplies an alpha mask;
// Build composites the caller-supplied TintColor through it with a
// source-in blend, since uncolored cell content carries no color of its
// own (8.7.3.3, "PaintType 2").
type Tiling struct {
	TilingType int // PDF TilingType (1-3, spacing); build does not read it
	BBox       [4]float64
	XStep      float64
	YStep      float64
	Matrix     []float64 // 6 values, pattern space -> default user space
	Colored    bool
	Paint      func(cell *Cell)
	TintColor  [3]float64 // ignored for colored patterns
}

func (p *Tiling) PatternType() int { return 1 }

func (p *Tiling) build(ctm [6]float64) (*Sampler, error) {
	if p.Paint == nil {
		return nil, calcerr.NewConstructionError("Tiling", "Paint must not be nil")
	}
	w := int(math.Ceil(p.BBox[2] - p.BBox[0]))
	h := int(math.Ceil(p.BBox[3] - p.BBox[1]))
	cell := newCell(w, h)
	p.Paint(cell)

	if !p.Colored {
		r, g, b := p.TintColor[0], p.TintColor[1], p.TintColor[2]
		tint := opaqueCellColor(r, g, b)
		for i, px := range cell.Pixels {
			cell.Pixels[i] = srcIn(tint, px.A)
		}
	}

	patternMatrix := matrixOrIdentitySlice(p.Matrix)
	inv, ok := invertMatrix(ctm)
	if !ok {
		inv = [6]float64{1, 0, 0, 1, 0, 0}
	}
	anchor := multiplyMatrix(inv, patternMatrix)

	return &Sampler{Tiled: &TiledSampler{
		Cell:   cell,
		Anchor: anchor,
		Step:   [2]float64{p.XStep, p.YStep},
	}}, nil
}

func opaqueCellColor(r, g, b float64) shading.RGBA {
	to8 := func(x float64) uint8 {
		if x <= 0 {
			return 0
		}
		if x >= 1 {
			return 255
		}
		return uint8(x*255 + 0.5)
	}
	return shading.RGBA{R: to8(r), G: to8(g), B: to8(b), A: 255}
}

func srcIn(c shading.RGBA, alpha uint8) shading.RGBA {
	return shading.RGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}

func matrixOrIdentitySlice(m []float64) [6]float64 {
	if len(m) == 6 {
		return [6]float64{m[0], m[1], m[2], m[3], m[4], m[5]}
	}
	return [6]float64{1, 0, 0, 1, 0, 0}
}

// invertMatrix inverts a PDF-style affine matrix [a b c d e f] representing
// [x' y'] = [x y 1] * [[a b][c d][e f]].
func invertMatrix(m [6]float64) ([6]float64, bool) {
	a, b, c, d, e, f := m[0], m[1], m[2], m[3], m[4], m[5]
	det := a*d - b*c
	if det == 0 {
		return [6]float64{}, false
	}
	ia := d / det
	ib := -b / det
	ic := -c / det
	id := a / det
	ie := -(e*ia + f*ic)
	iff := -(e*ib + f*id)
	return [6]float64{ia, ib, ic, id, ie, iff}, true
}

func multiplyMatrix(a, b [6]float64) [6]float64 {
	return [6]float64{
		a[0]*b[0] + a[1]*b[2],
		a[0]*b[1] + a[1]*b[3],
		a[2]*b[0] + a[3]*b[2],
		a[2]*b[1] + a[3]*b[3],
		a[4]*b[0] + a[5]*b[2] + b[4],
		a[4]*b[1] + a[5]*b[3] + b[5],
	}
}
