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

// Package pattern reduces PDF tiling and shading patterns to a repeatable
// device-space sampler: a cell bitmap plus anchoring matrix for tiling
// patterns, or a built shading.Artifact for shading patterns.
package pattern

import (
	"seehuhn.de/go/pdfcolor/color"
	"seehuhn.de/go/pdfcolor/internal/calcerr"
	"seehuhn.de/go/pdfcolor/shading"
)

// Pattern is the common pattern descriptor interface implemented by
// Tiling and Shading.
type Pattern interface {
	PatternType() int
}

// Cell is an offscreen raster a tiling pattern paints its repeatable unit
// into, sized ceil(BBox width) x ceil(BBox height). The cell is handed to
// Paint as is: its origin is not translated to the BBox corner.
type Cell struct {
	Width, Height int
	Pixels        []shading.RGBA // row-major, straight alpha
}

func newCell(w, h int) *Cell {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &Cell{Width: w, Height: h, Pixels: make([]shading.RGBA, w*h)}
}

func (c *Cell) Set(x, y int, col shading.RGBA) {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return
	}
	c.Pixels[y*c.Width+x] = col
}

func (c *Cell) At(x, y int) shading.RGBA {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return shading.RGBA{}
	}
	return c.Pixels[y*c.Width+x]
}

// Sampler is the built device-space sampler for one pattern. Exactly one
// of Tiled or Shaded is populated.
type Sampler struct {
	Tiled  *TiledSampler
	Shaded *shading.Artifact
}

// TiledSampler repeats Cell across both axes with period Step, anchored in
// default (page) user space by Anchor.
type TiledSampler struct {
	Cell   *Cell
	Anchor [6]float64
	Step   [2]float64
}

// SampleAt evaluates the tiled sampler at a cell-local pixel coordinate,
// wrapping both axes to the cell's size.
func (t *TiledSampler) SampleAt(x, y int) shading.RGBA {
	w, h := t.Cell.Width, t.Cell.Height
	if w == 0 || h == 0 {
		return shading.RGBA{}
	}
	return t.Cell.At(((x % w) + w) % w, ((y % h) + h) % h)
}

// Build evaluates p and returns its device-space sampler. ctm is the
// current transformation matrix in effect at paint time; per spec 8.7.3.3
// a tiling pattern's phase is anchored to default user space, not to ctm,
// so Build needs only the pattern matrix to compute the anchor, with ctm
// supplied for the inverse(CTM) factor the spec's anchoring formula calls
// for.
func Build(p Pattern, ctm [6]float64, intent color.RenderingIntent) (*Sampler, error) {
	switch pat := p.(type) {
	case *Tiling:
		return pat.build(ctm)
	case *Shading:
		return pat.build(intent)
	default:
		return nil, &calcerr.UnsupportedVariantError{Kind: "pattern", Value: p}
	}
}
