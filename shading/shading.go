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

// Package shading reduces PDF shading dictionaries (types 1-7) to
// device-space samplers: a bitmap-plus-matrix for function-based shadings,
// a closed-form gradient for axial/radial shadings, or a pretessellated
// vertex buffer for mesh shadings.
package shading

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfcolor/color"
	"seehuhn.de/go/pdfcolor/internal/calcerr"
)

// Shading is the common shading descriptor interface implemented by
// Type1..Type7. Equal reports structural equality of two shading
// descriptors.
type Shading interface {
	ShadingType() int
	Equal(other Shading) bool
	colorSpace() color.Space
}

// RGBA is a device-space sRGB color with straight alpha, matching the
// renderer-facing [u8;4] contract: a transparent sample (alpha 0) signals
// "outside the shading's domain, do not paint".
type RGBA struct {
	R, G, B, A uint8
}

var transparentRGBA = RGBA{}

// toRGBA adapts a color.Converter's [4]uint8 result to this package's RGBA.
func toRGBA(c [4]uint8) RGBA {
	return RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}

// Artifact is the built device-space sampler for one shading. Exactly one
// of the fields is populated, depending on the source shading's type.
type Artifact struct {
	LinearGradient *LinearGradient
	RadialGradient *RadialGradient
	MeshVertices   *VertexBuffer
	Bitmap         *Bitmap
}

// Bitmap is a rectangular grid of already-converted sRGB samples, used for
// Type1 (function-based) shadings. Matrix maps shading-domain coordinates
// to bitmap pixel coordinates.
type Bitmap struct {
	Width, Height int
	Pixels        []RGBA // row-major, Width*Height entries
	Matrix        [6]float64
}

// SampleAt returns the bitmap pixel at (x,y), or transparent outside its
// bounds.
func (b *Bitmap) SampleAt(x, y int) RGBA {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return transparentRGBA
	}
	return b.Pixels[y*b.Width+x]
}

// Vertex is one Gouraud mesh sample: a device-space position and its sRGB
// color.
type Vertex struct {
	Pos   vec.Vec2
	Color RGBA
}

// VertexBuffer is a batched triangle list (Type4/Type5) or tessellated
// patch mesh (Type6/Type7), plus the local matrix translating the mesh's
// bounding box to the origin.
type VertexBuffer struct {
	Vertices []Vertex // triangle list, len%3==0
	Matrix   [6]float64
}

// Build evaluates s against intent and returns its device-space sampler.
// A Type1 shading whose function is missing or does not take 2 inputs is
// an error. A function that is present is evaluated as it stands: Build
// does not replace its results with a black fill.
func Build(s Shading, intent color.RenderingIntent) (*Artifact, error) {
	switch sh := s.(type) {
	case *Type1:
		return sh.build(intent)
	case *Type2:
		return sh.build(intent)
	case *Type3:
		return sh.build(intent)
	case *Type4:
		return sh.build(intent)
	case *Type5:
		return sh.build(intent)
	case *Type6:
		return sh.build(intent)
	case *Type7:
		return sh.build(intent)
	default:
		return nil, &calcerr.UnsupportedVariantError{Kind: "shading", Value: s}
	}
}

func floatsEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func matrixOrIdentity(m []float64) [6]float64 {
	if len(m) == 6 {
		return [6]float64{m[0], m[1], m[2], m[3], m[4], m[5]}
	}
	return [6]float64{1, 0, 0, 1, 0, 0}
}

func matrixEqual(a, b [6]float64) bool { return a == b }
