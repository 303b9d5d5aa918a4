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
	"seehuhn.de/go/pdfcolor/color"
	"seehuhn.de/go/pdfcolor/function"
	"seehuhn.de/go/pdfcolor/internal/calcerr"
)

// defaultShadingGrid is the sampling resolution used for function-based
// shadings whose function type carries no natural grid size of its own
// (everything except Type0, whose Size IS the natural grid).
const defaultShadingGrid = 33

// Type1 is a PDF function-based shading (8.7.4.5.2): an sRGB bitmap baked
// by evaluating a 2-input function across Domain.
type Type1 struct {
	ColorSpace color.Space
	F          function.Function
	Domain     []float64 // xmin,xmax,ymin,ymax; default 0,1,0,1
	Matrix     []float64 // 6 values, domain -> target space; default identity
	Background []float64
	BBox       *[4]float64
	AntiAlias  bool
}

func (s *Type1) ShadingType() int        { return 1 }
func (s *Type1) colorSpace() color.Space { return s.ColorSpace }

func (s *Type1) domain() []float64 {
	if len(s.Domain) == 4 {
		return s.Domain
	}
	return []float64{0, 1, 0, 1}
}

func (s *Type1) Equal(other Shading) bool {
	o, ok := other.(*Type1)
	if !ok {
		return false
	}
	return s.ColorSpace == o.ColorSpace &&
		floatsEqual(s.domain(), o.domain()) &&
		matrixEqual(matrixOrIdentity(s.Matrix), matrixOrIdentity(o.Matrix)) &&
		floatsEqual(s.Background, o.Background) &&
		bboxEqual(s.BBox, o.BBox) &&
		s.AntiAlias == o.AntiAlias
}

func (s *Type1) build(intent color.RenderingIntent) (*Artifact, error) {
	if s.F == nil {
		return nil, &calcerr.UnsupportedVariantError{Kind: "shading.Type1.F", Value: nil}
	}
	if m, _ := s.F.Shape(); m != 2 {
		return nil, calcerr.NewConstructionError("Type1", "function must take 2 inputs")
	}
	conv, err := color.Build(s.ColorSpace)
	if err != nil {
		return nil, err
	}

	dom := s.domain()
	nx, ny := functionGrid(s.F)

	bmp := &Bitmap{Width: nx, Height: ny, Pixels: make([]RGBA, nx*ny)}
	out := make([]float64, 0, 8)
	for j := 0; j < ny; j++ {
		y := lerp(dom[2], dom[3], float64(j)/float64(maxI(ny-1, 1)))
		for i := 0; i < nx; i++ {
			x := lerp(dom[0], dom[1], float64(i)/float64(maxI(nx-1, 1)))
			tint := s.F.Apply(out, x, y)
			bmp.Pixels[j*nx+i] = toRGBA(conv.ToSRGB(tint, intent))
		}
	}

	// domain -> bitmap pixel matrix, then shading.Matrix on top.
	sx := float64(nx-1) / (dom[1] - dom[0])
	sy := float64(ny-1) / (dom[3] - dom[2])
	domainToBitmap := [6]float64{sx, 0, 0, sy, -dom[0] * sx, -dom[2] * sy}
	bmp.Matrix = composeMatrix(matrixOrIdentity(s.Matrix), domainToBitmap)

	return &Artifact{Bitmap: bmp}, nil
}

func functionGrid(f function.Function) (nx, ny int) {
	if t0, ok := f.(*function.Type0); ok && len(t0.Size) >= 2 {
		return t0.Size[0], t0.Size[1]
	}
	return defaultShadingGrid, defaultShadingGrid
}

func lerp(a, b, t float64) float64 { return a + t*(b-a) }

func maxI(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// composeMatrix returns the PDF matrix product a*b, where matrices are
// [a b c d e f] representing the 2x3 affine transform
// [x' y'] = [x y 1] * [[a b][c d][e f]].
func composeMatrix(a, b [6]float64) [6]float64 {
	return [6]float64{
		a[0]*b[0] + a[1]*b[2],
		a[0]*b[1] + a[1]*b[3],
		a[2]*b[0] + a[3]*b[2],
		a[2]*b[1] + a[3]*b[3],
		a[4]*b[0] + a[5]*b[2] + b[4],
		a[4]*b[1] + a[5]*b[3] + b[5],
	}
}

func bboxEqual(a, b *[4]float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
