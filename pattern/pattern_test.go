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
	"testing"

	"seehuhn.de/go/pdfcolor/color"
	"seehuhn.de/go/pdfcolor/shading"
)

var identityMatrix = [6]float64{1, 0, 0, 1, 0, 0}

func TestTilingColoredCell(t *testing.T) {
	p := &Tiling{
		TilingType: 1,
		BBox:       [4]float64{0, 0, 4, 4},
		XStep:      4,
		YStep:      4,
		Colored:    true,
		Paint: func(cell *Cell) {
			for y := 0; y < cell.Height; y++ {
				for x := 0; x < cell.Width; x++ {
					cell.Set(x, y, shading.RGBA{R: 255, A: 255})
				}
			}
		},
	}
	s, err := Build(p, identityMatrix, color.RelativeColorimetric)
	if err != nil {
		t.Fatal(err)
	}
	if s.Tiled.Cell.Width != 4 || s.Tiled.Cell.Height != 4 {
		t.Fatalf("got cell %dx%d, want 4x4", s.Tiled.Cell.Width, s.Tiled.Cell.Height)
	}
	got := s.Tiled.SampleAt(1, 1)
	if got.R != 255 || got.A != 255 {
		t.Errorf("got %+v, want opaque red", got)
	}
}

func TestTilingUncoloredMaskedByTint(t *testing.T) {
	p := &Tiling{
		TilingType: 2,
		BBox:       [4]float64{0, 0, 2, 2},
		XStep:      2,
		YStep:      2,
		Colored:    false,
		TintColor:  [3]float64{0, 1, 0},
		Paint: func(cell *Cell) {
			cell.Set(0, 0, shading.RGBA{A: 255}) // fully covered
			cell.Set(1, 0, shading.RGBA{A: 0})   // uncovered
		},
	}
	s, err := Build(p, identityMatrix, color.RelativeColorimetric)
	if err != nil {
		t.Fatal(err)
	}
	covered := s.Tiled.Cell.At(0, 0)
	if covered.G != 255 || covered.A != 255 {
		t.Errorf("covered pixel: got %+v, want green at full alpha", covered)
	}
	uncovered := s.Tiled.Cell.At(1, 0)
	if uncovered.A != 0 {
		t.Errorf("uncovered pixel: got alpha %d, want 0", uncovered.A)
	}
}

func TestTilingAnchorUsesInverseCTM(t *testing.T) {
	p := &Tiling{
		BBox: [4]float64{0, 0, 1, 1}, XStep: 1, YStep: 1, Colored: true,
		Paint:  func(cell *Cell) {},
		Matrix: []float64{1, 0, 0, 1, 5, 5},
	}
	ctm := [6]float64{2, 0, 0, 2, 0, 0} // uniform scale by 2
	s, err := Build(p, ctm, color.RelativeColorimetric)
	if err != nil {
		t.Fatal(err)
	}
	want := [6]float64{0.5, 0, 0, 0.5, 5, 5}
	if s.Tiled.Anchor != want {
		t.Errorf("got anchor %+v, want %+v", s.Tiled.Anchor, want)
	}
}

func TestShadingPatternWrapsShading(t *testing.T) {
	p := &Shading{
		ShadingDict: &shading.Type2{
			ColorSpace:  color.DeviceRGB{},
			F:           nil,
			ExtendStart: true,
			ExtendEnd:   true,
		},
	}
	s, err := Build(p, identityMatrix, color.RelativeColorimetric)
	if err != nil {
		t.Fatal(err)
	}
	if s.Shaded == nil || s.Shaded.LinearGradient == nil {
		t.Fatal("expected a linear gradient artifact")
	}
}

func TestInvertMatrixSingular(t *testing.T) {
	_, ok := invertMatrix([6]float64{0, 0, 0, 0, 0, 0})
	if ok {
		t.Error("expected singular matrix to report not-invertible")
	}
}
