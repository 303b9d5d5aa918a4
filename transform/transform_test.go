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

package transform

import (
	"math"
	"testing"

	"seehuhn.de/go/pdfcolor/vecmath"
)

func TestCurvesGamma(t *testing.T) {
	c := Curves{Channels: []Curve{{Kind: CurveGamma, Gamma: 2.2}}}
	v := c.Apply(vecmath.Vec4{X: 0.5, Y: 1, Z: 1, W: 1})
	want := math.Pow(0.5, 2.2)
	if math.Abs(v.X-want) > 1e-12 {
		t.Errorf("got %v, want %v", v.X, want)
	}
}

func TestCurvesIdentityElided(t *testing.T) {
	c := Curves{Channels: []Curve{{Kind: CurveIdentity}, {Kind: CurveIdentity}}}
	if !c.IsIdentity() {
		t.Errorf("IsIdentity() = false, want true")
	}
}

func TestChainFlattensNested(t *testing.T) {
	m := Matrix{M: vecmath.Mat4FromRows([16]float64{
		2, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})}
	inner := NewChain(m, Matrix{M: vecmath.Identity4})
	outer := NewChain(inner, m)
	if len(outer.Steps) != 2 {
		t.Fatalf("Steps = %v, want 2 (nested chain flattened, identity elided)", outer.Steps)
	}
	v := outer.Apply(vecmath.Vec4{X: 1, Y: 1, Z: 1, W: 1})
	if v.X != 4 {
		t.Errorf("got %v, want X=4", v.X)
	}
}

func TestCLUTTetrahedralCorners(t *testing.T) {
	// 2x2x2 grid, 1 output channel, value == sum of input lanes (0 or 1
	// each), so every corner's sample equals its own index sum and
	// interpolation should reproduce the trilinear result exactly.
	samples := []float64{0, 1, 1, 2, 1, 2, 2, 3}
	clut, err := NewCLUT(3, 1, []int{2, 2, 2}, samples)
	if err != nil {
		t.Fatal(err)
	}
	v := clut.Apply(vecmath.Vec4{X: 0.5, Y: 0.5, Z: 0.5, W: 1})
	if math.Abs(v.X-1.5) > 1e-9 {
		t.Errorf("got %v, want 1.5", v.X)
	}
}

func TestCLUTCornerExact(t *testing.T) {
	samples := []float64{0, 1, 1, 2, 1, 2, 2, 3}
	clut, _ := NewCLUT(3, 1, []int{2, 2, 2}, samples)
	v := clut.Apply(vecmath.Vec4{X: 1, Y: 0, Z: 0, W: 1})
	if math.Abs(v.X-1) > 1e-9 {
		t.Errorf("got %v, want 1", v.X)
	}
}
