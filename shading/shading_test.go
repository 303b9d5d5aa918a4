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
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfcolor/color"
	"seehuhn.de/go/pdfcolor/function"
)

func TestShadingEqual(t *testing.T) {
	fn := &function.Type2{XMin: 0, XMax: 1, C0: []float64{0, 0, 0}, C1: []float64{1, 1, 1}, N: 1}

	shadings := []Shading{
		&Type1{ColorSpace: color.DeviceRGB{}, F: fn},
		&Type2{ColorSpace: color.DeviceRGB{}, P0: vec.Vec2{X: 0, Y: 0}, P1: vec.Vec2{X: 100, Y: 0}, F: fn, TMax: 1},
		&Type3{ColorSpace: color.DeviceRGB{}, Center1: vec.Vec2{X: 50, Y: 50}, R1: 0, Center2: vec.Vec2{X: 50, Y: 50}, R2: 50, F: fn, TMax: 1},
		&Type4{ColorSpace: color.DeviceRGB{}, BitsPerCoordinate: 8, BitsPerComponent: 8, BitsPerFlag: 2,
			Vertices: []Type4Vertex{
				{X: 0, Y: 0, Flag: 0, Color: []float64{1, 0, 0}},
				{X: 100, Y: 0, Flag: 1, Color: []float64{0, 1, 0}},
				{X: 50, Y: 100, Flag: 2, Color: []float64{0, 0, 1}},
			}},
		&Type5{ColorSpace: color.DeviceRGB{}, BitsPerCoordinate: 8, BitsPerComponent: 8, VerticesPerRow: 2,
			Vertices: []Type5Vertex{
				{X: 0, Y: 0, Color: []float64{1, 0, 0}},
				{X: 100, Y: 0, Color: []float64{0, 1, 0}},
			}},
		&Type6{ColorSpace: color.DeviceRGB{}, BitsPerCoordinate: 8, BitsPerComponent: 8, BitsPerFlag: 2,
			Patches: []Type6Patch{{ControlPoints: [12]vec.Vec2{}, CornerColors: [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 1, 0}}}}},
		&Type7{ColorSpace: color.DeviceRGB{}, BitsPerCoordinate: 8, BitsPerComponent: 8, BitsPerFlag: 2,
			Patches: []Type7Patch{{ControlPoints: [16]vec.Vec2{}, CornerColors: [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 1, 0}}}}},
	}

	for i, a := range shadings {
		for j, b := range shadings {
			got := a.Equal(b)
			want := i == j
			if got != want {
				t.Errorf("shadings[%d].Equal(shadings[%d]) = %v, want %v (types: %T vs %T)",
					i, j, got, want, a, b)
			}
		}
	}
}

func TestAxialGradientEndpoints(t *testing.T) {
	s := &Type2{
		ColorSpace:  color.DeviceRGB{},
		P0:          vec.Vec2{X: 0, Y: 0},
		P1:          vec.Vec2{X: 1, Y: 0},
		F:           &function.Type2{XMin: 0, XMax: 1, C0: []float64{1, 0, 0}, C1: []float64{0, 0, 1}, N: 1},
		ExtendStart: true,
		ExtendEnd:   true,
	}
	art, err := Build(s, color.RelativeColorimetric)
	if err != nil {
		t.Fatal(err)
	}
	g := art.LinearGradient
	checkRGBA(t, "t=0", g.SampleAt(0), RGBA{R: 255, A: 255})
	checkRGBA(t, "t=1", g.SampleAt(1), RGBA{B: 255, A: 255})
	mid := g.SampleAt(0.5)
	if mid.R < 120 || mid.R > 135 || mid.B < 120 || mid.B > 135 {
		t.Errorf("t=0.5: got %+v, want roughly (128,0,128)", mid)
	}
}

func TestAxialGradientHardClip(t *testing.T) {
	s := &Type2{
		ColorSpace: color.DeviceRGB{},
		P0:         vec.Vec2{X: 0, Y: 0},
		P1:         vec.Vec2{X: 1, Y: 0},
		F:          &function.Type2{XMin: 0, XMax: 1, C0: []float64{1, 0, 0}, C1: []float64{0, 0, 1}, N: 1},
	}
	art, err := Build(s, color.RelativeColorimetric)
	if err != nil {
		t.Fatal(err)
	}
	g := art.LinearGradient
	if g.SampleAt(-0.5).A != 0 || g.SampleAt(1.5).A != 0 {
		t.Error("unextended gradient should be transparent outside [0,1]")
	}
}

func TestRadialTransparentCap(t *testing.T) {
	s := &Type3{
		ColorSpace: color.DeviceRGB{},
		Center1:    vec.Vec2{X: 0.5, Y: 0.5}, R1: 0,
		Center2: vec.Vec2{X: 0.5, Y: 0.5}, R2: 1,
		F:         &function.Type2{XMin: 0, XMax: 1, C0: []float64{1, 0, 0}, C1: []float64{0, 0, 1}, N: 1},
		ExtendEnd: true,
	}
	art, err := Build(s, color.RelativeColorimetric)
	if err != nil {
		t.Fatal(err)
	}
	g := art.RadialGradient
	center := g.SampleAt(vec.Vec2{X: 0.5, Y: 0.5})
	checkRGBA(t, "center", center, RGBA{R: 255, A: 255})
	outer := g.SampleAt(vec.Vec2{X: 1.6, Y: 0.5})
	checkRGBA(t, "clamped outer (extend end)", outer, RGBA{B: 255, A: 255})

	s.ExtendEnd = false
	noExtend, err := Build(s, color.RelativeColorimetric)
	if err != nil {
		t.Fatal(err)
	}
	beyond := noExtend.RadialGradient.SampleAt(vec.Vec2{X: 1.6, Y: 0.5})
	if beyond.A != 0 {
		t.Errorf("beyond unextended radius: got %+v, want transparent", beyond)
	}
}

func TestType7PatchCorners(t *testing.T) {
	red := []float64{1, 0, 0}
	green := []float64{0, 1, 0}
	blue := []float64{0, 0, 1}
	white := []float64{1, 1, 1}

	cp := [16]vec.Vec2{}
	cp[spiralIndex[0][0]] = vec.Vec2{X: 0, Y: 0}
	cp[spiralIndex[0][3]] = vec.Vec2{X: 0, Y: 1}
	cp[spiralIndex[3][3]] = vec.Vec2{X: 1, Y: 1}
	cp[spiralIndex[3][0]] = vec.Vec2{X: 1, Y: 0}
	// fill remaining boundary/interior points along straight edges so the
	// patch is exactly the unit square.
	for i := 0; i <= 3; i++ {
		for j := 0; j <= 3; j++ {
			u, v := float64(i)/3, float64(j)/3
			cp[spiralIndex[i][j]] = vec.Vec2{X: u, Y: v}
		}
	}

	s := &Type7{
		ColorSpace: color.DeviceRGB{},
		Patches: []Type7Patch{{
			ControlPoints: cp,
			CornerColors:  [][]float64{red, green, blue, white},
		}},
	}
	art, err := Build(s, color.RelativeColorimetric)
	if err != nil {
		t.Fatal(err)
	}
	corners := map[[2]float64]RGBA{
		{0, 0}: {R: 255, A: 255},
		{0, 1}: {G: 255, A: 255},
		{1, 1}: {B: 255, A: 255},
		{1, 0}: {R: 255, G: 255, B: 255, A: 255},
	}
	found := map[[2]float64]bool{}
	for _, v := range art.MeshVertices.Vertices {
		key := [2]float64{v.Pos.X, v.Pos.Y}
		if want, ok := corners[key]; ok {
			checkRGBA(t, "corner", v.Color, want)
			found[key] = true
		}
	}
	for k := range corners {
		if !found[k] {
			t.Errorf("corner %v not present in tessellated mesh", k)
		}
	}
}

func checkRGBA(t *testing.T, label string, got, want RGBA) {
	t.Helper()
	if got != want {
		t.Errorf("%s: got %+v, want %+v", label, got, want)
	}
}

func TestAxialGradientStopsDeterministic(t *testing.T) {
	s := &Type2{
		ColorSpace: color.DeviceRGB{},
		P0:         vec.Vec2{X: 0, Y: 0},
		P1:         vec.Vec2{X: 1, Y: 0},
		F: &function.Type3{XMin: 0, XMax: 1, Functions: []function.Function{
			&function.Type2{XMin: 0, XMax: 0.5, C0: []float64{1, 0, 0}, C1: []float64{0, 1, 0}, N: 1},
			&function.Type2{XMin: 0.5, XMax: 1, C0: []float64{0, 1, 0}, C1: []float64{0, 0, 1}, N: 1},
		}, Bounds: []float64{0.5}, Encode: []float64{0, 0.5, 0.5, 1}},
		ExtendStart: true,
		ExtendEnd:   true,
	}

	first, err := Build(s, color.RelativeColorimetric)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Build(s, color.RelativeColorimetric)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(first.LinearGradient.Stops, second.LinearGradient.Stops); diff != "" {
		t.Errorf("rebuilding the same Type2 shading produced different stops (-first +second):\n%s", diff)
	}
}

func TestPatchTessellationFitsIndexBudget(t *testing.T) {
	for _, n := range []int{1, 2, 10, 100, 1000} {
		tess := patchTessellation(n)
		verts := n * (tess + 1) * (tess + 1)
		if verts > 65535*4 { // generous slack: triangle list duplicates shared verts
			t.Errorf("numPatches=%d: tess=%d gives %d raw grid verts, too many", n, tess, verts)
		}
		if tess < 1 {
			t.Errorf("numPatches=%d: tess=%d, want >= 1", n, tess)
		}
	}
}
