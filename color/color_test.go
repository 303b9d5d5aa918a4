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
	"math"
	"testing"

	"seehuhn.de/go/pdfcolor/function"
)

func TestDeviceGrayIsDiagonal(t *testing.T) {
	c := DeviceGray{}.New(0.5)
	r, g, b := c.ToSRGB()
	if r != 0.5 || g != 0.5 || b != 0.5 {
		t.Errorf("got (%v,%v,%v), want (0.5,0.5,0.5)", r, g, b)
	}
}

func TestDeviceCMYKBlack(t *testing.T) {
	c := DeviceCMYK{}.New(0, 0, 0, 1)
	r, g, b := c.ToSRGB()
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("got (%v,%v,%v), want black", r, g, b)
	}
}

func TestDeviceCMYKWhite(t *testing.T) {
	c := DeviceCMYK{}.New(0, 0, 0, 0)
	r, g, b := c.ToSRGB()
	if r != 1 || g != 1 || b != 1 {
		t.Errorf("got (%v,%v,%v), want white", r, g, b)
	}
}

func TestIndexedLookup(t *testing.T) {
	base := DeviceRGB{}
	table := []Color{base.New(1, 0, 0), base.New(0, 1, 0), base.New(0, 0, 1)}
	idx, err := NewIndexed(base, table)
	if err != nil {
		t.Fatal(err)
	}
	r, g, b := idx.New(1).ToSRGB()
	if r != 0 || g != 1 || b != 0 {
		t.Errorf("got (%v,%v,%v), want green", r, g, b)
	}
}

func TestSeparationTintTransform(t *testing.T) {
	alt := DeviceGray{}
	tint := &function.Type2{XMin: 0, XMax: 1, C0: []float64{1}, C1: []float64{0}, N: 1}
	sep, err := NewSeparation([]string{"Spot"}, alt, tint)
	if err != nil {
		t.Fatal(err)
	}
	r, g, b := sep.New(0).ToSRGB()
	if r != 1 || g != 1 || b != 1 {
		t.Errorf("tint=0: got (%v,%v,%v), want white (paper)", r, g, b)
	}
	r, _, _ = sep.New(1).ToSRGB()
	if r != 0 {
		t.Errorf("tint=1: got r=%v, want 0", r)
	}
}

func TestPatternSpaceUncoloredDelegatesToBase(t *testing.T) {
	ps := NewPatternSpace(DeviceRGB{})
	if ps.NumComponents() != 3 {
		t.Errorf("got %d components, want 3 (delegated to DeviceRGB)", ps.NumComponents())
	}
	r, g, b := ps.New(0, 1, 0).ToSRGB()
	if r != 0 || g != 1 || b != 0 {
		t.Errorf("got (%v,%v,%v), want green", r, g, b)
	}
}

func TestPatternSpaceColoredTakesNoOperands(t *testing.T) {
	ps := NewPatternSpace(nil)
	if ps.NumComponents() != 0 {
		t.Errorf("got %d components, want 0 for a colored pattern space", ps.NumComponents())
	}
	defer func() {
		if recover() == nil {
			t.Error("New() on a colored pattern space should panic, got none")
		}
	}()
	ps.New(1, 2, 3)
}

func TestXYZToSRGBWhitePoint(t *testing.T) {
	// D65-referenced XYZ white (Y=1) must round-trip to sRGB (1,1,1).
	r, g, b := xyzToSRGB(0.9505, 1.0, 1.0890)
	if math.Abs(r-1) > 1e-3 || math.Abs(g-1) > 1e-3 || math.Abs(b-1) > 1e-3 {
		t.Errorf("got (%v,%v,%v), want ~white", r, g, b)
	}
}

func TestBradfordAdaptIdentityWhenSameWhitePoint(t *testing.T) {
	x, y, z := bradfordAdapt(0.5, 0.6, 0.7, WhitePointD50, WhitePointD50)
	if math.Abs(x-0.5) > 1e-9 || math.Abs(y-0.6) > 1e-9 || math.Abs(z-0.7) > 1e-9 {
		t.Errorf("adapting to the same white point should be a no-op, got (%v,%v,%v)", x, y, z)
	}
}

func TestCalGrayD65ToSRGBWhitePoint(t *testing.T) {
	wp := [3]float64{0.9505, 1.0, 1.0890} // D65
	cs, err := NewCalGray(wp, 1)
	if err != nil {
		t.Fatal(err)
	}
	r, g, b := cs.New(1).ToSRGB()
	if math.Abs(r-1) > 1e-3 || math.Abs(g-1) > 1e-3 || math.Abs(b-1) > 1e-3 {
		t.Errorf("full-white CalGray on a D65 white point: got (%v,%v,%v), want ~white", r, g, b)
	}
}
