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

package function

import "testing"

func TestType3BoundaryHandling(t *testing.T) {
	fn := &Type3{
		XMin: 0,
		XMax: 2,
		Functions: []Function{
			&Type2{XMin: 0, XMax: 1, C0: []float64{0}, C1: []float64{1}, N: 1},
			&Type2{XMin: 0, XMax: 1, C0: []float64{1}, C1: []float64{0}, N: 1},
		},
		Bounds: []float64{1.0},
		Encode: []float64{0, 1, 0, 1},
	}
	tests := []struct {
		input    float64
		wantFunc int
	}{
		{0.0, 0},
		{0.5, 0},
		{0.999, 0},
		{1.0, 1},
		{1.5, 1},
		{2.0, 1},
	}
	for _, tt := range tests {
		idx, _, _ := fn.findSubdomain(tt.input)
		if idx != tt.wantFunc {
			t.Errorf("findSubdomain(%v) = %d, want %d", tt.input, idx, tt.wantFunc)
		}
	}
}

func TestType3DegenerateFirstInterval(t *testing.T) {
	fn := &Type3{
		XMin: 0,
		XMax: 2,
		Functions: []Function{
			&Type2{XMin: 0, XMax: 1, C0: []float64{9}, C1: []float64{9}, N: 1},
			&Type2{XMin: 0, XMax: 1, C0: []float64{1}, C1: []float64{0}, N: 1},
		},
		Bounds: []float64{0.0},
		Encode: []float64{0, 1, 0, 1},
	}
	idx, a, b := fn.findSubdomain(0.0)
	if idx != 0 || a != 0 || b != 0 {
		t.Errorf("findSubdomain(0) = (%d, %v, %v), want (0, 0, 0)", idx, a, b)
	}
}

func TestType3Apply(t *testing.T) {
	fn := &Type3{
		XMin: 0,
		XMax: 2,
		Functions: []Function{
			&Type2{XMin: 0, XMax: 1, C0: []float64{0}, C1: []float64{1}, N: 1},
			&Type2{XMin: 0, XMax: 1, C0: []float64{1}, C1: []float64{0}, N: 1},
		},
		Bounds: []float64{1.0},
		Encode: []float64{0, 1, 0, 1},
		Range:  []float64{0, 1},
	}
	out := make([]float64, 1)
	fn.Apply(out, 0.0)
	if out[0] != 0 {
		t.Errorf("Apply(0) = %v, want 0", out[0])
	}
	fn.Apply(out, 1.5)
	if out[0] != 0.5 {
		t.Errorf("Apply(1.5) = %v, want 0.5", out[0])
	}
}
