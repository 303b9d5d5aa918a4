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

package vecmath

import "testing"

func TestFromColorPadding(t *testing.T) {
	v := FromColor(0.1, 0.2)
	if v != (Vec4{0.1, 0.2, 1, 1}) {
		t.Errorf("FromColor(0.1, 0.2) = %v, want {0.1 0.2 1 1}", v)
	}
}

func TestFromPositionPadding(t *testing.T) {
	v := FromPosition(1, 2)
	if v != (Vec4{1, 2, 0, 0}) {
		t.Errorf("FromPosition(1, 2) = %v, want {1 2 0 0}", v)
	}
}

func TestIdentityMatrixIsNoOp(t *testing.T) {
	v := Vec4{1, 2, 3, 4}
	got := Identity4.Apply(v)
	if got != v {
		t.Errorf("Identity4.Apply(%v) = %v, want %v", v, got, v)
	}
	if !Identity4.IsIdentity() {
		t.Errorf("Identity4.IsIdentity() = false, want true")
	}
}

func TestMat4FromXYZTripletsPadsIdentity(t *testing.T) {
	m := Mat4FromXYZTriplets([][3]float64{{2, 0, 0}})
	v := m.Apply(Vec4{1, 1, 1, 1})
	want := Vec4{2, 1, 1, 1}
	if v != want {
		t.Errorf("got %v, want %v", v, want)
	}
}

func TestDotProduct(t *testing.T) {
	a := Vec4{1, 2, 3, 4}
	b := Vec4{4, 3, 2, 1}
	if got, want := a.Dot(b), 4.0+6+6+4; got != want {
		t.Errorf("Dot = %v, want %v", got, want)
	}
}

func TestClampLaneWise(t *testing.T) {
	v := Vec4{-1, 0.5, 2, 0}
	got := v.ClampScalar(0, 1)
	want := Vec4{0, 0.5, 1, 0}
	if got != want {
		t.Errorf("ClampScalar = %v, want %v", got, want)
	}
}
