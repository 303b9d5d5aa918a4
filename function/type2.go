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

import (
	"math"

	"seehuhn.de/go/pdfcolor/internal/calcerr"
)

// Type2 is a PDF exponential interpolation function: C0 + x^N*(C1-C0).
type Type2 struct {
	XMin, XMax float64
	C0, C1     []float64
	N          float64
	Range      []float64
}

func (f *Type2) FunctionType() int { return 2 }

func (f *Type2) Shape() (m, n int) {
	m = 1
	n = len(f.C0)
	if n == 0 {
		n = len(f.C1)
	}
	if n == 0 {
		n = 1
	}
	return m, n
}

func (f *Type2) GetDomain() []float64 { return []float64{f.XMin, f.XMax} }

func (f *Type2) validate() error {
	if !isRange(f.XMin, f.XMax) {
		return calcerr.NewConstructionError("Type2", "Domain must be a finite, non-decreasing interval")
	}
	if len(f.C0) > 0 && len(f.C1) > 0 && len(f.C0) != len(f.C1) {
		return calcerr.NewConstructionError("Type2", "C0 and C1 must have the same length")
	}
	if f.N != 1 && f.N != math.Trunc(f.N) && f.XMin < 0 {
		return calcerr.NewConstructionError("Type2", "negative Domain requires integer N")
	}
	return validateDomainRange("Type2.Range", f.Range)
}

func (f *Type2) Apply(buf []float64, inputs ...float64) []float64 {
	_, n := f.Shape()
	if len(buf) < n {
		buf = make([]float64, n)
	}
	x := clip(inputs[0], f.XMin, f.XMax)
	xn := math.Pow(x, f.N)
	for j := 0; j < n; j++ {
		c0, c1 := 0.0, 1.0
		if j < len(f.C0) {
			c0 = f.C0[j]
		}
		if j < len(f.C1) {
			c1 = f.C1[j]
		}
		y := c0 + xn*(c1-c0)
		if 2*j+1 < len(f.Range) {
			y = clip(y, f.Range[2*j], f.Range[2*j+1])
		}
		buf[j] = y
	}
	return buf[:n]
}
