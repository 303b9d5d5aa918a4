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

import "seehuhn.de/go/pdfcolor/internal/calcerr"

// Type3 is a PDF stitching function: XMin..XMax is partitioned by Bounds
// into len(Functions) subdomains, each mapped through Encode into the
// corresponding Functions[i]'s own domain.
type Type3 struct {
	XMin, XMax float64
	Functions  []Function
	Bounds     []float64
	Encode     []float64
	Range      []float64
}

func (f *Type3) FunctionType() int { return 3 }

func (f *Type3) Shape() (m, n int) {
	m = 1
	if len(f.Functions) > 0 {
		_, n = f.Functions[0].Shape()
	}
	return m, n
}

func (f *Type3) GetDomain() []float64 { return []float64{f.XMin, f.XMax} }

func (f *Type3) validate() error {
	if !isRange(f.XMin, f.XMax) {
		return calcerr.NewConstructionError("Type3", "Domain must be a finite, non-decreasing interval")
	}
	k := len(f.Functions)
	if k == 0 {
		return calcerr.NewConstructionError("Type3", "Functions must not be empty")
	}
	if len(f.Bounds) != k-1 {
		return calcerr.NewConstructionError("Type3", "Bounds must have len(Functions)-1 entries")
	}
	if len(f.Encode) != 2*k {
		return calcerr.NewConstructionError("Type3", "Encode must have 2*len(Functions) entries")
	}
	prev := f.XMin
	for _, b := range f.Bounds {
		if !isFinite(b) || b < prev || b > f.XMax {
			return calcerr.NewConstructionError("Type3", "Bounds must be non-decreasing within Domain")
		}
		prev = b
	}
	return validateDomainRange("Type3.Range", f.Range)
}

// findSubdomain returns the index of the Functions entry that owns x, and
// the subdomain interval [a,b] it was selected from.
//
// Subdomains are half-open [a,b) except the last, which is closed on both
// ends. The one exception is when Bounds[0] equals XMin: the first
// subdomain degenerates to the single point [XMin,XMin], and the second
// subdomain absorbs the rest of what would otherwise have been the first,
// as (XMin, Bounds[1]) (or (XMin, XMax] if there is no second bound).
func (f *Type3) findSubdomain(x float64) (idx int, a, b float64) {
	k := len(f.Functions)
	bound := func(i int) float64 {
		switch {
		case i < 0:
			return f.XMin
		case i >= len(f.Bounds):
			return f.XMax
		default:
			return f.Bounds[i]
		}
	}

	if k > 0 && len(f.Bounds) > 0 && f.Bounds[0] == f.XMin && x == f.XMin {
		return 0, f.XMin, f.XMin
	}

	for i := 0; i < k; i++ {
		lo, hi := bound(i-1), bound(i)
		last := i == k-1
		if last {
			if x >= lo && x <= hi {
				return i, lo, hi
			}
		} else {
			if x >= lo && x < hi {
				return i, lo, hi
			}
		}
	}
	// x outside [XMin,XMax]: clip to the nearest end subdomain.
	if x < f.XMin {
		return 0, bound(-1), bound(0)
	}
	return k - 1, bound(k - 2), bound(k - 1)
}

func (f *Type3) Apply(buf []float64, inputs ...float64) []float64 {
	_, n := f.Shape()
	if len(buf) < n {
		buf = make([]float64, n)
	}
	x := clip(inputs[0], f.XMin, f.XMax)
	idx, a, b := f.findSubdomain(x)
	encLo, encHi := f.Encode[2*idx], f.Encode[2*idx+1]
	x2 := interpolateLinear(x, a, b, encLo, encHi)
	if a == b {
		x2 = encLo
	}

	sub := f.Functions[idx]
	out := sub.Apply(make([]float64, n), x2)
	for j := 0; j < n; j++ {
		y := out[j]
		if 2*j+1 < len(f.Range) {
			y = clip(y, f.Range[2*j], f.Range[2*j+1])
		}
		buf[j] = y
	}
	return buf[:n]
}
