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

// maxType0Samples bounds the total number of output samples a Type0
// function may declare, guarding against a maliciously large Size array
// driving an allocation far beyond anything a real profile needs.
const maxType0Samples = 8 << 20

// Type0 is a PDF sampled function: an m-dimensional grid of n-vectors,
// looked up by multilinear interpolation between neighboring grid points.
// Apply does not read UseCubic: the lookup is multilinear either way.
type Type0 struct {
	Domain        []float64
	Range         []float64
	Size          []int
	BitsPerSample int
	Encode        []float64
	Decode        []float64
	Samples       []byte
	UseCubic      bool
}

func (f *Type0) FunctionType() int { return 0 }

func (f *Type0) Shape() (m, n int) {
	m = len(f.Size)
	if len(f.Range) > 0 {
		n = len(f.Range) / 2
	}
	return m, n
}

func (f *Type0) GetDomain() []float64 { return f.Domain }

func (f *Type0) validate() error {
	m, n := f.Shape()
	if m == 0 {
		return calcerr.NewConstructionError("Type0", "Size must not be empty")
	}
	if err := validateDomainRange("Type0.Domain", f.Domain); err != nil {
		return err
	}
	if err := validateDomainRange("Type0.Range", f.Range); err != nil {
		return err
	}
	switch f.BitsPerSample {
	case 1, 2, 4, 8, 12, 16, 24, 32:
	default:
		return calcerr.NewConstructionError("Type0", "BitsPerSample must be one of 1,2,4,8,12,16,24,32")
	}
	total := n
	for _, s := range f.Size {
		if s <= 0 {
			return calcerr.NewConstructionError("Type0", "Size entries must be positive")
		}
		total *= s
	}
	if total <= 0 || total > maxType0Samples {
		return calcerr.NewConstructionError("Type0", "sample grid too large")
	}
	needBits := total * f.BitsPerSample
	if len(f.Samples)*8 < needBits {
		return calcerr.NewConstructionError("Type0", "Samples too short for declared Size/BitsPerSample")
	}
	if len(f.Encode) != 0 && len(f.Encode) != 2*m {
		return calcerr.NewConstructionError("Type0", "Encode length must be 2*len(Size)")
	}
	if len(f.Decode) != 0 && len(f.Decode) != len(f.Range) {
		return calcerr.NewConstructionError("Type0", "Decode length must match Range")
	}
	return nil
}

// extractSampleAtIndex decodes the sample at flat bit-index i (0-based,
// counting in units of BitsPerSample from the start of Samples), as an
// unsigned integer in [0, 2^BitsPerSample - 1]. Samples are packed MSB
// first, potentially spanning byte boundaries (PDF spec 7.10.2).
func (f *Type0) extractSampleAtIndex(i int) float64 {
	bits := f.BitsPerSample
	bitOffset := i * bits
	var v uint64
	for remaining := bits; remaining > 0; {
		byteIdx := bitOffset / 8
		bitInByte := bitOffset % 8
		avail := 8 - bitInByte
		take := remaining
		if take > avail {
			take = avail
		}
		b := f.Samples[byteIdx]
		shift := avail - take
		mask := byte((1 << take) - 1)
		chunk := (b >> shift) & mask
		v = (v << take) | uint64(chunk)
		bitOffset += take
		remaining -= take
	}
	return float64(v)
}

// maxSampleValue returns 2^BitsPerSample - 1.
func (f *Type0) maxSampleValue() float64 {
	return float64((uint64(1) << uint(f.BitsPerSample)) - 1)
}

// Apply evaluates the sampled function by multilinear interpolation over
// the 2^m corners surrounding the encoded input point.
func (f *Type0) Apply(buf []float64, inputs ...float64) []float64 {
	m, n := f.Shape()
	if len(buf) < n {
		buf = make([]float64, n)
	}

	e := make([]float64, m) // encoded, fractional grid coordinate
	for i := 0; i < m; i++ {
		x := inputs[i]
		if 2*i+1 < len(f.Domain) {
			x = clip(x, f.Domain[2*i], f.Domain[2*i+1])
		}
		encLo, encHi := 0.0, float64(f.Size[i]-1)
		if len(f.Encode) == 2*m {
			encLo, encHi = f.Encode[2*i], f.Encode[2*i+1]
		}
		var dLo, dHi float64
		if 2*i+1 < len(f.Domain) {
			dLo, dHi = f.Domain[2*i], f.Domain[2*i+1]
		} else {
			dLo, dHi = 0, 1
		}
		g := interpolateLinear(x, dLo, dHi, encLo, encHi)
		e[i] = math.Max(0, math.Min(float64(f.Size[i]-1), g))
	}

	out := make([]float64, n)
	f.multilinear(e, out)

	maxVal := f.maxSampleValue()
	for j := 0; j < n; j++ {
		decLo, decHi := 0.0, 1.0
		if 2*j+1 < len(f.Decode) {
			decLo, decHi = f.Decode[2*j], f.Decode[2*j+1]
		} else if 2*j+1 < len(f.Range) {
			decLo, decHi = f.Range[2*j], f.Range[2*j+1]
		}
		y := interpolateLinear(out[j], 0, maxVal, decLo, decHi)
		if 2*j+1 < len(f.Range) {
			y = clip(y, f.Range[2*j], f.Range[2*j+1])
		}
		buf[j] = y
	}
	return buf[:n]
}

// multilinear interpolates across all 2^m grid corners around e, writing n
// output components into out.
func (f *Type0) multilinear(e []float64, out []float64) {
	m, n := f.Shape()
	lo := make([]int, m)
	frac := make([]float64, m)
	for i, x := range e {
		lo[i] = int(math.Floor(x))
		if lo[i] >= f.Size[i]-1 {
			lo[i] = f.Size[i] - 2
			if lo[i] < 0 {
				lo[i] = 0
			}
		}
		frac[i] = x - float64(lo[i])
	}

	corners := 1 << uint(m)
	idx := make([]int, m)
	for c := 0; c < corners; c++ {
		weight := 1.0
		for i := 0; i < m; i++ {
			bit := (c >> uint(i)) & 1
			idx[i] = lo[i] + bit
			if idx[i] >= f.Size[i] {
				idx[i] = f.Size[i] - 1
			}
			if bit == 1 {
				weight *= frac[i]
			} else {
				weight *= 1 - frac[i]
			}
		}
		if weight == 0 {
			continue
		}
		flat := flattenIndex(idx, f.Size)
		for j := 0; j < n; j++ {
			s := f.extractSampleAtIndex(flat*n + j)
			out[j] += weight * s
		}
	}
}

// flattenIndex converts an m-dimensional grid coordinate into a flat
// row-major index, with the first dimension varying fastest (PDF spec
// 7.10.2: "the first dimension... varies fastest").
func flattenIndex(idx []int, size []int) int {
	flat := 0
	stride := 1
	for i := range idx {
		flat += idx[i] * stride
		stride *= size[i]
	}
	return flat
}

// interpolateLinear maps x from [xmin,xmax] to [ymin,ymax] (PDF spec
// 7.10.5, the shared "Interpolate" function used by Encode/Decode/Type2).
func interpolateLinear(x, xmin, xmax, ymin, ymax float64) float64 {
	if xmax == xmin {
		return ymin
	}
	return ymin + (x-xmin)*(ymax-ymin)/(xmax-xmin)
}
