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

	"seehuhn.de/go/pdfcolor/internal/calcerr"
	"seehuhn.de/go/pdfcolor/vecmath"
)

// clutWeightEpsilon is the minimum interpolation weight a grid corner must
// carry to be visited. Corners below this threshold contribute a
// numerically negligible amount and are skipped so that inputs that land
// exactly on a grid plane (common for device colors with exact 0/1
// channels) don't pay for 2^N-1 zero-weighted corner lookups.
const clutWeightEpsilon = 1e-5

// CLUT is an N-dimensional color lookup table Transform, as built from an
// ICC profile's mft1/mft2/mAB tag data or a PDF Indexed-adjacent color
// table. InDim must be between 1 and 4 (matching vecmath.Vec4); GridSize
// gives the number of grid points along each input dimension; Samples
// holds GridSize[0]*...*GridSize[InDim-1]*OutDim values, with the first
// input dimension varying fastest, each in [0,1].
type CLUT struct {
	InDim, OutDim int
	GridSize      []int
	Samples       []float64

	// DimEnabled is stored but not consulted: Apply indexes the grid with
	// every one of the InDim input lanes, whatever DimEnabled holds, and no
	// lane is passed through unchanged.
	DimEnabled []bool
}

func NewCLUT(inDim, outDim int, gridSize []int, samples []float64) (*CLUT, error) {
	if inDim < 1 || inDim > 4 {
		return nil, calcerr.NewConstructionError("CLUT", "InDim must be between 1 and 4")
	}
	if len(gridSize) != inDim {
		return nil, calcerr.NewConstructionError("CLUT", "GridSize must have InDim entries")
	}
	total := outDim
	for _, s := range gridSize {
		if s < 2 {
			return nil, calcerr.NewConstructionError("CLUT", "GridSize entries must be at least 2")
		}
		total *= s
	}
	if len(samples) != total {
		return nil, calcerr.NewConstructionError("CLUT", "Samples length does not match GridSize/OutDim")
	}
	return &CLUT{InDim: inDim, OutDim: outDim, GridSize: gridSize, Samples: samples}, nil
}

func (c *CLUT) IsIdentity() bool { return false }

// Apply looks up v's first InDim lanes in the grid using multilinear
// interpolation (the general N-dimensional case), with a tetrahedral path
// for InDim == 3, the conventional choice for 3-input device-link and ICC
// profile CLUTs.
func (c *CLUT) Apply(v vecmath.Vec4) vecmath.Vec4 {
	in := make([]float64, c.InDim)
	for i := 0; i < c.InDim; i++ {
		in[i] = v.Lane(i)
	}

	out := make([]float64, c.OutDim)
	if c.InDim == 3 {
		c.tetrahedral(in, out)
	} else {
		c.multilinear(in, out)
	}

	result := v
	for i := 0; i < c.OutDim && i < 4; i++ {
		result = result.WithLane(i, out[i])
	}
	return result
}

// gridCoord converts a normalized [0,1] input into a fractional grid
// coordinate and its floor/fraction, clamped so the floor always has a
// valid upper neighbor.
func (c *CLUT) gridCoord(dim int, x float64) (lo int, frac float64) {
	n := c.GridSize[dim]
	g := clampF(x, 0, 1) * float64(n-1)
	lo = int(math.Floor(g))
	if lo >= n-1 {
		lo = n - 2
		if lo < 0 {
			lo = 0
		}
	}
	frac = g - float64(lo)
	return lo, frac
}

func clampF(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func (c *CLUT) sampleAt(idx []int, out []float64) {
	flat := 0
	stride := 1
	for i := range idx {
		flat += idx[i] * stride
		stride *= c.GridSize[i]
	}
	base := flat * c.OutDim
	copy(out, c.Samples[base:base+c.OutDim])
}

// multilinear is the general InDim-dimensional interpolation used for
// InDim in {1,2,4}: it visits all 2^InDim grid corners around the input
// point and accumulates them weighted by their (1-frac)/frac product,
// skipping any corner whose weight falls below clutWeightEpsilon.
func (c *CLUT) multilinear(in []float64, out []float64) {
	lo := make([]int, c.InDim)
	frac := make([]float64, c.InDim)
	for i := range in {
		lo[i], frac[i] = c.gridCoord(i, in[i])
	}

	corners := 1 << uint(c.InDim)
	idx := make([]int, c.InDim)
	buf := make([]float64, c.OutDim)
	for mask := 0; mask < corners; mask++ {
		weight := 1.0
		for i := 0; i < c.InDim; i++ {
			bit := (mask >> uint(i)) & 1
			idx[i] = lo[i] + bit
			if bit == 1 {
				weight *= frac[i]
			} else {
				weight *= 1 - frac[i]
			}
		}
		if weight < clutWeightEpsilon {
			continue
		}
		c.sampleAt(idx, buf)
		for j := range out {
			out[j] += weight * buf[j]
		}
	}
}

// tetrahedral implements the standard 3-input CLUT interpolation: the unit
// cube around the input point is split into 6 tetrahedra by the ordering
// of the fractional coordinates, and only the 4 corners of the tetrahedron
// containing the point are weighted (all 8 cube corners are read, 4 enter
// the sum), which for CMYK-style profiles is the conventional choice that
// avoids trilinear's visible facet seams.
func (c *CLUT) tetrahedral(in []float64, out []float64) {
	lo := make([]int, 3)
	frac := make([]float64, 3)
	for i := 0; i < 3; i++ {
		lo[i], frac[i] = c.gridCoord(i, in[i])
	}
	fx, fy, fz := frac[0], frac[1], frac[2]

	c000 := make([]float64, c.OutDim)
	c100 := make([]float64, c.OutDim)
	c010 := make([]float64, c.OutDim)
	c001 := make([]float64, c.OutDim)
	c110 := make([]float64, c.OutDim)
	c101 := make([]float64, c.OutDim)
	c011 := make([]float64, c.OutDim)
	c111 := make([]float64, c.OutDim)
	c.sampleAt([]int{lo[0], lo[1], lo[2]}, c000)
	c.sampleAt([]int{lo[0] + 1, lo[1], lo[2]}, c100)
	c.sampleAt([]int{lo[0], lo[1] + 1, lo[2]}, c010)
	c.sampleAt([]int{lo[0], lo[1], lo[2] + 1}, c001)
	c.sampleAt([]int{lo[0] + 1, lo[1] + 1, lo[2]}, c110)
	c.sampleAt([]int{lo[0] + 1, lo[1], lo[2] + 1}, c101)
	c.sampleAt([]int{lo[0], lo[1] + 1, lo[2] + 1}, c011)
	c.sampleAt([]int{lo[0] + 1, lo[1] + 1, lo[2] + 1}, c111)

	// Select one of the six tetrahedra that partition the unit cube,
	// following the ordering of fx, fy, fz (the standard CLUT tetrahedral
	// decomposition used by ICC reference implementations).
	add := func(w float64, p []float64) {
		if w < clutWeightEpsilon {
			return
		}
		for j := range out {
			out[j] += w * p[j]
		}
	}
	switch {
	case fx >= fy && fy >= fz:
		add(1-fx, c000)
		add(fx-fy, c100)
		add(fy-fz, c110)
		add(fz, c111)
	case fx >= fz && fz >= fy:
		add(1-fx, c000)
		add(fx-fz, c100)
		add(fz-fy, c101)
		add(fy, c111)
	case fz >= fx && fx >= fy:
		add(1-fz, c000)
		add(fz-fx, c001)
		add(fx-fy, c101)
		add(fy, c111)
	case fy >= fx && fx >= fz:
		add(1-fy, c000)
		add(fy-fx, c010)
		add(fx-fz, c110)
		add(fz, c111)
	case fy >= fz && fz >= fx:
		add(1-fy, c000)
		add(fy-fz, c010)
		add(fz-fx, c011)
		add(fx, c111)
	default: // fz >= fy && fy >= fx
		add(1-fz, c000)
		add(fz-fy, c001)
		add(fy-fx, c011)
		add(fx, c111)
	}
}
