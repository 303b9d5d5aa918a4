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
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfcolor/color"
	"seehuhn.de/go/pdfcolor/function"
)

// Type6Patch is a Coons patch: 12 boundary control points in the PDF
// spiral stream order (C1, D2, C2 reversed, D1 reversed) and 4 corner
// colors, in the same winding order as the control points.
type Type6Patch struct {
	ControlPoints [12]vec.Vec2
	CornerColors  [][]float64
	Flag          int
}

// Type7Patch is a tensor-product patch: Type6Patch's 12 boundary points
// plus 4 interior control points (stream positions 12-15).
type Type7Patch struct {
	ControlPoints [16]vec.Vec2
	CornerColors  [][]float64
	Flag          int
}

// Type6 is a Coons patch mesh shading. Patches is either supplied directly,
// or (when Stream is non-empty) decoded from it per
// BitsPerFlag/BitsPerCoordinate/BitsPerComponent/Decode at build time, PDF
// spec 8.7.4.5.7: flag 0 reads all 12 points and 4 colors; flag 1-3 reuse 4
// boundary points and 2 colors from the previous patch's matching edge and
// read the remaining 8 points and 2 colors fresh.
type Type6 struct {
	ColorSpace        color.Space
	BitsPerCoordinate int
	BitsPerComponent  int
	BitsPerFlag       int
	Decode            []float64
	Stream            []byte
	F                 function.Function
	Patches           []Type6Patch
	Background        []float64
	BBox              *[4]float64
	AntiAlias         bool
}

func (s *Type6) numColorComponents() int {
	if s.F != nil {
		m, _ := s.F.Shape()
		return m
	}
	if s.ColorSpace != nil {
		return s.ColorSpace.NumComponents()
	}
	return 0
}

// sharedEdgePoints returns the 4 control-point indices (0-indexed, spec's
// p1..p12/p16) and 2 color indices of prev that flag reuses as the new
// patch's first 4 points and first 2 colors, per PDF spec Table 85.
func sharedEdgePoints(flag int) (pts [4]int, cols [2]int, ok bool) {
	switch flag {
	case 1:
		return [4]int{3, 4, 5, 6}, [2]int{1, 2}, true
	case 2:
		return [4]int{6, 7, 8, 9}, [2]int{2, 3}, true
	case 3:
		return [4]int{9, 10, 11, 0}, [2]int{3, 0}, true
	default:
		return [4]int{}, [2]int{}, false
	}
}

func (s *Type6) decodeStream(numComponents int) ([]Type6Patch, error) {
	r := &meshBitReader{data: s.Stream}
	var patches []Type6Patch
	var prev *Type6Patch
	for s.BitsPerFlag > 0 && r.bitsLeft() >= s.BitsPerFlag {
		flagRaw, err := r.read(s.BitsPerFlag)
		if err != nil {
			return patches, err
		}
		flag := int(flagRaw)

		var newPts int
		var newCols int
		var p Type6Patch
		p.Flag = flag
		if shared, sharedCols, ok := sharedEdgePoints(flag); ok && prev != nil {
			p.ControlPoints[0] = prev.ControlPoints[shared[0]]
			p.ControlPoints[1] = prev.ControlPoints[shared[1]]
			p.ControlPoints[2] = prev.ControlPoints[shared[2]]
			p.ControlPoints[3] = prev.ControlPoints[shared[3]]
			p.CornerColors = append(p.CornerColors, prev.CornerColors[sharedCols[0]], prev.CornerColors[sharedCols[1]])
			newPts = 8
			newCols = 2
		} else {
			newPts = 12
			newCols = 4
		}

		have := 12 - newPts
		for i := 0; i < newPts; i++ {
			x, y, err := r.readPoint(s.BitsPerCoordinate, s.Decode)
			if err != nil {
				return patches, err
			}
			p.ControlPoints[have+i] = vec.Vec2{X: x, Y: y}
		}
		for i := 0; i < newCols; i++ {
			c, err := r.readColor(s.BitsPerComponent, numComponents, s.Decode)
			if err != nil {
				return patches, err
			}
			p.CornerColors = append(p.CornerColors, c)
		}

		patches = append(patches, p)
		prev = &patches[len(patches)-1]
	}
	return patches, nil
}

func (s *Type6) ShadingType() int        { return 6 }
func (s *Type6) colorSpace() color.Space { return s.ColorSpace }

func (s *Type6) Equal(other Shading) bool {
	o, ok := other.(*Type6)
	if !ok {
		return false
	}
	return s.ColorSpace == o.ColorSpace &&
		s.BitsPerCoordinate == o.BitsPerCoordinate &&
		s.BitsPerComponent == o.BitsPerComponent &&
		s.BitsPerFlag == o.BitsPerFlag &&
		floatsEqual(s.Decode, o.Decode) &&
		bytesEqual(s.Stream, o.Stream) &&
		type6PatchesEqual(s.Patches, o.Patches) &&
		floatsEqual(s.Background, o.Background) &&
		bboxEqual(s.BBox, o.BBox) &&
		s.AntiAlias == o.AntiAlias
}

func type6PatchesEqual(a, b []Type6Patch) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ControlPoints != b[i].ControlPoints || a[i].Flag != b[i].Flag {
			return false
		}
		if len(a[i].CornerColors) != len(b[i].CornerColors) {
			return false
		}
		for j := range a[i].CornerColors {
			if !floatsEqual(a[i].CornerColors[j], b[i].CornerColors[j]) {
				return false
			}
		}
	}
	return true
}

func (s *Type6) tintToRGBA(conv *color.Converter, intent color.RenderingIntent, tint []float64) RGBA {
	if s.F != nil {
		out := make([]float64, 0, 8)
		tint = s.F.Apply(out, tint...)
	}
	return toRGBA(conv.ToSRGB(tint, intent))
}

func (s *Type6) build(intent color.RenderingIntent) (*Artifact, error) {
	conv, err := color.Build(s.ColorSpace)
	if err != nil {
		return nil, err
	}

	patches := s.Patches
	if len(s.Stream) > 0 {
		patches, _ = s.decodeStream(s.numColorComponents())
	}

	tess := patchTessellation(len(patches))
	var tris [][3]Vertex
	for _, p := range patches {
		colors := [4]RGBA{}
		for i := 0; i < 4 && i < len(p.CornerColors); i++ {
			colors[i] = s.tintToRGBA(conv, intent, p.CornerColors[i])
		}
		tris = append(tris, tessellateCoons(p.ControlPoints, colors, tess)...)
	}
	return &Artifact{MeshVertices: meshArtifact(tris)}, nil
}

// Type7 is a tensor-product patch mesh shading. Stream decoding follows
// Type6's, except the 4 interior control points (stream positions 12-15)
// are always read fresh, even when flag reuses a boundary edge (PDF spec
// 8.7.4.5.7, note under Table 86).
type Type7 struct {
	ColorSpace        color.Space
	BitsPerCoordinate int
	BitsPerComponent  int
	BitsPerFlag       int
	Decode            []float64
	Stream            []byte
	F                 function.Function
	Patches           []Type7Patch
	Background        []float64
	BBox              *[4]float64
	AntiAlias         bool
}

func (s *Type7) numColorComponents() int {
	if s.F != nil {
		m, _ := s.F.Shape()
		return m
	}
	if s.ColorSpace != nil {
		return s.ColorSpace.NumComponents()
	}
	return 0
}

func (s *Type7) decodeStream(numComponents int) ([]Type7Patch, error) {
	r := &meshBitReader{data: s.Stream}
	var patches []Type7Patch
	var prev *Type7Patch
	for s.BitsPerFlag > 0 && r.bitsLeft() >= s.BitsPerFlag {
		flagRaw, err := r.read(s.BitsPerFlag)
		if err != nil {
			return patches, err
		}
		flag := int(flagRaw)

		var p Type7Patch
		p.Flag = flag
		var freshBoundary, freshCols int
		if shared, sharedCols, ok := sharedEdgePoints(flag); ok && prev != nil {
			p.ControlPoints[0] = prev.ControlPoints[shared[0]]
			p.ControlPoints[1] = prev.ControlPoints[shared[1]]
			p.ControlPoints[2] = prev.ControlPoints[shared[2]]
			p.ControlPoints[3] = prev.ControlPoints[shared[3]]
			p.CornerColors = append(p.CornerColors, prev.CornerColors[sharedCols[0]], prev.CornerColors[sharedCols[1]])
			freshBoundary = 8
			freshCols = 2
		} else {
			freshBoundary = 12
			freshCols = 4
		}

		haveBoundary := 12 - freshBoundary
		for i := 0; i < freshBoundary; i++ {
			x, y, err := r.readPoint(s.BitsPerCoordinate, s.Decode)
			if err != nil {
				return patches, err
			}
			p.ControlPoints[haveBoundary+i] = vec.Vec2{X: x, Y: y}
		}
		for i := 12; i < 16; i++ {
			x, y, err := r.readPoint(s.BitsPerCoordinate, s.Decode)
			if err != nil {
				return patches, err
			}
			p.ControlPoints[i] = vec.Vec2{X: x, Y: y}
		}
		for i := 0; i < freshCols; i++ {
			c, err := r.readColor(s.BitsPerComponent, numComponents, s.Decode)
			if err != nil {
				return patches, err
			}
			p.CornerColors = append(p.CornerColors, c)
		}

		patches = append(patches, p)
		prev = &patches[len(patches)-1]
	}
	return patches, nil
}

func (s *Type7) ShadingType() int        { return 7 }
func (s *Type7) colorSpace() color.Space { return s.ColorSpace }

func (s *Type7) Equal(other Shading) bool {
	o, ok := other.(*Type7)
	if !ok {
		return false
	}
	return s.ColorSpace == o.ColorSpace &&
		s.BitsPerCoordinate == o.BitsPerCoordinate &&
		s.BitsPerComponent == o.BitsPerComponent &&
		s.BitsPerFlag == o.BitsPerFlag &&
		floatsEqual(s.Decode, o.Decode) &&
		bytesEqual(s.Stream, o.Stream) &&
		type7PatchesEqual(s.Patches, o.Patches) &&
		floatsEqual(s.Background, o.Background) &&
		bboxEqual(s.BBox, o.BBox) &&
		s.AntiAlias == o.AntiAlias
}

func type7PatchesEqual(a, b []Type7Patch) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ControlPoints != b[i].ControlPoints || a[i].Flag != b[i].Flag {
			return false
		}
		if len(a[i].CornerColors) != len(b[i].CornerColors) {
			return false
		}
		for j := range a[i].CornerColors {
			if !floatsEqual(a[i].CornerColors[j], b[i].CornerColors[j]) {
				return false
			}
		}
	}
	return true
}

func (s *Type7) tintToRGBA(conv *color.Converter, intent color.RenderingIntent, tint []float64) RGBA {
	if s.F != nil {
		out := make([]float64, 0, 8)
		tint = s.F.Apply(out, tint...)
	}
	return toRGBA(conv.ToSRGB(tint, intent))
}

func (s *Type7) build(intent color.RenderingIntent) (*Artifact, error) {
	conv, err := color.Build(s.ColorSpace)
	if err != nil {
		return nil, err
	}

	patches := s.Patches
	if len(s.Stream) > 0 {
		patches, _ = s.decodeStream(s.numColorComponents())
	}

	tess := patchTessellation(len(patches))
	var tris [][3]Vertex
	for _, p := range patches {
		colors := [4]RGBA{}
		for i := 0; i < 4 && i < len(p.CornerColors); i++ {
			colors[i] = s.tintToRGBA(conv, intent, p.CornerColors[i])
		}
		tris = append(tris, tessellateTensor(p.ControlPoints, colors, tess)...)
	}
	return &Artifact{MeshVertices: meshArtifact(tris)}, nil
}

// patchTessellation picks a uniform (tess+1)^2 grid per patch such that
// the total vertex count across all patches fits a 16-bit index buffer.
func patchTessellation(numPatches int) int {
	if numPatches < 1 {
		numPatches = 1
	}
	tess := int(math.Sqrt(65535/float64(numPatches))) - 1
	if tess < 1 {
		tess = 1
	}
	return tess
}

// spiralIndex[i][j] maps the tensor-product indices (i along u, j along v)
// to its position in the PDF stream's spiral control-point order, per the
// P_ij table: P00=0, P10=11, P20=10, P30=9, P01=1, P11=12, P21=15, P31=8,
// P02=2, P12=13, P22=14, P32=7, P03=3, P13=4, P23=5, P33=6.
var spiralIndex = [4][4]int{
	{0, 1, 2, 3},
	{11, 12, 13, 4},
	{10, 15, 14, 5},
	{9, 8, 7, 6},
}

func bernstein(t float64) [4]float64 {
	u := 1 - t
	return [4]float64{u * u * u, 3 * u * u * t, 3 * u * t * t, t * t * t}
}

func tensorPoint(p [16]vec.Vec2, u, v float64) vec.Vec2 {
	bu := bernstein(u)
	bv := bernstein(v)
	var x, y float64
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			w := bu[i] * bv[j]
			pt := p[spiralIndex[i][j]]
			x += w * pt.X
			y += w * pt.Y
		}
	}
	return vec.Vec2{X: x, Y: y}
}

// coonsToTensor fills the 4 interior control points of a Coons patch from
// its 12 boundary points using the standard bilinear-blend construction,
// then reuses the tensor-product evaluator.
func coonsToTensor(b [12]vec.Vec2) [16]vec.Vec2 {
	var full [16]vec.Vec2
	copy(full[:12], b[:])

	corner := func(i, j int) vec.Vec2 { return b[spiralIndex[i][j]] }
	p00, p03, p30, p33 := corner(0, 0), corner(0, 3), corner(3, 0), corner(3, 3)

	// Bilinear corner blend: the Coons patch's 4 interior tensor points
	// collapse to the bilinear interpolation of the 4 corners, since a
	// Coons patch has no independent interior control (spec 8.7.4.5.6).
	interior := func(i, j int) vec.Vec2 {
		u, v := float64(i)/3, float64(j)/3
		bx := (1-u)*(1-v)*p00.X + (1-u)*v*p03.X + u*(1-v)*p30.X + u*v*p33.X
		by := (1-u)*(1-v)*p00.Y + (1-u)*v*p03.Y + u*(1-v)*p30.Y + u*v*p33.Y
		return vec.Vec2{X: bx, Y: by}
	}
	full[spiralIndex[1][1]] = interior(1, 1)
	full[spiralIndex[1][2]] = interior(1, 2)
	full[spiralIndex[2][1]] = interior(2, 1)
	full[spiralIndex[2][2]] = interior(2, 2)
	return full
}

// bilinearColor interpolates the 4 corner colors, ordered per spec
// 8.7.4.5.6: c[0] at (u,v)=(0,0), c[1] at (0,1), c[2] at (1,1), c[3] at (1,0).
func bilinearColor(c [4]RGBA, u, v float64) RGBA {
	left := blendRGBA(c[0], c[1], v)
	right := blendRGBA(c[3], c[2], v)
	return blendRGBA(left, right, u)
}

func tessellateCoons(b [12]vec.Vec2, colors [4]RGBA, tess int) [][3]Vertex {
	return tessellateTensor(coonsToTensor(b), colors, tess)
}

func tessellateTensor(p [16]vec.Vec2, colors [4]RGBA, tess int) [][3]Vertex {
	n := tess + 1 // points per side, matching patchTessellation's (tess+1)^2 budget
	grid := make([][]Vertex, n)
	for i := 0; i < n; i++ {
		grid[i] = make([]Vertex, n)
		v := float64(i) / float64(tess)
		for j := 0; j < n; j++ {
			u := float64(j) / float64(tess)
			grid[i][j] = Vertex{Pos: tensorPoint(p, u, v), Color: bilinearColor(colors, u, v)}
		}
	}
	var tris [][3]Vertex
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-1; j++ {
			a := grid[i][j]
			bb := grid[i][j+1]
			cc := grid[i+1][j+1]
			d := grid[i+1][j]
			tris = append(tris, [3]Vertex{a, bb, cc}, [3]Vertex{a, cc, d})
		}
	}
	return tris
}
