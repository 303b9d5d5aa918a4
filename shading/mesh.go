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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfcolor/color"
	"seehuhn.de/go/pdfcolor/function"
)

// Type4Vertex is one free-form Gouraud vertex: Flag selects whether it
// starts a new triangle (0) or extends the previous one by edge-sharing
// (1 or 2), per PDF spec 8.7.4.5.5.
type Type4Vertex struct {
	X, Y  float64
	Flag  int
	Color []float64
}

// Type4 is a free-form Gouraud-shaded triangle mesh. Vertices is either
// supplied directly, or (when Stream is non-empty) decoded from it per
// BitsPerFlag/BitsPerCoordinate/BitsPerComponent/Decode at build time,
// PDF spec 8.7.4.5.5: each vertex is flag, x, y, then one value per color
// component, packed MSB-first with no padding between fields.
type Type4 struct {
	ColorSpace        color.Space
	BitsPerCoordinate int
	BitsPerComponent  int
	BitsPerFlag       int
	Decode            []float64
	Stream            []byte
	F                 function.Function
	Vertices          []Type4Vertex
	Background        []float64
	BBox              *[4]float64
	AntiAlias         bool
}

// numColorComponents is the number of tint values a raw stream vertex
// carries: the tint-transform function's input arity if one is present,
// otherwise the color space's own component count.
func (s *Type4) numColorComponents() int {
	if s.F != nil {
		m, _ := s.F.Shape()
		return m
	}
	if s.ColorSpace != nil {
		return s.ColorSpace.NumComponents()
	}
	return 0
}

// decodeStream unpacks Stream into vertices. Decoding stops when fewer bits
// remain than one full vertex record: a short final vertex is dropped and
// the vertices read before it are returned with a nil error.
func (s *Type4) decodeStream(numComponents int) ([]Type4Vertex, error) {
	r := &meshBitReader{data: s.Stream}
	var verts []Type4Vertex
	recordSize := s.BitsPerFlag + 2*s.BitsPerCoordinate + numComponents*s.BitsPerComponent
	for recordSize > 0 && r.bitsLeft() >= recordSize {
		flag, err := r.read(s.BitsPerFlag)
		if err != nil {
			return verts, err
		}
		x, y, err := r.readPoint(s.BitsPerCoordinate, s.Decode)
		if err != nil {
			return verts, err
		}
		color, err := r.readColor(s.BitsPerComponent, numComponents, s.Decode)
		if err != nil {
			return verts, err
		}
		verts = append(verts, Type4Vertex{X: x, Y: y, Flag: int(flag), Color: color})
	}
	return verts, nil
}

func (s *Type4) ShadingType() int        { return 4 }
func (s *Type4) colorSpace() color.Space { return s.ColorSpace }

func (s *Type4) Equal(other Shading) bool {
	o, ok := other.(*Type4)
	if !ok {
		return false
	}
	return s.ColorSpace == o.ColorSpace &&
		s.BitsPerCoordinate == o.BitsPerCoordinate &&
		s.BitsPerComponent == o.BitsPerComponent &&
		s.BitsPerFlag == o.BitsPerFlag &&
		floatsEqual(s.Decode, o.Decode) &&
		bytesEqual(s.Stream, o.Stream) &&
		type4VerticesEqual(s.Vertices, o.Vertices) &&
		floatsEqual(s.Background, o.Background) &&
		bboxEqual(s.BBox, o.BBox) &&
		s.AntiAlias == o.AntiAlias
}

func type4VerticesEqual(a, b []Type4Vertex) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].X != b[i].X || a[i].Y != b[i].Y || a[i].Flag != b[i].Flag || !floatsEqual(a[i].Color, b[i].Color) {
			return false
		}
	}
	return true
}

func (s *Type4) tintToRGBA(conv *color.Converter, intent color.RenderingIntent, tint []float64) RGBA {
	if s.F != nil {
		out := make([]float64, 0, 8)
		tint = s.F.Apply(out, tint...)
	}
	return toRGBA(conv.ToSRGB(tint, intent))
}

// build decodes the vertex stream into a flat triangle list: a flag-0
// vertex starts a new triangle with the next two vertices; flag 1 or 2
// reuses two vertices of the previous triangle (edge bc or ca) and adds
// one new vertex.
func (s *Type4) build(intent color.RenderingIntent) (*Artifact, error) {
	conv, err := color.Build(s.ColorSpace)
	if err != nil {
		return nil, err
	}

	verts := s.Vertices
	if len(s.Stream) > 0 {
		verts, _ = s.decodeStream(s.numColorComponents())
	}

	var tris [][3]Vertex
	var prev [3]Vertex
	pending := 0
	for _, v := range verts {
		vert := Vertex{Pos: vec.Vec2{X: v.X, Y: v.Y}, Color: s.tintToRGBA(conv, intent, v.Color)}
		if v.Flag == 0 && pending >= 3 {
			pending = 0
		}
		if v.Flag == 0 || pending < 3 {
			prev[pending%3] = vert
			pending++
			if pending >= 3 {
				tris = append(tris, [3]Vertex{prev[0], prev[1], prev[2]})
			}
			continue
		}
		var next [3]Vertex
		switch v.Flag {
		case 1:
			next = [3]Vertex{prev[1], prev[2], vert}
		default: // 2
			next = [3]Vertex{prev[0], prev[2], vert}
		}
		tris = append(tris, next)
		prev = next
	}
	return &Artifact{MeshVertices: meshArtifact(tris)}, nil
}

func meshArtifact(tris [][3]Vertex) *VertexBuffer {
	verts := make([]Vertex, 0, len(tris)*3)
	minX, minY := 0.0, 0.0
	first := true
	for _, tri := range tris {
		for _, v := range tri {
			verts = append(verts, v)
			if first || v.Pos.X < minX {
				minX = v.Pos.X
			}
			if first || v.Pos.Y < minY {
				minY = v.Pos.Y
			}
			first = false
		}
	}
	return &VertexBuffer{Vertices: verts, Matrix: [6]float64{1, 0, 0, 1, -minX, -minY}}
}

// Type5Vertex is one lattice-form Gouraud vertex (no Flag; triangles are
// implied by row/column adjacency).
type Type5Vertex struct {
	X, Y  float64
	Color []float64
}

// Type5 is a lattice-form Gouraud-shaded triangle mesh: vertices form a
// VerticesPerRow x (len(Vertices)/VerticesPerRow) grid, each 2x2 cell
// split into two triangles. Vertices is either supplied directly, or (when
// Stream is non-empty) decoded from it per
// BitsPerCoordinate/BitsPerComponent/Decode at build time: each vertex is
// x, y, then one value per color component, with no flag bits (PDF spec
// 8.7.4.5.6).
type Type5 struct {
	ColorSpace        color.Space
	BitsPerCoordinate int
	BitsPerComponent  int
	VerticesPerRow    int
	Decode            []float64
	Stream            []byte
	F                 function.Function
	Vertices          []Type5Vertex
	Background        []float64
	BBox              *[4]float64
	AntiAlias         bool
}

func (s *Type5) numColorComponents() int {
	if s.F != nil {
		m, _ := s.F.Shape()
		return m
	}
	if s.ColorSpace != nil {
		return s.ColorSpace.NumComponents()
	}
	return 0
}

func (s *Type5) decodeStream(numComponents int) ([]Type5Vertex, error) {
	r := &meshBitReader{data: s.Stream}
	var verts []Type5Vertex
	recordSize := 2*s.BitsPerCoordinate + numComponents*s.BitsPerComponent
	for recordSize > 0 && r.bitsLeft() >= recordSize {
		x, y, err := r.readPoint(s.BitsPerCoordinate, s.Decode)
		if err != nil {
			return verts, err
		}
		color, err := r.readColor(s.BitsPerComponent, numComponents, s.Decode)
		if err != nil {
			return verts, err
		}
		verts = append(verts, Type5Vertex{X: x, Y: y, Color: color})
	}
	return verts, nil
}

func (s *Type5) ShadingType() int        { return 5 }
func (s *Type5) colorSpace() color.Space { return s.ColorSpace }

func (s *Type5) Equal(other Shading) bool {
	o, ok := other.(*Type5)
	if !ok {
		return false
	}
	return s.ColorSpace == o.ColorSpace &&
		s.BitsPerCoordinate == o.BitsPerCoordinate &&
		s.BitsPerComponent == o.BitsPerComponent &&
		s.VerticesPerRow == o.VerticesPerRow &&
		floatsEqual(s.Decode, o.Decode) &&
		bytesEqual(s.Stream, o.Stream) &&
		type5VerticesEqual(s.Vertices, o.Vertices) &&
		floatsEqual(s.Background, o.Background) &&
		bboxEqual(s.BBox, o.BBox) &&
		s.AntiAlias == o.AntiAlias
}

func type5VerticesEqual(a, b []Type5Vertex) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].X != b[i].X || a[i].Y != b[i].Y || !floatsEqual(a[i].Color, b[i].Color) {
			return false
		}
	}
	return true
}

func (s *Type5) tintToRGBA(conv *color.Converter, intent color.RenderingIntent, tint []float64) RGBA {
	if s.F != nil {
		out := make([]float64, 0, 8)
		tint = s.F.Apply(out, tint...)
	}
	return toRGBA(conv.ToSRGB(tint, intent))
}

func (s *Type5) build(intent color.RenderingIntent) (*Artifact, error) {
	conv, err := color.Build(s.ColorSpace)
	if err != nil {
		return nil, err
	}

	vertices := s.Vertices
	if len(s.Stream) > 0 {
		vertices, _ = s.decodeStream(s.numColorComponents())
	}

	w := s.VerticesPerRow
	if w < 2 || len(vertices) < 2*w {
		return &Artifact{MeshVertices: &VertexBuffer{}}, nil
	}
	rows := len(vertices) / w

	at := func(row, col int) Vertex {
		v := vertices[row*w+col]
		return Vertex{Pos: vec.Vec2{X: v.X, Y: v.Y}, Color: s.tintToRGBA(conv, intent, v.Color)}
	}

	var tris [][3]Vertex
	for row := 0; row < rows-1; row++ {
		for col := 0; col < w-1; col++ {
			v00 := at(row, col)
			v10 := at(row, col+1)
			v01 := at(row+1, col)
			v11 := at(row+1, col+1)
			tris = append(tris, [3]Vertex{v00, v10, v11}, [3]Vertex{v00, v11, v01})
		}
	}
	return &Artifact{MeshVertices: meshArtifact(tris)}, nil
}
