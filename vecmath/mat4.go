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

// Mat4 is a 4x4 matrix stored as four column vectors, so that applying it to
// a Vec4 is four fused multiply-adds with no further indexing.
type Mat4 struct {
	Col0, Col1, Col2, Col3 Vec4
}

// Identity4 is the 4x4 identity matrix.
var Identity4 = Mat4{
	Col0: Vec4{1, 0, 0, 0},
	Col1: Vec4{0, 1, 0, 0},
	Col2: Vec4{0, 0, 1, 0},
	Col3: Vec4{0, 0, 0, 1},
}

// Apply computes Col0*v.X + Col1*v.Y + Col2*v.Z + Col3*v.W.
func (m Mat4) Apply(v Vec4) Vec4 {
	return m.Col0.Scale(v.X).
		Add(m.Col1.Scale(v.Y)).
		Add(m.Col2.Scale(v.Z)).
		Add(m.Col3.Scale(v.W))
}

// IsIdentity reports whether m is exactly the 4x4 identity matrix.
func (m Mat4) IsIdentity() bool {
	return m == Identity4
}

// Mat4FromRows builds a Mat4 from sixteen row-major entries, as they appear
// in a PDF/ICC matrix array.
func Mat4FromRows(rows [16]float64) Mat4 {
	return Mat4{
		Col0: Vec4{rows[0], rows[4], rows[8], rows[12]},
		Col1: Vec4{rows[1], rows[5], rows[9], rows[13]},
		Col2: Vec4{rows[2], rows[6], rows[10], rows[14]},
		Col3: Vec4{rows[3], rows[7], rows[11], rows[15]},
	}
}

// Mat4From3x3 builds a Mat4 from a row-major 3x3 matrix acting on lanes
// X,Y,Z, an optional translation applied to the same three lanes, and an
// optional transpose of the 3x3 part. The W lane is left untouched
// (identity), so a 3-channel color transform composes cleanly with the
// padding convention in FromColor.
func Mat4From3x3(m33 [9]float64, translate [3]float64, transpose bool) Mat4 {
	if transpose {
		m33 = [9]float64{
			m33[0], m33[3], m33[6],
			m33[1], m33[4], m33[7],
			m33[2], m33[5], m33[8],
		}
	}
	return Mat4{
		Col0: Vec4{m33[0], m33[3], m33[6], 0},
		Col1: Vec4{m33[1], m33[4], m33[7], 0},
		Col2: Vec4{m33[2], m33[5], m33[8], 0},
		Col3: Vec4{translate[0], translate[1], translate[2], 1},
	}
}

// Mat4FromXYZTriplets builds a matrix from up to four ICC-style XYZ column
// triplets (the "XYZ-type" tag data used by ICCBased color spaces for their
// colorant matrix). Triplets beyond len(triplets) are identity-padded: a
// missing column c gets Col_c = e_c (so an unused channel is left alone by
// the matrix stage, consistent with the Vec4 one-padding convention).
func Mat4FromXYZTriplets(triplets [][3]float64) Mat4 {
	m := Identity4
	cols := [4]*Vec4{&m.Col0, &m.Col1, &m.Col2, &m.Col3}
	for i := 0; i < len(triplets) && i < 4; i++ {
		t := triplets[i]
		*cols[i] = Vec4{t[0], t[1], t[2], 0}
	}
	return m
}
