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

// Package transform implements the composable color transform chain that
// maps device color components towards CIE-referred values: 3x3/4x4
// matrices, per-channel tone reproduction curves, and N-dimensional color
// lookup tables, plus a Chain that composes any of these left to right.
package transform

import "seehuhn.de/go/pdfcolor/vecmath"

// Transform maps one Vec4 of color/position data to another. All
// implementations are pure and safe for concurrent use.
type Transform interface {
	// IsIdentity reports whether the transform is exactly a no-op, so
	// callers building a Chain can elide it.
	IsIdentity() bool

	// Apply maps v through the transform.
	Apply(v vecmath.Vec4) vecmath.Vec4
}

// Resolution names a Low/Normal/High sampling-fineness preset. No
// transform in this package reads it: Matrix, Curves, CLUT and Chain
// evaluate the same way whatever Resolution a caller holds.
type Resolution int

const (
	ResolutionLow Resolution = iota
	ResolutionNormal
	ResolutionHigh
)

// Matrix is a Transform backed by a single 4x4 matrix (an ICC XYZ-type
// colorant matrix, a CalRGB/Lab transform matrix, or a Bradford chromatic
// adaptation matrix).
type Matrix struct {
	M vecmath.Mat4
}

func (m Matrix) IsIdentity() bool { return m.M.IsIdentity() }

func (m Matrix) Apply(v vecmath.Vec4) vecmath.Vec4 { return m.M.Apply(v) }
