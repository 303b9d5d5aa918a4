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

package color

import "seehuhn.de/go/pdfcolor/internal/calcerr"

// PatternSpace is the PDF Pattern color space (8.7.3.1). Uncolored is nil
// for a "colored" pattern space (patterns carry their own colors); when
// non-nil, it is the underlying space that "scn"-style operands are
// interpreted in for an uncolored tiling pattern.
type PatternSpace struct {
	Uncolored Space
}

func NewPatternSpace(uncolored Space) *PatternSpace {
	return &PatternSpace{Uncolored: uncolored}
}

// NumComponents returns the number of underlying-color components an
// uncolored pattern needs, or 0 for a colored pattern (component count is
// driven entirely by the pattern's own content in that case).
func (s *PatternSpace) NumComponents() int {
	if s.Uncolored == nil {
		return 0
	}
	return s.Uncolored.NumComponents()
}

// New builds the pattern's underlying tint color for an uncolored
// pattern. Calling it on a colored pattern space is a construction error:
// colored patterns never take color operands.
func (s *PatternSpace) New(c ...float64) Color {
	if s.Uncolored == nil {
		panic(calcerr.NewConstructionError("PatternSpace", "colored pattern space takes no color operands"))
	}
	return s.Uncolored.New(c...)
}

func (s *PatternSpace) Default() Color {
	if s.Uncolored == nil {
		return nil
	}
	return s.Uncolored.New(onesOf(s.Uncolored.NumComponents())...)
}
