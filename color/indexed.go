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

// Indexed is a PDF Indexed color space: a single integer component that
// selects a precomputed color out of a fixed lookup table, each entry
// already expressed in Base.
type Indexed struct {
	Base  Space
	Table []Color // one entry per index, 0..HiVal
}

func NewIndexed(base Space, table []Color) (*Indexed, error) {
	if base == nil {
		return nil, calcerr.NewConstructionError("Indexed", "Base must not be nil")
	}
	if len(table) == 0 {
		return nil, calcerr.NewConstructionError("Indexed", "Table must not be empty")
	}
	return &Indexed{Base: base, Table: table}, nil
}

func (s *Indexed) NumComponents() int { return 1 }

func (s *Indexed) New(c ...float64) Color {
	idx := 0
	if len(c) > 0 {
		idx = int(c[0])
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= len(s.Table) {
		idx = len(s.Table) - 1
	}
	return s.Table[idx]
}

func (s *Indexed) Default() Color { return s.New(0) }
