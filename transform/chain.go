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

import "seehuhn.de/go/pdfcolor/vecmath"

// Chain composes a sequence of Transforms left to right: Apply(v) is
// Steps[n-1].Apply(...Steps[0].Apply(v)).
type Chain struct {
	Steps []Transform
}

// NewChain builds a Chain, flattening any nested Chain arguments and
// dropping identity steps, so a Chain never carries dead work.
func NewChain(steps ...Transform) Chain {
	var flat []Transform
	for _, s := range steps {
		if s == nil || s.IsIdentity() {
			continue
		}
		if nested, ok := s.(Chain); ok {
			flat = append(flat, nested.Steps...)
			continue
		}
		flat = append(flat, s)
	}
	return Chain{Steps: flat}
}

func (c Chain) IsIdentity() bool { return len(c.Steps) == 0 }

func (c Chain) Apply(v vecmath.Vec4) vecmath.Vec4 {
	for _, s := range c.Steps {
		v = s.Apply(v)
	}
	return v
}
