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

// Converter is the package's external entry point: it wraps a Space and
// converts raw component values straight to device sRGB bytes with alpha,
// the contract callers outside this module actually want (Space/Color stay
// exported for packages inside this module, like shading and pattern, that
// need the float64 intermediate).
type Converter struct {
	space Space
}

// Build wraps space in a Converter.
func Build(space Space) (*Converter, error) {
	if space == nil {
		return nil, calcerr.NewConstructionError("Converter", "space must not be nil")
	}
	return &Converter{space: space}, nil
}

// ToSRGB converts components to non-linear sRGB bytes with full alpha.
// intent is not used by the conversion: no Space receives it, and ICCBased
// fixes its rendering intent when NewICCBased builds the space. Any
// failure building the color (e.g. calling New on a colored PatternSpace)
// is treated as an EvaluatorError and converted to solid opaque black,
// matching the "broken color produces black" rule applied to evaluator
// failures elsewhere in this module.
func (c *Converter) ToSRGB(components []float64, intent RenderingIntent) (out [4]uint8) {
	defer func() {
		if recover() != nil {
			out = [4]uint8{0, 0, 0, 255}
		}
	}()
	_ = intent
	col := c.space.New(components...)
	r, g, b := col.ToSRGB()
	return [4]uint8{to8(r), to8(g), to8(b), 255}
}

func to8(x float64) uint8 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 255
	}
	return uint8(x*255 + 0.5)
}
