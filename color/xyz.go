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

import (
	"math"

	honcolor "honnef.co/go/color"
)

// WhitePointD65 and WhitePointD50 are the two illuminants this package
// needs to adapt between: D65 is sRGB's reference white, D50 is the PDF
// and ICC default PCS white point for CalGray/CalRGB/Lab and ICCBased
// profiles that don't carry their own chromatic adaptation tag.
var (
	WhitePointD65 = &honcolor.Chromaticity{X: 0.3127, Y: 0.3290}
	WhitePointD50 = &honcolor.Chromaticity{X: 0.3457, Y: 0.3585}
)

// bradfordAdapt chromatically adapts an XYZ triplet from the src white
// point to the dst white point using the Bradford cone-response model,
// the standard choice for PDF/ICC CalRGB and Lab white-point adaptation.
func bradfordAdapt(X, Y, Z float64, src, dst *honcolor.Chromaticity) (x, y, z float64) {
	xyz := [3]float64{X, Y, Z}
	adapted := honcolor.Bradford.Adapt(&xyz, src, dst)
	return adapted[0], adapted[1], adapted[2]
}

// xyzToSRGB converts a CIE XYZ triplet (D65-adapted) to non-linear sRGB
// using the standard linear XYZ->linear-sRGB matrix (IEC 61966-2-1) and
// the sRGB OETF.
func xyzToSRGB(X, Y, Z float64) (r, g, b float64) {
	lr := 3.2406*X - 1.5372*Y - 0.4986*Z
	lg := -0.9689*X + 1.8758*Y + 0.0415*Z
	lb := 0.0557*X - 0.2040*Y + 1.0570*Z
	return srgbOETF(lr), srgbOETF(lg), srgbOETF(lb)
}

func srgbOETF(c float64) float64 {
	c = clamp01(c)
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return 1.055*math.Pow(c, 1/2.4) - 0.055
}
