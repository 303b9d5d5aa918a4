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

// Package function evaluates the four PDF function types (Sampled,
// Exponential, Stitching, PostScript Calculator) used to drive tint
// transforms, shading color ramps and separation/DeviceN alternates.
package function

import (
	"math"

	"seehuhn.de/go/pdfcolor/internal/calcerr"
)

// Function is the common evaluation contract for all four PDF function
// types. Implementations clip their inputs to Domain and their outputs to
// Range (when Range is non-empty) before returning.
type Function interface {
	// FunctionType returns the PDF FunctionType value (0, 2, 3 or 4).
	FunctionType() int

	// Shape returns the number of input values (m) and output values (n)
	// the function is configured for.
	Shape() (m, n int)

	// GetDomain returns the function's Domain array (2*m values).
	GetDomain() []float64

	// Apply evaluates the function at inputs, writing n values into buf
	// (which must have length n) and returning it.
	Apply(buf []float64, inputs ...float64) []float64
}

func clip(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// clipToPairs clips each value against its (lo, hi) pair in pairs, in place.
func clipToPairs(values []float64, pairs []float64) {
	for i := range values {
		if 2*i+1 >= len(pairs) {
			break
		}
		values[i] = clip(values[i], pairs[2*i], pairs[2*i+1])
	}
}

// validateDomainRange checks that a Domain or Range array has an even
// length and that every (lo, hi) pair satisfies lo <= hi with finite
// bounds, per isRange in the shared helpers.
func validateDomainRange(name string, pairs []float64) error {
	if len(pairs)%2 != 0 {
		return calcerr.NewConstructionError(name, "array length must be even")
	}
	for i := 0; i+1 < len(pairs); i += 2 {
		if !isRange(pairs[i], pairs[i+1]) {
			return calcerr.NewConstructionError(name, "interval bounds must be finite and non-decreasing")
		}
	}
	return nil
}

// isRange reports whether [x, y] is a well-formed, finite interval.
func isRange(x, y float64) bool {
	return isFinite(x) && isFinite(y) && x <= y
}
