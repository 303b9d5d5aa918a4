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

// Package vecmath provides the allocation-free 4-lane vector and 4x4 matrix
// primitives used by every hot path in the color transform chain.
package vecmath

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Vec4 is a 4-lane float64 quantity. All color and position data flowing
// through the transform chain is carried in a Vec4, even when a color space
// only uses 1 or 3 active lanes: inactive lanes are preserved as identity
// contributions so a single hot path serves 1/3/4-channel inputs.
type Vec4 struct {
	X, Y, Z, W float64
}

// FromColor builds a Vec4 from up to four components, padding missing lanes
// with 1 (the identity element for a color channel that a transform should
// leave untouched).
func FromColor(c ...float64) Vec4 {
	return fromSlice(c, 1)
}

// FromPosition builds a Vec4 from up to four components, padding missing
// lanes with 0.
func FromPosition(c ...float64) Vec4 {
	return fromSlice(c, 0)
}

func fromSlice(c []float64, pad float64) Vec4 {
	v := Vec4{pad, pad, pad, pad}
	if len(c) > 0 {
		v.X = c[0]
	}
	if len(c) > 1 {
		v.Y = c[1]
	}
	if len(c) > 2 {
		v.Z = c[2]
	}
	if len(c) > 3 {
		v.W = c[3]
	}
	return v
}

// Array returns the four lanes as a plain array, for callers that need a
// contiguous slice.
func (v Vec4) Array() [4]float64 {
	return [4]float64{v.X, v.Y, v.Z, v.W}
}

// Lane returns the i-th lane (0-3).
func (v Vec4) Lane(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		return v.W
	}
}

// WithLane returns a copy of v with lane i set to x.
func (v Vec4) WithLane(i int, x float64) Vec4 {
	switch i {
	case 0:
		v.X = x
	case 1:
		v.Y = x
	case 2:
		v.Z = x
	default:
		v.W = x
	}
	return v
}

// Add returns the elementwise sum.
func (v Vec4) Add(o Vec4) Vec4 {
	return Vec4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

// Sub returns the elementwise difference.
func (v Vec4) Sub(o Vec4) Vec4 {
	return Vec4{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

// Mul returns the elementwise product.
func (v Vec4) Mul(o Vec4) Vec4 {
	return Vec4{v.X * o.X, v.Y * o.Y, v.Z * o.Z, v.W * o.W}
}

// Div returns the elementwise quotient.
func (v Vec4) Div(o Vec4) Vec4 {
	return Vec4{v.X / o.X, v.Y / o.Y, v.Z / o.Z, v.W / o.W}
}

// Scale returns v with every lane multiplied by s.
func (v Vec4) Scale(s float64) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Dot returns the 4-lane dot product.
func (v Vec4) Dot(o Vec4) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W
}

// Clamp clamps every lane to [lo, hi] (lane-wise).
func (v Vec4) Clamp(lo, hi Vec4) Vec4 {
	return Vec4{
		clamp1(v.X, lo.X, hi.X),
		clamp1(v.Y, lo.Y, hi.Y),
		clamp1(v.Z, lo.Z, hi.Z),
		clamp1(v.W, lo.W, hi.W),
	}
}

// ClampScalar clamps every lane to [lo, hi].
func (v Vec4) ClampScalar(lo, hi float64) Vec4 {
	return Vec4{
		clamp1(v.X, lo, hi),
		clamp1(v.Y, lo, hi),
		clamp1(v.Z, lo, hi),
		clamp1(v.W, lo, hi),
	}
}

func clamp1(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Min returns the lane-wise minimum.
func (v Vec4) Min(o Vec4) Vec4 {
	return Vec4{math.Min(v.X, o.X), math.Min(v.Y, o.Y), math.Min(v.Z, o.Z), math.Min(v.W, o.W)}
}

// Max returns the lane-wise maximum.
func (v Vec4) Max(o Vec4) Vec4 {
	return Vec4{math.Max(v.X, o.X), math.Max(v.Y, o.Y), math.Max(v.Z, o.Z), math.Max(v.W, o.W)}
}

// Floor truncates every lane down to the nearest integer, returned as a
// float64 (lane-wise math.Floor).
func (v Vec4) Floor() Vec4 {
	return Vec4{math.Floor(v.X), math.Floor(v.Y), math.Floor(v.Z), math.Floor(v.W)}
}

// Clamp is the generic scalar clamp used outside of hot Vec4 paths (package
// color's clamp01 calls it). T is any float or integer type from
// golang.org/x/exp/constraints.
func Clamp[T constraints.Float | constraints.Integer](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
