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

// Package color converts PDF color space samples to sRGB, building on
// package function for tint-transform and separation/DeviceN
// alternate-space evaluation; the numeric conversions are written out in
// this package and do not go through package transform.
package color

import "seehuhn.de/go/pdfcolor/vecmath"

// RenderingIntent mirrors the four PDF/ICC rendering intents. It is
// consulted only by ICCBased spaces with a CLUT-based transform that
// branches on intent (most profiles use the same transform for all four).
type RenderingIntent int

const (
	Perceptual RenderingIntent = iota
	RelativeColorimetric
	Saturation
	AbsoluteColorimetric
)

// Color is a single color value produced by a Space.
type Color interface {
	// Space returns the Space that produced this Color.
	Space() Space

	// ToSRGB converts the color to non-linear sRGB, each in [0,1].
	ToSRGB() (r, g, b float64)
}

// Space converts raw component values (as they appear in a PDF content
// stream or image) to device-independent sRGB.
type Space interface {
	// NumComponents returns how many component values New expects.
	NumComponents() int

	// New builds a Color from raw component values.
	New(components ...float64) Color

	// Default returns the space's initial color (PDF 8.6.3): 0 for every
	// component in most spaces; DeviceCMYK's default is (0,0,0,1), and the
	// components of Separation, DeviceN and an uncolored PatternSpace's
	// base space default to 1.
	Default() Color
}

// simpleColor is the shared Color implementation for every Space in this
// package whose ToSRGB is a pure function of its raw components (i.e.
// everything except Pattern colors, which carry no component-based sRGB
// value of their own).
type simpleColor struct {
	space      Space
	components []float64
	srgb       func(c []float64) (r, g, b float64)
}

func (c simpleColor) Space() Space { return c.space }

func (c simpleColor) ToSRGB() (r, g, b float64) { return c.srgb(c.components) }

func clamp01(x float64) float64 { return vecmath.Clamp(x, 0, 1) }
